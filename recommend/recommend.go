package recommend

import (
	"context"
	"slices"
	"sort"

	"food-swipe-api/models"
)

const (
	// MinLikeSwipes is how much like history a user needs before scoring kicks in.
	MinLikeSwipes = 5

	MaxRestaurants = 5
	MaxOrders      = 10
)

// Restaurant weights
const (
	restaurantLikedOrderWeight    = 10.0
	restaurantCategoryMatchWeight = 3.0
	restaurantCuisineMatchWeight  = 5.0
)

// Order weights
const (
	orderAlreadyLikedWeight   = 100.0
	orderSameRestaurantWeight = 5.0
	orderCategoryMatchWeight  = 3.0
	orderCuisineMatchWeight   = 2.0
	orderPopularityWeight     = 0.1
)

type Result struct {
	Restaurants []models.Restaurant `json:"restaurants"`
	Orders      []models.Order      `json:"orders"`
}

// Input is everything the scorer looks at. User is nil when the user has
// never been seen.
type Input struct {
	Restaurants []models.Restaurant
	Orders      []models.Order
	User        *models.User
	Swipes      []models.Swipe
}

// Source is the read access the recommender needs from the store
type Source interface {
	Restaurants() []models.Restaurant
	Orders() []models.Order
	GetOrCreateUser(ctx context.Context, userID string) (models.User, error)
	SwipesByUser(ctx context.Context, userID string) ([]models.Swipe, error)
}

// ForUser gathers the current state from src and scores it for userID.
func ForUser(ctx context.Context, src Source, userID string) (Result, error) {
	user, err := src.GetOrCreateUser(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	swipes, err := src.SwipesByUser(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	return Recommend(Input{
		Restaurants: src.Restaurants(),
		Orders:      src.Orders(),
		User:        &user,
		Swipes:      swipes,
	}, userID), nil
}

type scoredRestaurant struct {
	restaurant models.Restaurant
	score      float64
}

type scoredOrder struct {
	order models.Order
	score float64
	liked bool
}

// Recommend ranks restaurants and orders for userID. It is a pure function
// of its input: the same input always produces the same ranking.
func Recommend(in Input, userID string) Result {
	var likedOrderIDs []string
	for _, sw := range in.Swipes {
		if sw.UserID == userID && sw.Action == models.SwipeLike {
			likedOrderIDs = append(likedOrderIDs, sw.OrderID)
		}
	}

	if in.User == nil || len(likedOrderIDs) < MinLikeSwipes {
		return coldStart(in)
	}

	prefs := in.User.Preferences.Data()

	ordersByID := make(map[string]models.Order, len(in.Orders))
	for _, o := range in.Orders {
		ordersByID[o.ID] = o
	}

	// Every like-swipe counts, so an order liked twice counts twice.
	restaurantLikeCounts := map[string]int{}
	liked := map[string]bool{}
	for _, id := range likedOrderIDs {
		liked[id] = true
		if o, ok := ordersByID[id]; ok {
			restaurantLikeCounts[o.RestaurantID]++
		}
	}

	categoryMatchesByRestaurant := map[string]int{}
	for _, o := range in.Orders {
		if slices.Contains(prefs.LikedCategories, o.Category) {
			categoryMatchesByRestaurant[o.RestaurantID]++
		}
	}

	restaurants := make([]scoredRestaurant, 0, len(in.Restaurants))
	for _, r := range in.Restaurants {
		score := restaurantLikedOrderWeight * float64(restaurantLikeCounts[r.ID])
		score += restaurantCategoryMatchWeight * float64(categoryMatchesByRestaurant[r.ID])
		if slices.Contains(prefs.CuisineTypes, r.CuisineType) {
			score += restaurantCuisineMatchWeight
		}
		score += r.Rating
		restaurants = append(restaurants, scoredRestaurant{restaurant: r, score: score})
	}
	sort.SliceStable(restaurants, func(i, j int) bool {
		if restaurants[i].score != restaurants[j].score {
			return restaurants[i].score > restaurants[j].score
		}
		return restaurants[i].restaurant.Rating > restaurants[j].restaurant.Rating
	})

	orders := make([]scoredOrder, 0, len(in.Orders))
	for _, o := range in.Orders {
		var score float64
		if liked[o.ID] {
			score += orderAlreadyLikedWeight
		}
		score += orderSameRestaurantWeight * float64(restaurantLikeCounts[o.RestaurantID])
		if slices.Contains(prefs.LikedCategories, o.Category) {
			score += orderCategoryMatchWeight
		}
		if slices.Contains(prefs.CuisineTypes, o.CuisineType) {
			score += orderCuisineMatchWeight
		}
		score += orderPopularityWeight * float64(o.Likes)
		orders = append(orders, scoredOrder{order: o, score: score, liked: liked[o.ID]})
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].score > orders[j].score
	})

	res := Result{
		Restaurants: make([]models.Restaurant, 0, MaxRestaurants),
		Orders:      pickOrders(orders),
	}
	for i := 0; i < len(restaurants) && i < MaxRestaurants; i++ {
		res.Restaurants = append(res.Restaurants, restaurants[i].restaurant)
	}
	return res
}

// pickOrders takes the top orders, preferring ones the user has not liked
// yet. A liked order always scores above the liked bonus, since its own
// restaurant carries at least one like, so the preference rarely bites. Liked
// orders backfill any remaining room. The result never repeats an order, so
// a small catalog yields fewer than MaxOrders.
func pickOrders(ranked []scoredOrder) []models.Order {
	picked := make([]models.Order, 0, MaxOrders)
	taken := map[string]bool{}
	for _, so := range ranked {
		if len(picked) == MaxOrders {
			break
		}
		if so.liked && so.score <= orderAlreadyLikedWeight {
			continue
		}
		picked = append(picked, so.order)
		taken[so.order.ID] = true
	}
	for _, so := range ranked {
		if len(picked) == MaxOrders {
			break
		}
		if so.liked && !taken[so.order.ID] {
			picked = append(picked, so.order)
			taken[so.order.ID] = true
		}
	}
	return picked
}

func coldStart(in Input) Result {
	res := Result{
		Restaurants: make([]models.Restaurant, 0, MaxRestaurants),
		Orders:      make([]models.Order, 0, MaxOrders),
	}
	for i := 0; i < len(in.Restaurants) && i < MaxRestaurants; i++ {
		res.Restaurants = append(res.Restaurants, in.Restaurants[i])
	}
	for i := 0; i < len(in.Orders) && i < MaxOrders; i++ {
		res.Orders = append(res.Orders, in.Orders[i])
	}
	return res
}
