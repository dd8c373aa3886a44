package models

// Order is a single swipeable dish. Likes, LikeUsers and Comments are
// denormalized copies of the activity store and must track it.
type Order struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurantId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	CuisineType  string    `json:"cuisineType"`
	Tags         []string  `json:"tags"`
	DeliveryApps []string  `json:"deliveryApps"`
	Likes        int       `json:"likes"`
	LikeUsers    []string  `json:"likeUsers"`
	Comments     []Comment `json:"comments"`
}
