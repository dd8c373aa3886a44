package store

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"food-swipe-api/models"
	"food-swipe-api/swipe"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

var now = time.Now

// Store is the single entry point used by handlers and the recommender. It
// joins the catalog document with the activity store and keeps the
// denormalized order fields (likes, likeUsers, comments) in step with it.
type Store struct {
	docs     DocumentRepository
	catalog  *Catalog
	activity ActivityStore

	// mu serializes every mutation, so the catalog and the activity store
	// never disagree halfway through a toggle or an admin write.
	mu sync.Mutex
}

func New(ctx context.Context, docs DocumentRepository, activity ActivityStore) (*Store, error) {
	catalog, err := NewCatalog(ctx, docs)
	if err != nil {
		return nil, err
	}
	return &Store{docs: docs, catalog: catalog, activity: activity}, nil
}

// LikeResult is the outcome of a like toggle.
type LikeResult struct {
	Liked bool         `json:"liked"`
	Like  *models.Like `json:"like,omitempty"`
}

type RestaurantFilter struct {
	Cuisine string
	Search  string
}

type OrderFilter struct {
	Category string
	Cuisine  string
	Search   string
}

func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// ── Catalog reads ───────────────────────────────────────────────────────────

func (s *Store) Restaurants() []models.Restaurant {
	return s.catalog.Restaurants()
}

func (s *Store) Orders() []models.Order {
	return s.catalog.Orders()
}

// ListRestaurants returns restaurants in document order, optionally narrowed
// by cuisine and a case-insensitive name search.
func (s *Store) ListRestaurants(f RestaurantFilter) []models.Restaurant {
	res := []models.Restaurant{}
	for _, r := range s.catalog.Restaurants() {
		if f.Cuisine != "" && !containsFold(r.CuisineType, f.Cuisine) {
			continue
		}
		if f.Search != "" && !containsFold(r.Name, f.Search) {
			continue
		}
		res = append(res, r)
	}
	return res
}

func (s *Store) ListOrders(f OrderFilter) []models.Order {
	res := []models.Order{}
	for _, o := range s.catalog.Orders() {
		if f.Category != "" && !strings.EqualFold(o.Category, f.Category) {
			continue
		}
		if f.Cuisine != "" && !containsFold(o.CuisineType, f.Cuisine) {
			continue
		}
		if f.Search != "" && !containsFold(o.Name, f.Search) {
			continue
		}
		res = append(res, o)
	}
	return res
}

func (s *Store) Restaurant(id string) (models.Restaurant, error) {
	r, ok := s.catalog.Restaurant(id)
	if !ok {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	return r, nil
}

func (s *Store) RestaurantWithOrders(id string) (models.RestaurantWithOrders, error) {
	r, err := s.Restaurant(id)
	if err != nil {
		return models.RestaurantWithOrders{}, err
	}
	return models.RestaurantWithOrders{Restaurant: r, Orders: s.catalog.OrdersByRestaurant(id)}, nil
}

func (s *Store) Order(id string) (models.Order, error) {
	o, ok := s.catalog.Order(id)
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (s *Store) OrdersByRestaurant(restaurantID string) []models.Order {
	return s.catalog.OrdersByRestaurant(restaurantID)
}

// Reload re-reads the document into the catalog.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Reload(ctx)
}

// ── Users & swipes ──────────────────────────────────────────────────────────

func (s *Store) GetOrCreateUser(ctx context.Context, userID string) (models.User, error) {
	return s.activity.GetOrCreateUser(ctx, userID)
}

// AddSwipe records a swipe and, for likes, folds the order's category and
// cuisine into the user's preferences.
func (s *Store) AddSwipe(ctx context.Context, userID, orderID string, action models.SwipeAction) (models.Swipe, error) {
	if err := swipe.CheckAction(action); err != nil {
		return models.Swipe{}, invalidInput(err.Error())
	}
	order, ok := s.catalog.Order(orderID)
	if !ok {
		return models.Swipe{}, ErrOrderNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sw := models.Swipe{
		ID:        newID("swipe"),
		UserID:    userID,
		OrderID:   orderID,
		Action:    action,
		Timestamp: now(),
	}
	if err := s.activity.AddSwipe(ctx, sw); err != nil {
		return models.Swipe{}, err
	}

	user, err := s.activity.GetOrCreateUser(ctx, userID)
	if err != nil {
		return models.Swipe{}, err
	}
	prefs, changed := swipe.ApplyToPreferences(user.Preferences.Data(), action, order)
	if changed {
		user.Preferences = datatypes.NewJSONType(prefs)
		if err := s.activity.SaveUser(ctx, user); err != nil {
			return models.Swipe{}, err
		}
	}
	return sw, nil
}

func (s *Store) SwipesByUser(ctx context.Context, userID string) ([]models.Swipe, error) {
	return s.activity.SwipesByUser(ctx, userID)
}

// ── Likes ───────────────────────────────────────────────────────────────────

// ToggleLike likes the order for the user, or removes the existing like.
// A user listed in the order's likeUsers counts as liking it even when the
// activity store has no record, which happens after a restart on the
// in-memory database; toggling then removes the stale entry.
func (s *Store) ToggleLike(ctx context.Context, userID, orderID string) (LikeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.catalog.Order(orderID)
	if !ok {
		return LikeResult{}, ErrOrderNotFound
	}
	existing, found, err := s.activity.FindLike(ctx, userID, orderID)
	if err != nil {
		return LikeResult{}, err
	}

	if found || slices.Contains(order.LikeUsers, userID) {
		if found {
			if err := s.activity.DeleteLike(ctx, existing.ID); err != nil {
				return LikeResult{}, err
			}
		}
		s.catalog.updateOrder(orderID, func(o *models.Order) {
			o.Likes = max(0, o.Likes-1)
			o.LikeUsers = slices.DeleteFunc(o.LikeUsers, func(id string) bool { return id == userID })
		})
		return LikeResult{Liked: false}, nil
	}

	like := models.Like{
		ID:        newID("like"),
		UserID:    userID,
		OrderID:   orderID,
		CreatedAt: now(),
	}
	if err := s.activity.AddLike(ctx, like); err != nil {
		return LikeResult{}, err
	}
	s.catalog.updateOrder(orderID, func(o *models.Order) {
		o.Likes++
		if !slices.Contains(o.LikeUsers, userID) {
			o.LikeUsers = append(o.LikeUsers, userID)
		}
	})
	return LikeResult{Liked: true, Like: &like}, nil
}

func (s *Store) LikesByOrder(ctx context.Context, orderID string) ([]models.Like, error) {
	return s.activity.LikesByOrder(ctx, orderID)
}

// IsLiked agrees with ToggleLike: a like record or a likeUsers entry both
// count.
func (s *Store) IsLiked(ctx context.Context, userID, orderID string) (bool, error) {
	_, found, err := s.activity.FindLike(ctx, userID, orderID)
	if err != nil || found {
		return found, err
	}
	if o, ok := s.catalog.Order(orderID); ok {
		return slices.Contains(o.LikeUsers, userID), nil
	}
	return false, nil
}

// ── Comments ────────────────────────────────────────────────────────────────

func (s *Store) AddComment(ctx context.Context, orderID, userID, username, text string) (models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return models.Comment{}, invalidInput("comment text is required")
	}
	if _, ok := s.catalog.Order(orderID); !ok {
		return models.Comment{}, ErrOrderNotFound
	}
	if strings.TrimSpace(username) == "" {
		username = "Anonymous"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comment := models.Comment{
		ID:        newID("comment"),
		OrderID:   orderID,
		UserID:    userID,
		Username:  username,
		Text:      text,
		CreatedAt: now(),
	}
	if err := s.activity.AddComment(ctx, comment); err != nil {
		return models.Comment{}, err
	}
	s.catalog.updateOrder(orderID, func(o *models.Order) {
		o.Comments = append(o.Comments, comment)
	})
	return comment, nil
}

func (s *Store) CommentsByOrder(ctx context.Context, orderID string) ([]models.Comment, error) {
	return s.activity.CommentsByOrder(ctx, orderID)
}

// DeleteComment removes a comment written by userID. Unknown ids and
// comments by other users both yield ErrCommentNotFound.
func (s *Store) DeleteComment(ctx context.Context, commentID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, found, err := s.activity.FindComment(ctx, commentID)
	if err != nil {
		return err
	}
	if !found || comment.UserID != userID {
		return ErrCommentNotFound
	}
	if err := s.activity.DeleteComment(ctx, commentID); err != nil {
		return errors.Wrapf(err, "delete comment %s", commentID)
	}
	s.catalog.updateOrder(comment.OrderID, func(o *models.Order) {
		o.Comments = slices.DeleteFunc(o.Comments, func(c models.Comment) bool { return c.ID == commentID })
	})
	return nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
