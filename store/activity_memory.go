package store

import (
	"context"
	"slices"
	"sync"

	"food-swipe-api/models"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

// MemoryActivityStore keeps activity in plain slices, in insertion order.
type MemoryActivityStore struct {
	mu       sync.Mutex
	users    []models.User
	swipes   []models.Swipe
	likes    []models.Like
	comments []models.Comment
}

func NewMemoryActivityStore() *MemoryActivityStore {
	return &MemoryActivityStore{}
}

func (s *MemoryActivityStore) GetOrCreateUser(_ context.Context, userID string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == userID {
			return u, nil
		}
	}
	u := models.User{
		ID:          userID,
		Preferences: datatypes.NewJSONType(models.DefaultPreferences()),
		CreatedAt:   now(),
	}
	s.users = append(s.users, u)
	return u, nil
}

func (s *MemoryActivityStore) SaveUser(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = user
			return nil
		}
	}
	s.users = append(s.users, user)
	return nil
}

func (s *MemoryActivityStore) AddSwipe(_ context.Context, swipe models.Swipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.swipes = append(s.swipes, swipe)
	return nil
}

func (s *MemoryActivityStore) SwipesByUser(_ context.Context, userID string) ([]models.Swipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := []models.Swipe{}
	for _, sw := range s.swipes {
		if sw.UserID == userID {
			res = append(res, sw)
		}
	}
	return res, nil
}

func (s *MemoryActivityStore) FindLike(_ context.Context, userID, orderID string) (models.Like, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.likes {
		if l.UserID == userID && l.OrderID == orderID {
			return l, true, nil
		}
	}
	return models.Like{}, false, nil
}

func (s *MemoryActivityStore) AddLike(_ context.Context, like models.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.likes {
		if l.UserID == like.UserID && l.OrderID == like.OrderID {
			return errors.Errorf("like for user %s on order %s already exists", like.UserID, like.OrderID)
		}
	}
	s.likes = append(s.likes, like)
	return nil
}

func (s *MemoryActivityStore) DeleteLike(_ context.Context, likeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.likes = slices.DeleteFunc(s.likes, func(l models.Like) bool { return l.ID == likeID })
	return nil
}

func (s *MemoryActivityStore) LikesByOrder(_ context.Context, orderID string) ([]models.Like, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := []models.Like{}
	for _, l := range s.likes {
		if l.OrderID == orderID {
			res = append(res, l)
		}
	}
	return res, nil
}

func (s *MemoryActivityStore) DeleteLikesByOrder(_ context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.likes = slices.DeleteFunc(s.likes, func(l models.Like) bool { return l.OrderID == orderID })
	return nil
}

func (s *MemoryActivityStore) AddComment(_ context.Context, comment models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments = append(s.comments, comment)
	return nil
}

func (s *MemoryActivityStore) FindComment(_ context.Context, commentID string) (models.Comment, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.comments {
		if c.ID == commentID {
			return c, true, nil
		}
	}
	return models.Comment{}, false, nil
}

func (s *MemoryActivityStore) CommentsByOrder(_ context.Context, orderID string) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := []models.Comment{}
	for _, c := range s.comments {
		if c.OrderID == orderID {
			res = append(res, c)
		}
	}
	return res, nil
}

func (s *MemoryActivityStore) DeleteComment(_ context.Context, commentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments = slices.DeleteFunc(s.comments, func(c models.Comment) bool { return c.ID == commentID })
	return nil
}

func (s *MemoryActivityStore) DeleteCommentsByOrder(_ context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments = slices.DeleteFunc(s.comments, func(c models.Comment) bool { return c.OrderID == orderID })
	return nil
}
