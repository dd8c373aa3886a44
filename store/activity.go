package store

import (
	"context"

	"food-swipe-api/models"
)

// ActivityStore owns the per-user collections: users, swipes, likes and
// comments. None of it is part of the catalog document.
type ActivityStore interface {
	GetOrCreateUser(ctx context.Context, userID string) (models.User, error)
	SaveUser(ctx context.Context, user models.User) error

	AddSwipe(ctx context.Context, swipe models.Swipe) error
	SwipesByUser(ctx context.Context, userID string) ([]models.Swipe, error)

	FindLike(ctx context.Context, userID, orderID string) (models.Like, bool, error)
	AddLike(ctx context.Context, like models.Like) error
	DeleteLike(ctx context.Context, likeID string) error
	LikesByOrder(ctx context.Context, orderID string) ([]models.Like, error)
	DeleteLikesByOrder(ctx context.Context, orderID string) error

	AddComment(ctx context.Context, comment models.Comment) error
	FindComment(ctx context.Context, commentID string) (models.Comment, bool, error)
	CommentsByOrder(ctx context.Context, orderID string) ([]models.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
	DeleteCommentsByOrder(ctx context.Context, orderID string) error
}
