package store

import (
	"context"

	"food-swipe-api/models"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GormActivityStore keeps activity in a gorm database. With the default
// in-memory SQLite DSN everything is gone after a restart.
type GormActivityStore struct {
	db *gorm.DB
}

func NewGormActivityStore(db *gorm.DB) (*GormActivityStore, error) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Swipe{},
		&models.Like{},
		&models.Comment{},
	)
	if err != nil {
		return nil, errors.Wrap(err, "migrate activity tables")
	}
	return &GormActivityStore{db: db}, nil
}

func (s *GormActivityStore) GetOrCreateUser(ctx context.Context, userID string) (models.User, error) {
	user := models.User{
		ID:          userID,
		Preferences: datatypes.NewJSONType(models.DefaultPreferences()),
	}
	if err := s.db.WithContext(ctx).Where(models.User{ID: userID}).FirstOrCreate(&user).Error; err != nil {
		return models.User{}, errors.Wrapf(err, "load user %s", userID)
	}
	return user, nil
}

func (s *GormActivityStore) SaveUser(ctx context.Context, user models.User) error {
	return errors.Wrapf(s.db.WithContext(ctx).Save(&user).Error, "save user %s", user.ID)
}

func (s *GormActivityStore) AddSwipe(ctx context.Context, swipe models.Swipe) error {
	return errors.Wrap(s.db.WithContext(ctx).Create(&swipe).Error, "record swipe")
}

func (s *GormActivityStore) SwipesByUser(ctx context.Context, userID string) ([]models.Swipe, error) {
	swipes := []models.Swipe{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("swiped_at asc").
		Find(&swipes).Error
	return swipes, errors.Wrap(err, "list swipes")
}

func (s *GormActivityStore) FindLike(ctx context.Context, userID, orderID string) (models.Like, bool, error) {
	var like models.Like
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND order_id = ?", userID, orderID).
		First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Like{}, false, nil
	}
	if err != nil {
		return models.Like{}, false, errors.Wrap(err, "find like")
	}
	return like, true, nil
}

func (s *GormActivityStore) AddLike(ctx context.Context, like models.Like) error {
	return errors.Wrap(s.db.WithContext(ctx).Create(&like).Error, "create like")
}

func (s *GormActivityStore) DeleteLike(ctx context.Context, likeID string) error {
	return errors.Wrap(s.db.WithContext(ctx).Delete(&models.Like{}, "id = ?", likeID).Error, "delete like")
}

func (s *GormActivityStore) LikesByOrder(ctx context.Context, orderID string) ([]models.Like, error) {
	likes := []models.Like{}
	err := s.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at asc").
		Find(&likes).Error
	return likes, errors.Wrap(err, "list likes")
}

func (s *GormActivityStore) DeleteLikesByOrder(ctx context.Context, orderID string) error {
	return errors.Wrapf(s.db.WithContext(ctx).Delete(&models.Like{}, "order_id = ?", orderID).Error, "delete likes of order %s", orderID)
}

func (s *GormActivityStore) AddComment(ctx context.Context, comment models.Comment) error {
	return errors.Wrap(s.db.WithContext(ctx).Create(&comment).Error, "create comment")
}

func (s *GormActivityStore) FindComment(ctx context.Context, commentID string) (models.Comment, bool, error) {
	var comment models.Comment
	err := s.db.WithContext(ctx).Where("id = ?", commentID).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Comment{}, false, nil
	}
	if err != nil {
		return models.Comment{}, false, errors.Wrap(err, "find comment")
	}
	return comment, true, nil
}

func (s *GormActivityStore) CommentsByOrder(ctx context.Context, orderID string) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := s.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at asc").
		Find(&comments).Error
	return comments, errors.Wrap(err, "list comments")
}

func (s *GormActivityStore) DeleteComment(ctx context.Context, commentID string) error {
	return errors.Wrap(s.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", commentID).Error, "delete comment")
}

func (s *GormActivityStore) DeleteCommentsByOrder(ctx context.Context, orderID string) error {
	return errors.Wrapf(s.db.WithContext(ctx).Delete(&models.Comment{}, "order_id = ?", orderID).Error, "delete comments of order %s", orderID)
}
