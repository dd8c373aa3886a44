package store

import (
	"context"
	"testing"
	"time"

	"food-swipe-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// Both implementations have to behave the same, so every case runs twice.
func forEachActivityStore(t *testing.T, fn func(t *testing.T, s ActivityStore)) {
	t.Run("memory", func(t *testing.T) { fn(t, NewMemoryActivityStore()) })
	t.Run("gorm", func(t *testing.T) { fn(t, newTestGormStore(t)) })
}

func TestActivityUsers(t *testing.T) {
	forEachActivityStore(t, func(t *testing.T, s ActivityStore) {
		ctx := context.Background()

		user, err := s.GetOrCreateUser(ctx, userA)
		require.NoError(t, err)
		assert.Equal(t, userA, user.ID)
		assert.Equal(t, models.DefaultPreferences().PriceRange, user.Preferences.Data().PriceRange)
		assert.Empty(t, user.Preferences.Data().LikedCategories)

		prefs := user.Preferences.Data()
		prefs.LikedCategories = []string{"Pizza"}
		prefs.CuisineTypes = []string{"Italian"}
		user.Preferences = datatypes.NewJSONType(prefs)
		require.NoError(t, s.SaveUser(ctx, user))

		again, err := s.GetOrCreateUser(ctx, userA)
		require.NoError(t, err)
		assert.Equal(t, []string{"Pizza"}, again.Preferences.Data().LikedCategories)
		assert.Equal(t, []string{"Italian"}, again.Preferences.Data().CuisineTypes)

		other, err := s.GetOrCreateUser(ctx, userB)
		require.NoError(t, err)
		assert.Empty(t, other.Preferences.Data().LikedCategories)
	})
}

func TestActivitySwipes(t *testing.T) {
	forEachActivityStore(t, func(t *testing.T, s ActivityStore) {
		ctx := context.Background()
		base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		swipes := []models.Swipe{
			{ID: "swipe_1", UserID: userA, OrderID: "order_001", Action: models.SwipeLike, Timestamp: base},
			{ID: "swipe_2", UserID: userB, OrderID: "order_001", Action: models.SwipeDislike, Timestamp: base.Add(time.Second)},
			{ID: "swipe_3", UserID: userA, OrderID: "order_002", Action: models.SwipeDislike, Timestamp: base.Add(2 * time.Second)},
		}
		for _, sw := range swipes {
			require.NoError(t, s.AddSwipe(ctx, sw))
		}

		got, err := s.SwipesByUser(ctx, userA)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "swipe_1", got[0].ID)
		assert.Equal(t, "swipe_3", got[1].ID)
		assert.Equal(t, models.SwipeDislike, got[1].Action)

		none, err := s.SwipesByUser(ctx, "user_404")
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})
}

func TestActivityLikes(t *testing.T) {
	forEachActivityStore(t, func(t *testing.T, s ActivityStore) {
		ctx := context.Background()

		_, found, err := s.FindLike(ctx, userA, "order_001")
		require.NoError(t, err)
		assert.False(t, found)

		like := models.Like{ID: "like_1", UserID: userA, OrderID: "order_001", CreatedAt: time.Now()}
		require.NoError(t, s.AddLike(ctx, like))
		require.NoError(t, s.AddLike(ctx, models.Like{ID: "like_2", UserID: userB, OrderID: "order_001", CreatedAt: time.Now()}))

		// One like per user and order.
		assert.Error(t, s.AddLike(ctx, models.Like{ID: "like_3", UserID: userA, OrderID: "order_001", CreatedAt: time.Now()}))

		got, found, err := s.FindLike(ctx, userA, "order_001")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "like_1", got.ID)

		likes, err := s.LikesByOrder(ctx, "order_001")
		require.NoError(t, err)
		assert.Len(t, likes, 2)

		require.NoError(t, s.DeleteLike(ctx, "like_1"))
		_, found, err = s.FindLike(ctx, userA, "order_001")
		require.NoError(t, err)
		assert.False(t, found)

		likes, err = s.LikesByOrder(ctx, "order_001")
		require.NoError(t, err)
		require.Len(t, likes, 1)
		assert.Equal(t, userB, likes[0].UserID)
	})
}

func TestActivityComments(t *testing.T) {
	forEachActivityStore(t, func(t *testing.T, s ActivityStore) {
		ctx := context.Background()
		base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		require.NoError(t, s.AddComment(ctx, models.Comment{ID: "comment_1", OrderID: "order_001", UserID: userA, Username: "Ana", Text: "Great crust", CreatedAt: base}))
		require.NoError(t, s.AddComment(ctx, models.Comment{ID: "comment_2", OrderID: "order_001", UserID: userB, Username: "Ben", Text: "Too salty", CreatedAt: base.Add(time.Minute)}))
		require.NoError(t, s.AddComment(ctx, models.Comment{ID: "comment_3", OrderID: "order_002", UserID: userA, Username: "Ana", Text: "Yum", CreatedAt: base}))

		comments, err := s.CommentsByOrder(ctx, "order_001")
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "comment_1", comments[0].ID)
		assert.Equal(t, "comment_2", comments[1].ID)

		c, found, err := s.FindComment(ctx, "comment_2")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Too salty", c.Text)

		_, found, err = s.FindComment(ctx, "comment_404")
		require.NoError(t, err)
		assert.False(t, found)

		require.NoError(t, s.DeleteComment(ctx, "comment_1"))
		comments, err = s.CommentsByOrder(ctx, "order_001")
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "comment_2", comments[0].ID)
	})
}

func TestActivityPurgeOrder(t *testing.T) {
	forEachActivityStore(t, func(t *testing.T, s ActivityStore) {
		ctx := context.Background()

		require.NoError(t, s.AddLike(ctx, models.Like{ID: "like_1", UserID: userA, OrderID: "order_001", CreatedAt: time.Now()}))
		require.NoError(t, s.AddLike(ctx, models.Like{ID: "like_2", UserID: userB, OrderID: "order_001", CreatedAt: time.Now()}))
		require.NoError(t, s.AddLike(ctx, models.Like{ID: "like_3", UserID: userA, OrderID: "order_002", CreatedAt: time.Now()}))
		require.NoError(t, s.AddComment(ctx, models.Comment{ID: "comment_1", OrderID: "order_001", UserID: userA, Text: "Gone soon", CreatedAt: time.Now()}))
		require.NoError(t, s.AddComment(ctx, models.Comment{ID: "comment_2", OrderID: "order_002", UserID: userA, Text: "Stays", CreatedAt: time.Now()}))

		require.NoError(t, s.DeleteLikesByOrder(ctx, "order_001"))
		require.NoError(t, s.DeleteCommentsByOrder(ctx, "order_001"))

		likes, err := s.LikesByOrder(ctx, "order_001")
		require.NoError(t, err)
		assert.Empty(t, likes)
		comments, err := s.CommentsByOrder(ctx, "order_001")
		require.NoError(t, err)
		assert.Empty(t, comments)

		likes, err = s.LikesByOrder(ctx, "order_002")
		require.NoError(t, err)
		assert.Len(t, likes, 1)
		comments, err = s.CommentsByOrder(ctx, "order_002")
		require.NoError(t, err)
		assert.Len(t, comments, 1)

		// Purging an order without activity is a no-op.
		require.NoError(t, s.DeleteLikesByOrder(ctx, "order_404"))
		require.NoError(t, s.DeleteCommentsByOrder(ctx, "order_404"))
	})
}
