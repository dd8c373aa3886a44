package routes

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"food-swipe-api/handlers"
	"food-swipe-api/models"
	"food-swipe-api/store"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	path   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	doc := store.Document{
		Restaurants: []models.Restaurant{
			{ID: "rest_001", Name: "Bella Napoli", CuisineType: "Italian", Rating: 4.6},
			{ID: "rest_002", Name: "Sakura House", CuisineType: "Japanese", Rating: 4.4},
		},
		Orders: []models.Order{
			{ID: "order_001", RestaurantID: "rest_001", Name: "Margherita Pizza", Category: "Pizza", CuisineType: "Italian", Likes: 4},
			{ID: "order_002", RestaurantID: "rest_002", Name: "Salmon Nigiri", Category: "Sushi", CuisineType: "Japanese"},
		},
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "database.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	st, err := store.New(context.Background(), store.NewFileRepository(path), store.NewMemoryActivityStore())
	require.NoError(t, err)

	r := gin.New()
	SetupRoutes(r, handlers.New(st))
	return &testServer{router: r, path: path}
}

func (s *testServer) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, w)["status"])
}

func TestCatalogRoutes(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/restaurants", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Restaurant](t, w), 2)

	w = s.do(t, http.MethodGet, "/api/restaurants?cuisine=japanese", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Restaurant](t, w), 1)

	w = s.do(t, http.MethodGet, "/api/restaurants/rest_001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	withOrders := decode[models.RestaurantWithOrders](t, w)
	assert.Equal(t, "Bella Napoli", withOrders.Name)
	require.Len(t, withOrders.Orders, 1)
	assert.Equal(t, "order_001", withOrders.Orders[0].ID)

	w = s.do(t, http.MethodGet, "/api/restaurants/rest_404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/orders?category=sushi", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Order](t, w), 1)

	w = s.do(t, http.MethodGet, "/api/orders/order_404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/orders/restaurant/rest_404", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestSwipeRoutes(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/swipes", map[string]string{"orderId": "order_001", "action": "like"})
	require.Equal(t, http.StatusOK, w.Code)
	sw := decode[models.Swipe](t, w)
	assert.Equal(t, models.AnonymousUserID, sw.UserID)
	assert.Equal(t, models.SwipeLike, sw.Action)

	for _, body := range []any{
		map[string]string{"orderId": "order_001"},
		map[string]string{"orderId": "order_001", "action": "superlike"},
		"not json",
	} {
		w = s.do(t, http.MethodPost, "/api/swipes", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request. Need orderId and action (like/dislike)", decode[map[string]string](t, w)["error"])
	}

	w = s.do(t, http.MethodPost, "/api/swipes", map[string]string{"orderId": "order_404", "action": "dislike"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/swipes/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Swipe](t, w), 1)
}

func TestLikeToggleRoutes(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/likes/orders/order_001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[store.LikeResult](t, w).Liked)

	w = s.do(t, http.MethodGet, "/api/orders/order_001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, decode[models.Order](t, w).Likes)

	w = s.do(t, http.MethodGet, "/api/likes/orders/order_001/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]bool{"liked": true}, decode[map[string]bool](t, w))

	w = s.do(t, http.MethodGet, "/api/likes/orders/order_001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Like](t, w), 1)

	w = s.do(t, http.MethodPost, "/api/likes/orders/order_001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[store.LikeResult](t, w).Liked)

	w = s.do(t, http.MethodGet, "/api/orders/order_001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, decode[models.Order](t, w).Likes)

	w = s.do(t, http.MethodPost, "/api/likes/orders/order_404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentRoutes(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/comments/orders/order_002", map[string]string{"text": "Melts in the mouth"})
	require.Equal(t, http.StatusOK, w.Code)
	comment := decode[models.Comment](t, w)
	assert.Equal(t, "Anonymous", comment.Username)

	w = s.do(t, http.MethodPost, "/api/comments/orders/order_002", map[string]string{"username": "Ana"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Comment text is required", decode[map[string]string](t, w)["error"])

	w = s.do(t, http.MethodGet, "/api/comments/orders/order_002", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Comment](t, w), 1)

	w = s.do(t, http.MethodDelete, "/api/comments/comment_404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodDelete, "/api/comments/"+comment.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]bool{"success": true}, decode[map[string]bool](t, w))

	w = s.do(t, http.MethodGet, "/api/orders/order_002", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[models.Order](t, w).Comments)
}

func TestRecommendationsColdStart(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/recommendations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[struct {
		Restaurants []models.Restaurant `json:"restaurants"`
		Orders      []models.Order      `json:"orders"`
	}](t, w)
	assert.Len(t, res.Restaurants, 2)
	assert.Len(t, res.Orders, 2)
}

func TestAdminRoutes(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/admin/restaurants", `{"name":"Pho Corner","rating":"4.2","deliveryApps":"Careem"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[struct {
		Success    bool              `json:"success"`
		Restaurant models.Restaurant `json:"restaurant"`
	}](t, w)
	assert.True(t, created.Success)
	assert.Equal(t, "rest_003", created.Restaurant.ID)
	assert.Equal(t, []string{"careem"}, created.Restaurant.DeliveryApps)

	w = s.do(t, http.MethodPost, "/api/admin/orders", map[string]string{"name": "Pho Bo", "restaurantId": "rest_003"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/admin/orders", map[string]string{"name": "Pho Ga", "restaurantId": "rest_404"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodDelete, "/api/admin/restaurants/rest_003", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodDelete, "/api/admin/orders/order_003", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodDelete, "/api/admin/restaurants/rest_003", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPut, "/api/admin/orders/order_002", map[string]any{"price": 18.5})
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodGet, "/api/admin/orders/order_002", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 18.5, decode[models.Order](t, w).Price)

	w = s.do(t, http.MethodPut, "/api/admin/restaurants/rest_404", map[string]string{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminWriteWithoutDocumentIsInternalError(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, os.Remove(s.path))

	w := s.do(t, http.MethodPost, "/api/admin/restaurants", map[string]string{"name": "Pho Corner"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, decode[map[string]string](t, w)["error"])

	// Reads keep working from memory.
	w = s.do(t, http.MethodGet, "/api/restaurants", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
