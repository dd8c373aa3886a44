package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"food-swipe-api/models"

	"github.com/glebarez/sqlite"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	userA = models.AnonymousUserID
	userB = "user_002"
)

func testDocument() *Document {
	return &Document{
		Restaurants: []models.Restaurant{
			{ID: "rest_001", Name: "Bella Napoli", CuisineType: "Italian", Rating: 4.6, DeliveryApps: []string{"careem"}},
			{ID: "rest_002", Name: "Sakura House", CuisineType: "Japanese", Rating: 4.4},
			{ID: "rest_003", Name: "Green Bowl", CuisineType: "Healthy", Rating: 4.0},
		},
		Orders: []models.Order{
			{ID: "order_001", RestaurantID: "rest_001", Name: "Margherita Pizza", Category: "Pizza", CuisineType: "Italian", Likes: 2},
			{ID: "order_002", RestaurantID: "rest_001", Name: "Truffle Tagliatelle", Category: "Pasta", CuisineType: "Italian"},
			{ID: "order_014", RestaurantID: "rest_002", Name: "Salmon Nigiri", Category: "Sushi", CuisineType: "Japanese"},
		},
	}
}

// writeTestDocument stores doc in a fresh temp dir and returns the file path
func writeTestDocument(t *testing.T, doc *Document) string {
	t.Helper()
	raw, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "database.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func readTestDocument(t *testing.T, path string) *Document {
	t.Helper()
	doc, err := NewFileRepository(path).Load(context.Background())
	require.NoError(t, err)
	return doc
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := writeTestDocument(t, testDocument())
	s, err := New(context.Background(), NewFileRepository(path), NewMemoryActivityStore())
	require.NoError(t, err)
	return s, path
}

func newTestGormStore(t *testing.T) *GormActivityStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	s, err := NewGormActivityStore(db)
	require.NoError(t, err)
	return s
}
