package store

import (
	"context"
	"slices"
	"sync"

	"food-swipe-api/models"
)

// Catalog is the read-side copy of the document. Callers always receive
// copies, so nothing outside the catalog can mutate its records.
type Catalog struct {
	mu          sync.RWMutex
	repo        DocumentRepository
	restaurants []models.Restaurant
	orders      []models.Order
}

func NewCatalog(ctx context.Context, repo DocumentRepository) (*Catalog, error) {
	c := &Catalog{repo: repo}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload throws away the in-memory copy and reads the document again.
func (c *Catalog) Reload(ctx context.Context) error {
	doc, err := c.repo.Load(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.restaurants = doc.Restaurants
	c.orders = doc.Orders
	return nil
}

func (c *Catalog) Restaurants() []models.Restaurant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res := make([]models.Restaurant, 0, len(c.restaurants))
	for _, r := range c.restaurants {
		res = append(res, cloneRestaurant(r))
	}
	return res
}

func (c *Catalog) Restaurant(id string) (models.Restaurant, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.restaurants {
		if r.ID == id {
			return cloneRestaurant(r), true
		}
	}
	return models.Restaurant{}, false
}

func (c *Catalog) Orders() []models.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res := make([]models.Order, 0, len(c.orders))
	for _, o := range c.orders {
		res = append(res, cloneOrder(o))
	}
	return res
}

func (c *Catalog) Order(id string) (models.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, o := range c.orders {
		if o.ID == id {
			return cloneOrder(o), true
		}
	}
	return models.Order{}, false
}

func (c *Catalog) OrdersByRestaurant(restaurantID string) []models.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res := []models.Order{}
	for _, o := range c.orders {
		if o.RestaurantID == restaurantID {
			res = append(res, cloneOrder(o))
		}
	}
	return res
}

// updateOrder applies fn to the live order record. It reports false when the
// order is unknown.
func (c *Catalog) updateOrder(id string, fn func(o *models.Order)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.orders {
		if c.orders[i].ID == id {
			fn(&c.orders[i])
			return true
		}
	}
	return false
}

// engagement returns the live denormalized like and comment state per order
func (c *Catalog) engagement() map[string]models.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m := make(map[string]models.Order, len(c.orders))
	for _, o := range c.orders {
		m[o.ID] = cloneOrder(o)
	}
	return m
}

func cloneRestaurant(r models.Restaurant) models.Restaurant {
	r.DeliveryApps = slices.Clone(r.DeliveryApps)
	return r
}

func cloneOrder(o models.Order) models.Order {
	o.Tags = slices.Clone(o.Tags)
	o.DeliveryApps = slices.Clone(o.DeliveryApps)
	o.LikeUsers = slices.Clone(o.LikeUsers)
	o.Comments = slices.Clone(o.Comments)
	return o
}
