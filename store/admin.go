package store

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"food-swipe-api/models"
	"food-swipe-api/utils/log"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const (
	restaurantIDPrefix = "rest"
	orderIDPrefix      = "order"

	defaultRating       = 4.0
	defaultDeliveryTime = "30-40 min"
	defaultDeliveryFee  = 5.0
)

// Number accepts both JSON numbers and numeric strings, since the admin
// forms submit whatever the input field holds.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return errors.Errorf("invalid number %q", s)
		}
		*n = Number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// StringList accepts a JSON array or a comma separated string. Any other
// JSON value decodes to an empty list.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) > 0 && b[0] == '[':
		var items []string
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*l = items
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		items := []string{}
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}
		*l = items
	default:
		*l = []string{}
	}
	return nil
}

// RestaurantInput is an admin payload. Nil fields are left untouched on update.
type RestaurantInput struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	ImageURL     *string          `json:"imageUrl"`
	CuisineType  *string          `json:"cuisineType"`
	Rating       *Number          `json:"rating"`
	DeliveryTime *string          `json:"deliveryTime"`
	DeliveryFee  *Number          `json:"deliveryFee"`
	Location     *models.Location `json:"location"`
	DeliveryApps *StringList      `json:"deliveryApps"`
}

// OrderInput is an admin payload. Nil fields are left untouched on update.
type OrderInput struct {
	RestaurantID *string     `json:"restaurantId"`
	Name         *string     `json:"name"`
	Description  *string     `json:"description"`
	ImageURL     *string     `json:"imageUrl"`
	Price        *Number     `json:"price"`
	Category     *string     `json:"category"`
	CuisineType  *string     `json:"cuisineType"`
	Tags         *StringList `json:"tags"`
	DeliveryApps *StringList `json:"deliveryApps"`
}

func (in RestaurantInput) applyTo(r *models.Restaurant) {
	if in.Name != nil {
		r.Name = *in.Name
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.ImageURL != nil {
		r.ImageURL = *in.ImageURL
	}
	if in.CuisineType != nil {
		r.CuisineType = *in.CuisineType
	}
	if in.Rating != nil {
		r.Rating = float64(*in.Rating)
	}
	if in.DeliveryTime != nil {
		r.DeliveryTime = *in.DeliveryTime
	}
	if in.DeliveryFee != nil {
		r.DeliveryFee = float64(*in.DeliveryFee)
	}
	if in.Location != nil {
		r.Location = *in.Location
	}
	if in.DeliveryApps != nil {
		r.DeliveryApps = normalizeApps(*in.DeliveryApps)
	}
}

func (in OrderInput) applyTo(o *models.Order) {
	if in.RestaurantID != nil {
		o.RestaurantID = *in.RestaurantID
	}
	if in.Name != nil {
		o.Name = *in.Name
	}
	if in.Description != nil {
		o.Description = *in.Description
	}
	if in.ImageURL != nil {
		o.ImageURL = *in.ImageURL
	}
	if in.Price != nil {
		o.Price = float64(*in.Price)
	}
	if in.Category != nil {
		o.Category = *in.Category
	}
	if in.CuisineType != nil {
		o.CuisineType = *in.CuisineType
	}
	if in.Tags != nil {
		o.Tags = slices.Clone([]string(*in.Tags))
	}
	if in.DeliveryApps != nil {
		o.DeliveryApps = normalizeApps(*in.DeliveryApps)
	}
}

func normalizeApps(apps StringList) []string {
	res := make([]string, 0, len(apps))
	for _, a := range apps {
		if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
			res = append(res, a)
		}
	}
	return res
}

// NextID returns prefix_NNN, one above the largest numeric suffix among ids.
// Ids whose suffix is not a number count as zero.
func NextID(prefix string, ids []string) string {
	highest := 0
	for _, id := range ids {
		_, suffix, ok := strings.Cut(id, "_")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s_%03d", prefix, highest+1)
}

// writeDocument runs one admin write: read the file, carry over the live
// like and comment state, apply fn, save the whole file and reload the
// catalog from it. If fn fails nothing is written.
func (s *Store) writeDocument(ctx context.Context, op string, fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rewriteDocument(ctx, op, fn)
}

// rewriteDocument is writeDocument for callers already holding s.mu.
func (s *Store) rewriteDocument(ctx context.Context, op string, fn func(doc *Document) error) error {
	doc, err := s.docs.Load(ctx)
	if err != nil {
		return err
	}
	live := s.catalog.engagement()
	for i := range doc.Orders {
		if o, ok := live[doc.Orders[i].ID]; ok {
			doc.Orders[i].Likes = o.Likes
			doc.Orders[i].LikeUsers = o.LikeUsers
			doc.Orders[i].Comments = o.Comments
		}
	}

	if err := fn(doc); err != nil {
		return err
	}
	if err := s.docs.Save(ctx, doc); err != nil {
		return err
	}
	if err := s.catalog.Reload(ctx); err != nil {
		return errors.Wrap(err, "reload catalog after "+op)
	}
	log.Log.WithField("op", op).Info("catalog document rewritten")
	return nil
}

func (s *Store) CreateRestaurant(ctx context.Context, in RestaurantInput) (models.Restaurant, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return models.Restaurant{}, invalidInput("restaurant name is required")
	}
	var created models.Restaurant
	err := s.writeDocument(ctx, "create restaurant", func(doc *Document) error {
		ids := make([]string, 0, len(doc.Restaurants))
		for _, r := range doc.Restaurants {
			ids = append(ids, r.ID)
		}
		r := models.Restaurant{ID: NextID(restaurantIDPrefix, ids)}
		in.applyTo(&r)
		if r.Rating == 0 {
			r.Rating = defaultRating
		}
		if r.DeliveryTime == "" {
			r.DeliveryTime = defaultDeliveryTime
		}
		if r.DeliveryFee == 0 {
			r.DeliveryFee = defaultDeliveryFee
		}
		if r.DeliveryApps == nil {
			r.DeliveryApps = []string{}
		}
		doc.Restaurants = append(doc.Restaurants, r)
		created = r
		return nil
	})
	return created, err
}

func (s *Store) UpdateRestaurant(ctx context.Context, id string, in RestaurantInput) (models.Restaurant, error) {
	var updated models.Restaurant
	err := s.writeDocument(ctx, "update restaurant", func(doc *Document) error {
		idx := slices.IndexFunc(doc.Restaurants, func(r models.Restaurant) bool { return r.ID == id })
		if idx == -1 {
			return ErrRestaurantNotFound
		}
		in.applyTo(&doc.Restaurants[idx])
		updated = doc.Restaurants[idx]
		return nil
	})
	return updated, err
}

// DeleteRestaurant refuses to remove a restaurant that still has orders.
func (s *Store) DeleteRestaurant(ctx context.Context, id string) error {
	return s.writeDocument(ctx, "delete restaurant", func(doc *Document) error {
		if slices.ContainsFunc(doc.Orders, func(o models.Order) bool { return o.RestaurantID == id }) {
			return ErrRestaurantHasOrders
		}
		before := len(doc.Restaurants)
		doc.Restaurants = slices.DeleteFunc(doc.Restaurants, func(r models.Restaurant) bool { return r.ID == id })
		if len(doc.Restaurants) == before {
			return ErrRestaurantNotFound
		}
		return nil
	})
}

func (s *Store) CreateOrder(ctx context.Context, in OrderInput) (models.Order, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return models.Order{}, invalidInput("order name is required")
	}
	if in.RestaurantID == nil || *in.RestaurantID == "" {
		return models.Order{}, invalidInput("restaurantId is required")
	}
	var created models.Order
	err := s.writeDocument(ctx, "create order", func(doc *Document) error {
		if err := requireRestaurant(doc, *in.RestaurantID); err != nil {
			return err
		}
		ids := make([]string, 0, len(doc.Orders))
		for _, o := range doc.Orders {
			ids = append(ids, o.ID)
		}
		o := models.Order{
			ID:           NextID(orderIDPrefix, ids),
			Tags:         []string{},
			DeliveryApps: []string{},
			LikeUsers:    []string{},
			Comments:     []models.Comment{},
		}
		in.applyTo(&o)
		doc.Orders = append(doc.Orders, o)
		created = o
		return nil
	})
	return created, err
}

func (s *Store) UpdateOrder(ctx context.Context, id string, in OrderInput) (models.Order, error) {
	var updated models.Order
	err := s.writeDocument(ctx, "update order", func(doc *Document) error {
		idx := slices.IndexFunc(doc.Orders, func(o models.Order) bool { return o.ID == id })
		if idx == -1 {
			return ErrOrderNotFound
		}
		if in.RestaurantID != nil {
			if err := requireRestaurant(doc, *in.RestaurantID); err != nil {
				return err
			}
		}
		in.applyTo(&doc.Orders[idx])
		updated = doc.Orders[idx]
		return nil
	})
	return updated, err
}

// DeleteOrder removes the order from the document and drops its likes and
// comments, so a later order that reuses the id starts clean.
func (s *Store) DeleteOrder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.rewriteDocument(ctx, "delete order", func(doc *Document) error {
		before := len(doc.Orders)
		doc.Orders = slices.DeleteFunc(doc.Orders, func(o models.Order) bool { return o.ID == id })
		if len(doc.Orders) == before {
			return ErrOrderNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := s.activity.DeleteLikesByOrder(ctx, id); err != nil {
		return err
	}
	return s.activity.DeleteCommentsByOrder(ctx, id)
}

func requireRestaurant(doc *Document, id string) error {
	if slices.ContainsFunc(doc.Restaurants, func(r models.Restaurant) bool { return r.ID == id }) {
		return nil
	}
	return invalidInput("restaurant " + id + " does not exist")
}
