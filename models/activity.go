package models

import "time"

// SwipeAction is the gesture recorded for a swipe
type SwipeAction string

const (
	SwipeLike    SwipeAction = "like"
	SwipeDislike SwipeAction = "dislike"
)

// Swipe is an append-only event; swipes are never updated or deleted.
type Swipe struct {
	ID        string      `json:"id" gorm:"primaryKey"`
	UserID    string      `json:"userId" gorm:"not null;index"`
	OrderID   string      `json:"orderId" gorm:"not null"`
	Action    SwipeAction `json:"action" gorm:"not null"`
	Timestamp time.Time   `json:"timestamp" gorm:"column:swiped_at;index"`
}

// Like is unique per (user, order); toggling removes it.
type Like struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"not null;uniqueIndex:idx_like_user_order"`
	OrderID   string    `json:"orderId" gorm:"not null;uniqueIndex:idx_like_user_order;index"`
	CreatedAt time.Time `json:"createdAt"`
}

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	OrderID   string    `json:"orderId" gorm:"not null;index"`
	UserID    string    `json:"userId" gorm:"not null"`
	Username  string    `json:"username"`
	Text      string    `json:"text" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}
