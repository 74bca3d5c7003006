package domain

import "time"

// WishlistItem marks a gift an identity wants. At most one entry exists per
// (user, gift) pair.
type WishlistItem struct {
	ID      string    `json:"id" bson:"_id,omitempty"`
	UserID  string    `json:"user_id" bson:"user_id"`
	GiftID  string    `json:"gift_id" bson:"gift_id"`
	AddedAt time.Time `json:"added_at" bson:"added_at"`
}
