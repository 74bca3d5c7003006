package domain

import "time"

// CartItem links a gift to the identity whose cart holds it.
// Adding the same gift twice merges into one item with a summed quantity.
type CartItem struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	GiftID    string    `json:"gift_id" bson:"gift_id"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
