package domain

import "time"

// Gift is a catalog entry clients can browse, add to a cart, or wishlist.
type Gift struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Category    string    `json:"category" bson:"category"`
	Price       float64   `json:"price" bson:"price"`
	ImageURL    string    `json:"image_url" bson:"image_url"`
	Favorite    bool      `json:"favorite" bson:"favorite"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
