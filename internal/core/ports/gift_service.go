package ports

import (
	"context"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
)

// GiftInput carries the writable fields of a gift.
type GiftInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
	ImageURL    string
	Favorite    bool
}

// GiftService exposes catalog operations.
type GiftService interface {
	ListGifts(ctx context.Context) ([]domain.Gift, error)
	GetGift(ctx context.Context, id string) (*domain.Gift, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Gift, error)
	ListFavorites(ctx context.Context) ([]domain.Gift, error)
	SearchGifts(ctx context.Context, keyword string) ([]domain.Gift, error)
	ListByMaxPrice(ctx context.Context, maxPrice float64) ([]domain.Gift, error)
	CreateGift(ctx context.Context, in GiftInput) (*domain.Gift, error)
	UpdateGift(ctx context.Context, id string, in GiftInput) (*domain.Gift, error)
	DeleteGift(ctx context.Context, id string) error
	ToggleFavorite(ctx context.Context, id string) (*domain.Gift, error)
}
