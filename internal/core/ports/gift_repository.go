package ports

import (
	"context"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
)

// GiftRepository persists the gift catalog.
type GiftRepository interface {
	FindAll(ctx context.Context) ([]domain.Gift, error)
	FindByID(ctx context.Context, id string) (*domain.Gift, error)
	FindByCategory(ctx context.Context, category string) ([]domain.Gift, error)
	FindFavorites(ctx context.Context) ([]domain.Gift, error)
	SearchByName(ctx context.Context, keyword string) ([]domain.Gift, error)
	FindByMaxPrice(ctx context.Context, maxPrice float64) ([]domain.Gift, error)
	Create(ctx context.Context, gift *domain.Gift) (*domain.Gift, error)
	Update(ctx context.Context, gift *domain.Gift) (*domain.Gift, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
