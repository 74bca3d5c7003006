package ports

import (
	"context"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
)

// WishlistRepository persists per-user wishlist entries.
type WishlistRepository interface {
	FindByUserID(ctx context.Context, userID string) ([]domain.WishlistItem, error)
	FindByUserIDAndGiftID(ctx context.Context, userID, giftID string) (*domain.WishlistItem, error)
	FindByID(ctx context.Context, id string) (*domain.WishlistItem, error)
	Create(ctx context.Context, item *domain.WishlistItem) (*domain.WishlistItem, error)
	Delete(ctx context.Context, id string) error
}

// WishlistService exposes wishlist operations, always scoped to one user.
type WishlistService interface {
	ListItems(ctx context.Context, userID string) ([]domain.WishlistItem, error)
	AddItem(ctx context.Context, userID, giftID string) (*domain.WishlistItem, error)
	RemoveItem(ctx context.Context, userID, itemID string) error
}
