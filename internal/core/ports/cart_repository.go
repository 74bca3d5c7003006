package ports

import (
	"context"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
)

// CartRepository persists per-user cart items.
type CartRepository interface {
	FindByUserID(ctx context.Context, userID string) ([]domain.CartItem, error)
	FindByUserIDAndGiftID(ctx context.Context, userID, giftID string) (*domain.CartItem, error)
	FindByID(ctx context.Context, id string) (*domain.CartItem, error)
	Save(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

// CartService exposes cart operations, always scoped to one user.
type CartService interface {
	ListItems(ctx context.Context, userID string) ([]domain.CartItem, error)
	AddItem(ctx context.Context, userID, giftID string, quantity int) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, userID, itemID string) error
	ClearCart(ctx context.Context, userID string) error
}
