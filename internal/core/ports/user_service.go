package ports

import (
	"context"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
)

// UserService exposes account administration over existing identities.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.Identity, error)
	GetUser(ctx context.Context, id string) (*domain.Identity, error)
	DeleteUser(ctx context.Context, id string) error
}
