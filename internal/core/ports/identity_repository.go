package ports

import (
	"context"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
)

// IdentityRepository is the credential store adapter. Uniqueness of username
// and email is enforced at the store level; Save surfaces a violation as
// domain.ErrDuplicateUsername or domain.ErrDuplicateEmail.
type IdentityRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Identity, error)
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Save persists the identity and assigns its ID on first save.
	Save(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
	FindAll(ctx context.Context) ([]domain.Identity, error)
	FindByID(ctx context.Context, id string) (*domain.Identity, error)
	Delete(ctx context.Context, id string) error
}
