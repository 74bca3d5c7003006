package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
	"github.com/giftidea/gift-catalog-api/internal/core/ports"
)

// UserService implements account administration. Authorization (admin or
// owner) is decided at the request boundary; this service only executes.
type UserService struct {
	repo ports.IdentityRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.IdentityRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.Identity, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.Identity, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

var _ ports.UserService = (*UserService)(nil)
