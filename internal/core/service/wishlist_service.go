package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
	"github.com/giftidea/gift-catalog-api/internal/core/ports"
)

// WishlistService implements per-user wishlist operations.
type WishlistService struct {
	repo     ports.WishlistRepository
	giftRepo ports.GiftRepository
	log      zerolog.Logger
}

func NewWishlistService(repo ports.WishlistRepository, giftRepo ports.GiftRepository, log zerolog.Logger) *WishlistService {
	return &WishlistService{repo: repo, giftRepo: giftRepo, log: log}
}

func (s *WishlistService) ListItems(ctx context.Context, userID string) ([]domain.WishlistItem, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// AddItem is idempotent per (user, gift): wishing for the same gift twice
// returns the existing entry.
func (s *WishlistService) AddItem(ctx context.Context, userID, giftID string) (*domain.WishlistItem, error) {
	if _, err := s.giftRepo.FindByID(ctx, giftID); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByUserIDAndGiftID(ctx, userID, giftID)
	if err != nil && !errors.Is(err, domain.ErrWishlistItemNotFound) {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	item := &domain.WishlistItem{
		UserID:  userID,
		GiftID:  giftID,
		AddedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, item)
}

func (s *WishlistService) RemoveItem(ctx context.Context, userID, itemID string) error {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, itemID)
}

var _ ports.WishlistService = (*WishlistService)(nil)
