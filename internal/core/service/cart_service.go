package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
	"github.com/giftidea/gift-catalog-api/internal/core/ports"
)

// CartService implements per-user cart operations. Every mutation verifies
// the item belongs to the calling user before touching it.
type CartService struct {
	repo     ports.CartRepository
	giftRepo ports.GiftRepository
	log      zerolog.Logger
}

func NewCartService(repo ports.CartRepository, giftRepo ports.GiftRepository, log zerolog.Logger) *CartService {
	return &CartService{repo: repo, giftRepo: giftRepo, log: log}
}

func (s *CartService) ListItems(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// AddItem puts a gift in the user's cart. Adding a gift already present
// merges quantities instead of creating a second item.
func (s *CartService) AddItem(ctx context.Context, userID, giftID string, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		quantity = 1
	}

	if _, err := s.giftRepo.FindByID(ctx, giftID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	existing, err := s.repo.FindByUserIDAndGiftID(ctx, userID, giftID)
	if err != nil && !errors.Is(err, domain.ErrCartItemNotFound) {
		return nil, err
	}
	if existing != nil {
		existing.Quantity += quantity
		existing.UpdatedAt = now
		return s.repo.Save(ctx, existing)
	}

	item := &domain.CartItem{
		UserID:    userID,
		GiftID:    giftID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.repo.Save(ctx, item)
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*domain.CartItem, error) {
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	item.Quantity = quantity
	item.UpdatedAt = time.Now().UTC()
	return s.repo.Save(ctx, item)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) error {
	if _, err := s.ownedItem(ctx, userID, itemID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, itemID)
}

func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	if err := s.repo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Msg("cart cleared")
	return nil
}

// ownedItem fetches the item and rejects access by anyone but its owner.
func (s *CartService) ownedItem(ctx context.Context, userID, itemID string) (*domain.CartItem, error) {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return item, nil
}

var _ ports.CartService = (*CartService)(nil)
