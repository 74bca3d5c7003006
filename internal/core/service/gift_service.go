package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
	"github.com/giftidea/gift-catalog-api/internal/core/ports"
)

// GiftService implements catalog CRUD over the gift repository.
type GiftService struct {
	repo ports.GiftRepository
	log  zerolog.Logger
}

func NewGiftService(repo ports.GiftRepository, log zerolog.Logger) *GiftService {
	return &GiftService{repo: repo, log: log}
}

func (s *GiftService) ListGifts(ctx context.Context) ([]domain.Gift, error) {
	return s.repo.FindAll(ctx)
}

func (s *GiftService) GetGift(ctx context.Context, id string) (*domain.Gift, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *GiftService) ListByCategory(ctx context.Context, category string) ([]domain.Gift, error) {
	return s.repo.FindByCategory(ctx, category)
}

func (s *GiftService) ListFavorites(ctx context.Context) ([]domain.Gift, error) {
	return s.repo.FindFavorites(ctx)
}

func (s *GiftService) SearchGifts(ctx context.Context, keyword string) ([]domain.Gift, error) {
	return s.repo.SearchByName(ctx, keyword)
}

func (s *GiftService) ListByMaxPrice(ctx context.Context, maxPrice float64) ([]domain.Gift, error) {
	return s.repo.FindByMaxPrice(ctx, maxPrice)
}

func (s *GiftService) CreateGift(ctx context.Context, in ports.GiftInput) (*domain.Gift, error) {
	now := time.Now().UTC()
	gift := &domain.Gift{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Favorite:    in.Favorite,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, gift)
	if err != nil {
		s.log.Error().Err(err).Str("name", in.Name).Msg("failed to create gift")
		return nil, err
	}

	s.log.Info().Str("gift_id", created.ID).Str("name", created.Name).Msg("gift created")
	return created, nil
}

func (s *GiftService) UpdateGift(ctx context.Context, id string, in ports.GiftInput) (*domain.Gift, error) {
	gift, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	gift.Name = in.Name
	gift.Description = in.Description
	gift.Category = in.Category
	gift.Price = in.Price
	gift.ImageURL = in.ImageURL
	gift.Favorite = in.Favorite
	gift.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, gift)
}

func (s *GiftService) DeleteGift(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("gift_id", id).Msg("gift deleted")
	return nil
}

func (s *GiftService) ToggleFavorite(ctx context.Context, id string) (*domain.Gift, error) {
	gift, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	gift.Favorite = !gift.Favorite
	gift.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, gift)
}

var _ ports.GiftService = (*GiftService)(nil)
