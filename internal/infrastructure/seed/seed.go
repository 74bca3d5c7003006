// Package seed loads sample catalog data and test accounts on first boot.
// It only writes when the target collections are empty, so restarting a
// seeded instance is a no-op.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
	"github.com/giftidea/gift-catalog-api/internal/core/ports"
)

type sampleGift struct {
	name        string
	description string
	category    string
	price       float64
	imageURL    string
	favorite    bool
}

var sampleGifts = []sampleGift{
	{"Smart Watch", "Stylish smart watch with health monitoring", "Electronics", 149.99, "https://picsum.photos/id/25/200/200", false},
	{"Beard Care Kit", "Complete beard grooming kit", "Beauty", 59.99, "https://picsum.photos/id/26/200/200", false},
	{"Wireless Headphones", "Noise-cancelling headphones", "Electronics", 99.99, "https://picsum.photos/id/27/200/200", true},
	{"Sushi Making Kit", "Everything needed to make sushi at home", "Kitchen", 49.99, "https://picsum.photos/id/28/200/200", false},
	{"Portable Speaker", "Waterproof bluetooth speaker", "Electronics", 79.99, "https://picsum.photos/id/29/200/200", true},
	{"Drawing Set", "Professional drawing set", "Hobbies", 129.99, "https://picsum.photos/id/30/200/200", false},
	{"Photo Album", "Personalized photo album", "Home", 39.99, "https://picsum.photos/id/31/200/200", false},
	{"Collectible Figure", "Collectible figure from your favorite series", "Entertainment", 89.99, "https://picsum.photos/id/32/200/200", true},
	{"Recipe Book", "Recipes from around the world", "Kitchen", 29.99, "https://picsum.photos/id/33/200/200", false},
	{"Scented Candle", "Set of relaxing scented candles", "Home", 19.99, "https://picsum.photos/id/34/200/200", false},
}

var sampleUsers = []struct {
	username string
	email    string
	password string
}{
	{"nur", "nur@example.com", "password123"},
	{"test", "test@example.com", "password123"},
}

// Run populates the gift catalog and the test accounts.
func Run(ctx context.Context, gifts ports.GiftRepository, identities ports.IdentityRepository, hasher ports.PasswordHasher, log zerolog.Logger) error {
	if err := seedGifts(ctx, gifts, log); err != nil {
		return err
	}
	return seedUsers(ctx, identities, hasher, log)
}

func seedGifts(ctx context.Context, repo ports.GiftRepository, log zerolog.Logger) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count gifts: %w", err)
	}
	if n > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, g := range sampleGifts {
		gift := &domain.Gift{
			Name:        g.name,
			Description: g.description,
			Category:    g.category,
			Price:       g.price,
			ImageURL:    g.imageURL,
			Favorite:    g.favorite,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if _, err := repo.Create(ctx, gift); err != nil {
			return fmt.Errorf("seed: create gift %q: %w", g.name, err)
		}
	}

	log.Info().Int("count", len(sampleGifts)).Msg("seeded gift catalog")
	return nil
}

func seedUsers(ctx context.Context, repo ports.IdentityRepository, hasher ports.PasswordHasher, log zerolog.Logger) error {
	now := time.Now().UTC()
	for _, u := range sampleUsers {
		exists, err := repo.ExistsByUsername(ctx, u.username)
		if err != nil {
			return fmt.Errorf("seed: check user %q: %w", u.username, err)
		}
		if exists {
			continue
		}

		hash, err := hasher.Hash(u.password)
		if err != nil {
			return fmt.Errorf("seed: hash password for %q: %w", u.username, err)
		}

		identity := &domain.Identity{
			Username:     u.username,
			Email:        u.email,
			PasswordHash: hash,
			Roles:        []domain.Role{domain.RoleUser},
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := repo.Save(ctx, identity); err != nil {
			// Lost a race against a concurrent seeder; the account exists.
			if errors.Is(err, domain.ErrDuplicateUsername) || errors.Is(err, domain.ErrDuplicateEmail) {
				continue
			}
			return fmt.Errorf("seed: save user %q: %w", u.username, err)
		}
		log.Info().Str("username", u.username).Msg("created test user")
	}
	return nil
}
