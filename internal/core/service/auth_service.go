package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
	"github.com/giftidea/gift-catalog-api/internal/core/ports"
)

// MinPasswordLength is the weakest password Register accepts.
const MinPasswordLength = 6

// AuthService implements registration and login. It holds no mutable state;
// the identity repository is the only shared resource it touches.
type AuthService struct {
	repo   ports.IdentityRepository
	hasher ports.PasswordHasher
	codec  ports.TokenCodec
	log    zerolog.Logger
}

func NewAuthService(repo ports.IdentityRepository, hasher ports.PasswordHasher, codec ports.TokenCodec, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, codec: codec, log: log}
}

// Register creates a new identity with the baseline user role and issues a
// token for it. Failure paths perform no write; the single insert on success
// is the only persistence side effect.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, *domain.Identity, error) {
	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if taken {
		return "", nil, domain.ErrDuplicateUsername
	}

	taken, err = s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if taken {
		return "", nil, domain.ErrDuplicateEmail
	}

	if len(password) < MinPasswordLength {
		return "", nil, domain.ErrWeakPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	identity := &domain.Identity{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Roles:        []domain.Role{domain.RoleUser},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The store's unique indexes still apply; a concurrent registration that
	// slipped past the exists checks surfaces here as a duplicate error.
	created, err := s.repo.Save(ctx, identity)
	if err != nil {
		return "", nil, err
	}

	tkn, err := s.codec.Issue(created.Username)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", created.Username).Msg("identity registered")
	return tkn, created, nil
}

// Login resolves the identifier as a username first, then as an email, and
// verifies the password before minting a token.
func (s *AuthService) Login(ctx context.Context, loginIdentifier, password string) (string, *domain.Identity, error) {
	identity, err := s.repo.FindByUsername(ctx, loginIdentifier)
	if errors.Is(err, domain.ErrUserNotFound) {
		identity, err = s.repo.FindByEmail(ctx, loginIdentifier)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("identifier", loginIdentifier).Msg("login: unknown identifier")
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, identity.PasswordHash) {
		s.log.Debug().Str("username", identity.Username).Msg("login: password mismatch")
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.codec.Issue(identity.Username)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", identity.Username).Msg("login succeeded")
	return tkn, identity, nil
}

var _ ports.AuthService = (*AuthService)(nil)
