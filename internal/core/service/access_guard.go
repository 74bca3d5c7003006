package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
	"github.com/giftidea/gift-catalog-api/internal/core/ports"
)

// AccessGuard decides allow/deny for a bearer token and a required
// capability. Roles are always re-read from the store: a token proves the
// subject's identity, never its current privileges.
type AccessGuard struct {
	codec ports.TokenCodec
	repo  ports.IdentityRepository
	log   zerolog.Logger
}

func NewAccessGuard(codec ports.TokenCodec, repo ports.IdentityRepository, log zerolog.Logger) *AccessGuard {
	return &AccessGuard{codec: codec, repo: repo, log: log}
}

// Authorize validates the token, resolves the subject's current identity,
// and evaluates the capability. Token problems (absent, malformed, expired,
// bad signature) and a vanished subject all yield an unauthenticated deny;
// only a store failure is returned as an error.
func (g *AccessGuard) Authorize(ctx context.Context, tokenString string, capability domain.Capability) (domain.AuthDecision, error) {
	deny := domain.AuthDecision{}

	if tokenString == "" {
		return deny, nil
	}

	subject, err := g.codec.Verify(tokenString)
	if err != nil {
		g.log.Debug().Err(err).Str("capability", capability.String()).Msg("token rejected")
		return deny, nil
	}

	identity, err := g.repo.FindByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			g.log.Warn().Str("subject", subject).Msg("valid token for unknown identity")
			return deny, nil
		}
		return deny, err
	}

	return domain.AuthDecision{
		Identity:      identity,
		Authenticated: true,
		Allowed:       capability.SatisfiedBy(identity),
		Roles:         identity.Roles,
	}, nil
}

var _ ports.AccessGuard = (*AccessGuard)(nil)
