package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
	"github.com/giftidea/gift-catalog-api/internal/token"
)

type stubIdentityRepo struct {
	identities map[string]*domain.Identity // keyed by username
	saves      int
	nextID     int
	failWith   error
}

func newStubIdentityRepo() *stubIdentityRepo {
	return &stubIdentityRepo{identities: make(map[string]*domain.Identity)}
}

func cloneIdentity(i *domain.Identity) *domain.Identity {
	if i == nil {
		return nil
	}
	clone := *i
	clone.Roles = append([]domain.Role(nil), i.Roles...)
	return &clone
}

func (r *stubIdentityRepo) FindByUsername(_ context.Context, username string) (*domain.Identity, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if i, ok := r.identities[username]; ok {
		return cloneIdentity(i), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubIdentityRepo) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, i := range r.identities {
		if i.Email == email {
			return cloneIdentity(i), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubIdentityRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	_, ok := r.identities[username]
	return ok, nil
}

func (r *stubIdentityRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	for _, i := range r.identities {
		if i.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubIdentityRepo) Save(_ context.Context, identity *domain.Identity) (*domain.Identity, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if _, ok := r.identities[identity.Username]; ok {
		return nil, domain.ErrDuplicateUsername
	}
	copy := cloneIdentity(identity)
	if copy.ID == "" {
		r.nextID++
		copy.ID = "id-" + strconv.Itoa(r.nextID)
	}
	r.identities[copy.Username] = cloneIdentity(copy)
	r.saves++
	return cloneIdentity(copy), nil
}

func (r *stubIdentityRepo) FindAll(_ context.Context) ([]domain.Identity, error) {
	out := make([]domain.Identity, 0, len(r.identities))
	for _, i := range r.identities {
		out = append(out, *cloneIdentity(i))
	}
	return out, nil
}

func (r *stubIdentityRepo) FindByID(_ context.Context, id string) (*domain.Identity, error) {
	for _, i := range r.identities {
		if i.ID == id {
			return cloneIdentity(i), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubIdentityRepo) Delete(_ context.Context, id string) error {
	for username, i := range r.identities {
		if i.ID == id {
			delete(r.identities, username)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func newTestAuthService(repo *stubIdentityRepo) *AuthService {
	codec := token.NewCodec("test-secret", time.Hour)
	return NewAuthService(repo, NewBcryptHasher(4), codec, zerolog.Nop())
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	repo := newStubIdentityRepo()
	svc := newTestAuthService(repo)

	tkn, identity, err := svc.Register(context.Background(), "nur", "nur@example.com", "password123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if tkn == "" {
		t.Fatalf("expected token on register")
	}
	if identity.PasswordHash == "password123" {
		t.Fatalf("password stored in plaintext")
	}
	if len(identity.Roles) != 1 || identity.Roles[0] != domain.RoleUser {
		t.Fatalf("expected default roles [user], got %v", identity.Roles)
	}
	if repo.saves != 1 {
		t.Fatalf("expected exactly one write, got %d", repo.saves)
	}

	loginToken, loginIdentity, err := svc.Login(context.Background(), "nur", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loginIdentity.Username != "nur" {
		t.Fatalf("unexpected identity: %+v", loginIdentity)
	}

	subject, err := token.NewCodec("test-secret", time.Hour).Verify(loginToken)
	if err != nil {
		t.Fatalf("verify login token: %v", err)
	}
	if subject != "nur" {
		t.Fatalf("expected subject nur, got %q", subject)
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	repo := newStubIdentityRepo()
	svc := newTestAuthService(repo)

	_, _, err := svc.Register(context.Background(), "alice", "alice@example.com", "short")
	if !errors.Is(err, domain.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
	if repo.saves != 0 {
		t.Fatalf("weak password must not write, saves=%d", repo.saves)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := newStubIdentityRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "bob", "bob@example.com", "password"); err != nil {
		t.Fatalf("first register: %v", err)
	}

	// Same username, different email.
	_, _, err := svc.Register(context.Background(), "bob", "other@example.com", "password")
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
	if repo.saves != 1 {
		t.Fatalf("duplicate must not write, saves=%d", repo.saves)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubIdentityRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "carol", "carol@example.com", "password"); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, _, err := svc.Register(context.Background(), "carol2", "carol@example.com", "password")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Login_ByEmail(t *testing.T) {
	repo := newStubIdentityRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "dave", "dave@example.com", "goodpass"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, identity, err := svc.Login(context.Background(), "dave@example.com", "goodpass")
	if err != nil {
		t.Fatalf("login by email: %v", err)
	}
	if identity.Username != "dave" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubIdentityRepo()
	svc := newTestAuthService(repo)

	_, _, _ = svc.Register(context.Background(), "erin", "erin@example.com", "goodpass")

	_, _, err := svc.Login(context.Background(), "erin", "badpass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	repo := newStubIdentityRepo()
	svc := newTestAuthService(repo)

	_, _, err := svc.Login(context.Background(), "ghost", "pass")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	repo := newStubIdentityRepo()
	repo.failWith = domain.ErrStoreUnavailable
	svc := newTestAuthService(repo)

	_, _, err := svc.Register(context.Background(), "frank", "frank@example.com", "password")
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable to propagate, got %v", err)
	}
}
