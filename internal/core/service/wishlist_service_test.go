package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
)

type stubWishlistRepo struct {
	items   map[string]*domain.WishlistItem
	nextID  int
	creates int
}

func newStubWishlistRepo() *stubWishlistRepo {
	return &stubWishlistRepo{items: make(map[string]*domain.WishlistItem)}
}

func (r *stubWishlistRepo) FindByUserID(_ context.Context, userID string) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *stubWishlistRepo) FindByUserIDAndGiftID(_ context.Context, userID, giftID string) (*domain.WishlistItem, error) {
	for _, it := range r.items {
		if it.UserID == userID && it.GiftID == giftID {
			cp := *it
			return &cp, nil
		}
	}
	return nil, domain.ErrWishlistItemNotFound
}

func (r *stubWishlistRepo) FindByID(_ context.Context, id string) (*domain.WishlistItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, domain.ErrWishlistItemNotFound
	}
	cp := *it
	return &cp, nil
}

func (r *stubWishlistRepo) Create(_ context.Context, item *domain.WishlistItem) (*domain.WishlistItem, error) {
	r.creates++
	r.nextID++
	item.ID = strconv.Itoa(r.nextID)
	cp := *item
	r.items[item.ID] = &cp
	return item, nil
}

func (r *stubWishlistRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrWishlistItemNotFound
	}
	delete(r.items, id)
	return nil
}

func TestWishlistService_AddItem_Idempotent(t *testing.T) {
	repo := newStubWishlistRepo()
	svc := NewWishlistService(repo, newStubGiftRepo("g1"), zerolog.Nop())
	ctx := context.Background()

	first, err := svc.AddItem(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("first AddItem: %v", err)
	}
	second, err := svc.AddItem(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("second AddItem: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("second add returned new entry: %q != %q", second.ID, first.ID)
	}
	if repo.creates != 1 {
		t.Errorf("creates = %d, want 1", repo.creates)
	}
}

func TestWishlistService_AddItem_PerUser(t *testing.T) {
	repo := newStubWishlistRepo()
	svc := NewWishlistService(repo, newStubGiftRepo("g1"), zerolog.Nop())
	ctx := context.Background()

	// The same gift on two different wishlists is two entries.
	if _, err := svc.AddItem(ctx, "u1", "g1"); err != nil {
		t.Fatalf("AddItem u1: %v", err)
	}
	if _, err := svc.AddItem(ctx, "u2", "g1"); err != nil {
		t.Fatalf("AddItem u2: %v", err)
	}
	if repo.creates != 2 {
		t.Errorf("creates = %d, want 2", repo.creates)
	}
}

func TestWishlistService_AddItem_UnknownGift(t *testing.T) {
	svc := NewWishlistService(newStubWishlistRepo(), newStubGiftRepo(), zerolog.Nop())

	if _, err := svc.AddItem(context.Background(), "u1", "missing"); !errors.Is(err, domain.ErrGiftNotFound) {
		t.Fatalf("AddItem error = %v, want %v", err, domain.ErrGiftNotFound)
	}
}

func TestWishlistService_RemoveItem_OwnershipEnforced(t *testing.T) {
	repo := newStubWishlistRepo()
	svc := NewWishlistService(repo, newStubGiftRepo("g1"), zerolog.Nop())
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if err := svc.RemoveItem(ctx, "u2", item.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("RemoveItem by non-owner: err = %v, want %v", err, domain.ErrForbidden)
	}
	if err := svc.RemoveItem(ctx, "u1", item.ID); err != nil {
		t.Fatalf("RemoveItem by owner: %v", err)
	}
	if err := svc.RemoveItem(ctx, "u1", item.ID); !errors.Is(err, domain.ErrWishlistItemNotFound) {
		t.Errorf("second remove: err = %v, want %v", err, domain.ErrWishlistItemNotFound)
	}
}
