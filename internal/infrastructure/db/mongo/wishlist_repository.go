package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
)

const wishlistCollection = "wishlist_items"

// MongoWishlistRepository persists per-user wishlist entries.
type MongoWishlistRepository struct {
	coll *mongo.Collection
}

func NewWishlistRepository(db *mongo.Database) *MongoWishlistRepository {
	return &MongoWishlistRepository{coll: db.Collection(wishlistCollection)}
}

type mongoWishlistItem struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	UserID  string             `bson:"user_id"`
	GiftID  string             `bson:"gift_id"`
	AddedAt int64              `bson:"added_at"`
}

func (r *MongoWishlistRepository) FindByUserID(ctx context.Context, userID string) ([]domain.WishlistItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("%w: find wishlist items: %v", domain.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	var items []domain.WishlistItem
	for cursor.Next(ctx) {
		var mw mongoWishlistItem
		if err := cursor.Decode(&mw); err != nil {
			return nil, fmt.Errorf("%w: decode wishlist item: %v", domain.ErrStoreUnavailable, err)
		}
		items = append(items, *mw.toDomain())
	}
	return items, cursor.Err()
}

func (r *MongoWishlistRepository) FindByUserIDAndGiftID(ctx context.Context, userID, giftID string) (*domain.WishlistItem, error) {
	var mw mongoWishlistItem
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "gift_id": giftID}).Decode(&mw)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrWishlistItemNotFound
		}
		return nil, fmt.Errorf("%w: find wishlist item: %v", domain.ErrStoreUnavailable, err)
	}
	return mw.toDomain(), nil
}

func (r *MongoWishlistRepository) FindByID(ctx context.Context, id string) (*domain.WishlistItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrWishlistItemNotFound
	}

	var mw mongoWishlistItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrWishlistItemNotFound
		}
		return nil, fmt.Errorf("%w: find wishlist item: %v", domain.ErrStoreUnavailable, err)
	}
	return mw.toDomain(), nil
}

func (r *MongoWishlistRepository) Create(ctx context.Context, item *domain.WishlistItem) (*domain.WishlistItem, error) {
	doc := mongoWishlistItem{
		UserID:  item.UserID,
		GiftID:  item.GiftID,
		AddedAt: item.AddedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: insert wishlist item: %v", domain.ErrStoreUnavailable, err)
	}

	created := *item
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoWishlistRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrWishlistItemNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("%w: delete wishlist item: %v", domain.ErrStoreUnavailable, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWishlistItemNotFound
	}
	return nil
}

func (mw *mongoWishlistItem) toDomain() *domain.WishlistItem {
	return &domain.WishlistItem{
		ID:      mw.ID.Hex(),
		UserID:  mw.UserID,
		GiftID:  mw.GiftID,
		AddedAt: unixToTime(mw.AddedAt),
	}
}
