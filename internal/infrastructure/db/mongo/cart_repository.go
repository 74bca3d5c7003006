package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
)

const cartCollection = "cart_items"

// MongoCartRepository persists per-user cart items.
type MongoCartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{coll: db.Collection(cartCollection)}
}

type mongoCartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	GiftID    string             `bson:"gift_id"`
	Quantity  int                `bson:"quantity"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (r *MongoCartRepository) FindByUserID(ctx context.Context, userID string) ([]domain.CartItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("%w: find cart items: %v", domain.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	var items []domain.CartItem
	for cursor.Next(ctx) {
		var mc mongoCartItem
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("%w: decode cart item: %v", domain.ErrStoreUnavailable, err)
		}
		items = append(items, *mc.toDomain())
	}
	return items, cursor.Err()
}

func (r *MongoCartRepository) FindByUserIDAndGiftID(ctx context.Context, userID, giftID string) (*domain.CartItem, error) {
	var mc mongoCartItem
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "gift_id": giftID}).Decode(&mc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("%w: find cart item: %v", domain.ErrStoreUnavailable, err)
	}
	return mc.toDomain(), nil
}

func (r *MongoCartRepository) FindByID(ctx context.Context, id string) (*domain.CartItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCartItemNotFound
	}

	var mc mongoCartItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("%w: find cart item: %v", domain.ErrStoreUnavailable, err)
	}
	return mc.toDomain(), nil
}

// Save inserts a new item or replaces an existing one.
func (r *MongoCartRepository) Save(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	doc := mongoCartItem{
		UserID:    item.UserID,
		GiftID:    item.GiftID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt.Unix(),
		UpdatedAt: item.UpdatedAt.Unix(),
	}

	if item.ID == "" {
		res, err := r.coll.InsertOne(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("%w: insert cart item: %v", domain.ErrStoreUnavailable, err)
		}
		saved := *item
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			saved.ID = oid.Hex()
		}
		return &saved, nil
	}

	oid, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return nil, domain.ErrCartItemNotFound
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: update cart item: %v", domain.ErrStoreUnavailable, err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCartItemNotFound
	}
	return item, nil
}

func (r *MongoCartRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCartItemNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("%w: delete cart item: %v", domain.ErrStoreUnavailable, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (r *MongoCartRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("%w: clear cart: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (mc *mongoCartItem) toDomain() *domain.CartItem {
	return &domain.CartItem{
		ID:        mc.ID.Hex(),
		UserID:    mc.UserID,
		GiftID:    mc.GiftID,
		Quantity:  mc.Quantity,
		CreatedAt: unixToTime(mc.CreatedAt),
		UpdatedAt: unixToTime(mc.UpdatedAt),
	}
}
