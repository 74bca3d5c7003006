package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
)

const giftCollection = "gifts"

// MongoGiftRepository persists the gift catalog.
type MongoGiftRepository struct {
	coll *mongo.Collection
}

func NewGiftRepository(db *mongo.Database) *MongoGiftRepository {
	return &MongoGiftRepository{coll: db.Collection(giftCollection)}
}

type mongoGift struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	Price       float64            `bson:"price"`
	ImageURL    string             `bson:"image_url"`
	Favorite    bool               `bson:"favorite"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (r *MongoGiftRepository) FindAll(ctx context.Context) ([]domain.Gift, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoGiftRepository) FindByCategory(ctx context.Context, category string) ([]domain.Gift, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *MongoGiftRepository) FindFavorites(ctx context.Context) ([]domain.Gift, error) {
	return r.find(ctx, bson.M{"favorite": true})
}

func (r *MongoGiftRepository) SearchByName(ctx context.Context, keyword string) ([]domain.Gift, error) {
	filter := bson.M{"name": bson.M{"$regex": primitive.Regex{Pattern: keyword, Options: "i"}}}
	return r.find(ctx, filter)
}

func (r *MongoGiftRepository) FindByMaxPrice(ctx context.Context, maxPrice float64) ([]domain.Gift, error) {
	return r.find(ctx, bson.M{"price": bson.M{"$lte": maxPrice}})
}

func (r *MongoGiftRepository) find(ctx context.Context, filter bson.M) ([]domain.Gift, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: find gifts: %v", domain.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	var gifts []domain.Gift
	for cursor.Next(ctx) {
		var mg mongoGift
		if err := cursor.Decode(&mg); err != nil {
			return nil, fmt.Errorf("%w: decode gift: %v", domain.ErrStoreUnavailable, err)
		}
		gifts = append(gifts, *mg.toDomain())
	}
	return gifts, cursor.Err()
}

func (r *MongoGiftRepository) FindByID(ctx context.Context, id string) (*domain.Gift, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGiftNotFound
	}

	var mg mongoGift
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrGiftNotFound
		}
		return nil, fmt.Errorf("%w: find gift: %v", domain.ErrStoreUnavailable, err)
	}
	return mg.toDomain(), nil
}

func (r *MongoGiftRepository) Create(ctx context.Context, gift *domain.Gift) (*domain.Gift, error) {
	doc := fromDomainGift(gift)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: insert gift: %v", domain.ErrStoreUnavailable, err)
	}

	created := *gift
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoGiftRepository) Update(ctx context.Context, gift *domain.Gift) (*domain.Gift, error) {
	oid, err := primitive.ObjectIDFromHex(gift.ID)
	if err != nil {
		return nil, domain.ErrGiftNotFound
	}

	doc := fromDomainGift(gift)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: update gift: %v", domain.ErrStoreUnavailable, err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrGiftNotFound
	}
	return gift, nil
}

func (r *MongoGiftRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrGiftNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("%w: delete gift: %v", domain.ErrStoreUnavailable, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGiftNotFound
	}
	return nil
}

func (r *MongoGiftRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%w: count gifts: %v", domain.ErrStoreUnavailable, err)
	}
	return n, nil
}

func fromDomainGift(gift *domain.Gift) mongoGift {
	return mongoGift{
		Name:        gift.Name,
		Description: gift.Description,
		Category:    gift.Category,
		Price:       gift.Price,
		ImageURL:    gift.ImageURL,
		Favorite:    gift.Favorite,
		CreatedAt:   gift.CreatedAt.Unix(),
		UpdatedAt:   gift.UpdatedAt.Unix(),
	}
}

func (mg *mongoGift) toDomain() *domain.Gift {
	return &domain.Gift{
		ID:          mg.ID.Hex(),
		Name:        mg.Name,
		Description: mg.Description,
		Category:    mg.Category,
		Price:       mg.Price,
		ImageURL:    mg.ImageURL,
		Favorite:    mg.Favorite,
		CreatedAt:   unixToTime(mg.CreatedAt),
		UpdatedAt:   unixToTime(mg.UpdatedAt),
	}
}
