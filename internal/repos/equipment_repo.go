package repos

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"equisport/internal/domain"
	"equisport/internal/store"
)

const (
	homeLimit   = 6
	searchLimit = 10
)

type EquipmentRepo struct{ col store.Collection }

func NewEquipmentRepo(col store.Collection) *EquipmentRepo { return &EquipmentRepo{col: col} }

func (r *EquipmentRepo) List(ctx context.Context) ([]domain.Equipment, error) {
	out := []domain.Equipment{}
	err := r.col.Find(ctx, bson.M{}, nil, &out)
	return out, err
}

func (r *EquipmentRepo) ForHome(ctx context.Context) ([]domain.Equipment, error) {
	out := []domain.Equipment{}
	err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(homeLimit), &out)
	return out, err
}

func (r *EquipmentRepo) Sorted(ctx context.Context) ([]domain.Equipment, error) {
	out := []domain.Equipment{}
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "price", Value: -1}})
	err := r.col.Find(ctx, bson.M{}, opts, &out)
	return out, err
}

// ByOwner matches userEmail literally. An empty email queries for the
// empty string, it does not widen to all records.
func (r *EquipmentRepo) ByOwner(ctx context.Context, email string) ([]domain.Equipment, error) {
	out := []domain.Equipment{}
	err := r.col.Find(ctx, bson.M{"userEmail": email}, nil, &out)
	return out, err
}

// ByCategory matches the category field case-insensitively as a
// substring, so "camp" finds "Camping".
func (r *EquipmentRepo) ByCategory(ctx context.Context, category string) ([]domain.Equipment, error) {
	out := []domain.Equipment{}
	filter := bson.M{"category": substringRegex(category)}
	err := r.col.Find(ctx, filter, nil, &out)
	return out, err
}

// Search matches item or category case-insensitively as a substring,
// capped at searchLimit in store order.
func (r *EquipmentRepo) Search(ctx context.Context, q string) ([]domain.Equipment, error) {
	out := []domain.Equipment{}
	filter := bson.M{"$or": []bson.M{
		{"item": substringRegex(q)},
		{"category": substringRegex(q)},
	}}
	err := r.col.Find(ctx, filter, options.Find().SetLimit(searchLimit), &out)
	return out, err
}

// Discounted returns records whose price is below their own
// originalPrice; records lacking originalPrice never match.
func (r *EquipmentRepo) Discounted(ctx context.Context) ([]domain.Equipment, error) {
	out := []domain.Equipment{}
	filter := bson.M{"$expr": bson.M{"$lt": bson.A{"$price", "$originalPrice"}}}
	err := r.col.Find(ctx, filter, nil, &out)
	return out, err
}

func (r *EquipmentRepo) Get(ctx context.Context, id primitive.ObjectID) (domain.Equipment, error) {
	var out domain.Equipment
	err := r.col.FindOne(ctx, bson.M{"_id": id}, &out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Equipment{}, domain.ErrNotFound
	}
	return out, err
}

// Create inserts the document verbatim; the store assigns the id and
// applies its own type coercion to whatever fields the caller sent.
func (r *EquipmentRepo) Create(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error) {
	return r.col.InsertOne(ctx, doc)
}

// Upsert $set-merges fields into the document with the given id, creating
// it when absent. Fields not named in the body stay untouched.
func (r *EquipmentRepo) Upsert(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	return r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
}

// Delete removes at most one document. A missing id is not an error; the
// result reports zero deletions.
func (r *EquipmentRepo) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return r.col.DeleteOne(ctx, bson.M{"_id": id})
}

// substringRegex builds a case-insensitive literal substring match. The
// input is quoted so user text can never act as a pattern.
func substringRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}
