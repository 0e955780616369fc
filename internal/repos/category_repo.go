package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"equisport/internal/domain"
	"equisport/internal/store"
)

// CategoryRepo derives category rollups from the equipments collection;
// there is no stored categories collection.
type CategoryRepo struct{ col store.Collection }

func NewCategoryRepo(col store.Collection) *CategoryRepo { return &CategoryRepo{col: col} }

// Summaries groups equipment by category with a count and a
// representative image ($first within the group; grouping order is
// store-dependent, so row order and image choice are not guaranteed).
func (r *CategoryRepo) Summaries(ctx context.Context) ([]domain.CategorySummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          "$category",
			"name":         bson.M{"$first": "$category"},
			"image":        bson.M{"$first": "$image"},
			"productCount": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":          1,
			"name":         1,
			"image":        1,
			"productCount": 1,
		}}},
	}
	out := []domain.CategorySummary{}
	err := r.col.Aggregate(ctx, pipeline, &out)
	return out, err
}
