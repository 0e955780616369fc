package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"equisport/internal/domain"
	"equisport/internal/store"
)

const feedLimit = 10

type ReviewRepo struct{ col store.Collection }

func NewReviewRepo(col store.Collection) *ReviewRepo { return &ReviewRepo{col: col} }

// Feed flattens every record's nested reviews array into one item per
// sub-review, keeps the product/brand context, and returns the newest
// feedLimit items by review date.
func (r *ReviewRepo) Feed(ctx context.Context) ([]domain.ReviewFeedItem, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$reviews"}},
		{{Key: "$project", Value: bson.M{
			"product": 1,
			"brand":   1,
			"review":  "$reviews",
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "review.date", Value: -1}}}},
		{{Key: "$limit", Value: feedLimit}},
	}
	out := []domain.ReviewFeedItem{}
	err := r.col.Aggregate(ctx, pipeline, &out)
	return out, err
}
