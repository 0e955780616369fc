package repos

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"equisport/internal/domain"
	"equisport/internal/store"
)

type BlogRepo struct{ col store.Collection }

func NewBlogRepo(col store.Collection) *BlogRepo { return &BlogRepo{col: col} }

func (r *BlogRepo) List(ctx context.Context) ([]domain.BlogPost, error) {
	out := []domain.BlogPost{}
	opts := options.Find().SetSort(bson.D{{Key: "publishDate", Value: -1}})
	err := r.col.Find(ctx, bson.M{}, opts, &out)
	return out, err
}

func (r *BlogRepo) Get(ctx context.Context, id primitive.ObjectID) (domain.BlogPost, error) {
	var out domain.BlogPost
	err := r.col.FindOne(ctx, bson.M{"_id": id}, &out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.BlogPost{}, domain.ErrNotFound
	}
	return out, err
}
