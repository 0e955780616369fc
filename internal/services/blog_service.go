package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"equisport/internal/domain"
	"equisport/internal/repos"
)

type BlogService struct {
	Posts *repos.BlogRepo
}

func NewBlogService(posts *repos.BlogRepo) *BlogService {
	return &BlogService{Posts: posts}
}

func (s *BlogService) ListPosts(ctx context.Context) ([]domain.BlogPost, error) {
	return s.Posts.List(ctx)
}

func (s *BlogService) GetPost(ctx context.Context, id primitive.ObjectID) (domain.BlogPost, error) {
	return s.Posts.Get(ctx, id)
}
