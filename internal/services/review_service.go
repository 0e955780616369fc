package services

import (
	"context"

	"equisport/internal/domain"
	"equisport/internal/repos"
)

type ReviewService struct {
	Reviews *repos.ReviewRepo
}

func NewReviewService(reviews *repos.ReviewRepo) *ReviewService {
	return &ReviewService{Reviews: reviews}
}

func (s *ReviewService) Feed(ctx context.Context) ([]domain.ReviewFeedItem, error) {
	return s.Reviews.Feed(ctx)
}
