package contracts

import (
	"coach-service/internal/app/models"
	"coach-service/internal/pkg/dto/requests"
	"coach-service/internal/pkg/dto/responses"
	"context"
)

type RecommendationUsecase interface {
	Execute(ctx context.Context, request *requests.ExecuteRecommendation) (*responses.RenderedRecommendation, error)
	GetCached(ctx context.Context, request *requests.GetCachedRecommendation) (*responses.RenderedRecommendation, error)
	ApplyGoals(ctx context.Context, request *requests.ApplyGoals) (*responses.ApplyGoalsResult, error)
}

type RecommendationCoachClient interface {
	ExecuteRecommendation(ctx context.Context, recommendationID string) ([]models.Card, error)
	GetCachedRecommendation(ctx context.Context, recommendationID string) ([]models.Card, error)
}
