package requests

type ExecuteRecommendation struct {
	RecommendationID string `json:"recommendationId" validate:"required"`
}

type GetCachedRecommendation struct {
	RecommendationID string `json:"recommendationId" validate:"required"`
}

type ApplyGoals struct {
	RecommendationID string `json:"recommendationId" validate:"required"`
}
