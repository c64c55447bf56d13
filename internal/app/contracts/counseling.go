package contracts

import (
	"coach-service/internal/pkg/dto/requests"
	"coach-service/internal/pkg/dto/responses"
	"context"
)

type CounselingUsecase interface {
	RegisterReceived(ctx context.Context, request *requests.CounselingAction) (*responses.CounselingResult, error)
}

type CounselingCoachClient interface {
	RegisterCounselingReceived(ctx context.Context, request *requests.CoachCounselingReceived) (int, error)
}
