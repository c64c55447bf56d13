package contracts

import (
	"coach-service/internal/pkg/dto/requests"
	"coach-service/internal/pkg/dto/responses"
	"context"
)

type GoalUsecase interface {
	CommitGoal(ctx context.Context, request *requests.CommitGoal) (*responses.CommitResult, error)
	CommitBPGoal(ctx context.Context, request *requests.CommitBPGoal) (*responses.CommitResult, error)
	UpdateGoal(ctx context.Context, request *requests.UpdateGoal) (*responses.CommitResult, error)
}

// GoalCoachClient posts goal payloads to the COACH backend. The returned int
// is the backend's status code; only transport and decode failures surface
// as errors, a non-200 status is a domain outcome the orchestrator acts on.
type GoalCoachClient interface {
	CreateGoal(ctx context.Context, request *requests.CoachCreateGoal) (int, error)
	CreateBPGoal(ctx context.Context, request *requests.CoachCreateBPGoal) (int, error)
	UpdateGoal(ctx context.Context, request *requests.CoachUpdateGoal) (int, error)
	ListRecordedGoals(ctx context.Context) ([]responses.RecordedGoal, error)
}
