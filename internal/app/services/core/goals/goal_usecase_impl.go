package goals

import (
	"coach-service/internal/app/contracts"
	"coach-service/internal/app/models"
	"coach-service/internal/app/services/cards"
	"coach-service/internal/pkg/constvars"
	"coach-service/internal/pkg/dto/requests"
	"coach-service/internal/pkg/dto/responses"
	"coach-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type goalUsecase struct {
	BlockStateService contracts.BlockStateService
	GoalCoachClient   contracts.GoalCoachClient
	Log               *zap.Logger
}

var (
	goalUsecaseInstance contracts.GoalUsecase
	onceGoalUsecase     sync.Once
)

func NewGoalUsecase(
	blockStateService contracts.BlockStateService,
	goalCoachClient contracts.GoalCoachClient,
	logger *zap.Logger,
) contracts.GoalUsecase {
	onceGoalUsecase.Do(func() {
		goalUsecaseInstance = &goalUsecase{
			BlockStateService: blockStateService,
			GoalCoachClient:   goalCoachClient,
			Log:               logger,
		}
	})
	return goalUsecaseInstance
}

func (uc *goalUsecase) CommitGoal(ctx context.Context, request *requests.CommitGoal) (*responses.CommitResult, error) {
	return uc.commit(ctx, request.BlockID, models.BlockGoal, func(ctx context.Context, block *models.Block) (int, error) {
		return uc.GoalCoachClient.CreateGoal(ctx, cards.BuildGoalCommitData(block.Goal))
	})
}

func (uc *goalUsecase) CommitBPGoal(ctx context.Context, request *requests.CommitBPGoal) (*responses.CommitResult, error) {
	return uc.commit(ctx, request.BlockID, models.BlockBPGoal, func(ctx context.Context, block *models.Block) (int, error) {
		return uc.GoalCoachClient.CreateBPGoal(ctx, cards.BuildBPGoalCommitData(block.Goal))
	})
}

func (uc *goalUsecase) UpdateGoal(ctx context.Context, request *requests.UpdateGoal) (*responses.CommitResult, error) {
	return uc.commit(ctx, request.BlockID, models.BlockUpdateGoal, func(ctx context.Context, block *models.Block) (int, error) {
		return uc.GoalCoachClient.UpdateGoal(ctx, cards.BuildGoalUpdateData(block.UpdateGoal))
	})
}

// commit runs the submission state machine for one block: resolve the block,
// reject stale or already-submitting blocks, issue exactly one request, and
// remove the block only on a 200. Any other status leaves the block
// registered so the user can retry.
func (uc *goalUsecase) commit(ctx context.Context, blockID string, wantKind models.BlockKind, send func(context.Context, *models.Block) (int, error)) (*responses.CommitResult, error) {
	block, err := uc.BlockStateService.GetBlock(ctx, blockID)
	if err != nil {
		return nil, err
	}
	if block.Kind != wantKind {
		return nil, exceptions.ErrBlockWrongKind(fmt.Errorf("block %s is %s, want %s", blockID, block.Kind, wantKind))
	}

	currentGeneration, err := uc.BlockStateService.Generation(ctx, block.RecommendationID())
	if err != nil {
		return nil, err
	}
	if currentGeneration != block.Generation() {
		return nil, exceptions.ErrBlockStaleGeneration(fmt.Errorf("block %s rendered at %d, current %d", blockID, block.Generation(), currentGeneration))
	}

	acquired, err := uc.BlockStateService.AcquireCommitLock(ctx, blockID)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBlockCommitPending(fmt.Errorf("block %s", blockID))
	}
	defer func() {
		releaseErr := uc.BlockStateService.ReleaseCommitLock(ctx, blockID)
		if releaseErr != nil {
			uc.Log.Warn("failed to release commit lock",
				zap.String(constvars.LoggingBlockIDKey, blockID),
				zap.Error(releaseErr),
			)
		}
	}()

	statusCode, err := send(ctx, block)
	if err != nil {
		return nil, err
	}

	result := &responses.CommitResult{
		BlockID:    blockID,
		StatusCode: statusCode,
	}
	if statusCode == constvars.StatusOK {
		err = uc.BlockStateService.RemoveBlock(ctx, blockID)
		if err != nil {
			return nil, err
		}
		result.Removed = true
	}
	return result, nil
}
