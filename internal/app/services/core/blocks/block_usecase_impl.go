package blocks

import (
	"coach-service/internal/app/contracts"
	"coach-service/internal/app/models"
	"coach-service/internal/app/services/cards"
	"coach-service/internal/pkg/dto/requests"
	"coach-service/internal/pkg/dto/responses"
	"coach-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type blockUsecase struct {
	BlockStateService contracts.BlockStateService
	Log               *zap.Logger
}

var (
	blockUsecaseInstance contracts.BlockUsecase
	onceBlockUsecase     sync.Once
)

func NewBlockUsecase(blockStateService contracts.BlockStateService, logger *zap.Logger) contracts.BlockUsecase {
	onceBlockUsecase.Do(func() {
		blockUsecaseInstance = &blockUsecase{
			BlockStateService: blockStateService,
			Log:               logger,
		}
	})
	return blockUsecaseInstance
}

func (uc *blockUsecase) ApplySelection(ctx context.Context, request *requests.ApplySelection) (*responses.SelectionState, error) {
	block, err := uc.BlockStateService.GetBlock(ctx, request.BlockID)
	if err != nil {
		return nil, err
	}
	if block.Kind != models.BlockGoal && block.Kind != models.BlockBPGoal {
		return nil, exceptions.ErrBlockWrongKind(fmt.Errorf("block %s is %s", request.BlockID, block.Kind))
	}

	err = cards.ApplyChoiceSelection(block.Goal, request.Choice)
	if err != nil {
		return nil, err
	}

	err = uc.BlockStateService.UpdateBlock(ctx, block)
	if err != nil {
		return nil, err
	}

	return &responses.SelectionState{
		BlockID:       block.Goal.ID,
		FieldsEnabled: block.Goal.FieldsEnabled,
		FocusField:    block.Goal.FocusField,
	}, nil
}

func (uc *blockUsecase) RecordInput(ctx context.Context, request *requests.RecordInput) (*responses.SelectionState, error) {
	block, err := uc.BlockStateService.GetBlock(ctx, request.BlockID)
	if err != nil {
		return nil, err
	}

	state := &responses.SelectionState{BlockID: request.BlockID}
	switch block.Kind {
	case models.BlockGoal, models.BlockBPGoal:
		cards.RecordGoalInput(block.Goal, request)
		state.FieldsEnabled = block.Goal.FieldsEnabled
		state.FocusField = block.Goal.FocusField
	case models.BlockUpdateGoal:
		if request.AchievementStatus != nil {
			err = cards.RecordStatusSelection(block.UpdateGoal, models.AchievementStatus(*request.AchievementStatus))
			if err != nil {
				return nil, err
			}
		}
	default:
		return nil, exceptions.ErrBlockWrongKind(fmt.Errorf("block %s is %s", request.BlockID, block.Kind))
	}

	err = uc.BlockStateService.UpdateBlock(ctx, block)
	if err != nil {
		return nil, err
	}

	return state, nil
}
