package blocks

import (
	"coach-service/internal/app/models"
	"coach-service/internal/pkg/dto/requests"
	"coach-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBlockState struct {
	blocks map[string]*models.Block
}

func (f *fakeBlockState) ReplaceBlocks(ctx context.Context, recommendationID string, generation int64, blocks []models.Block) error {
	return nil
}

func (f *fakeBlockState) GetBlock(ctx context.Context, blockID string) (*models.Block, error) {
	block, ok := f.blocks[blockID]
	if !ok {
		return nil, exceptions.ErrBlockNotFound(fmt.Errorf("no block %s", blockID))
	}
	return block, nil
}

func (f *fakeBlockState) UpdateBlock(ctx context.Context, block *models.Block) error {
	f.blocks[block.ID()] = block
	return nil
}

func (f *fakeBlockState) RemoveBlock(ctx context.Context, blockID string) error {
	delete(f.blocks, blockID)
	return nil
}

func (f *fakeBlockState) Generation(ctx context.Context, recommendationID string) (int64, error) {
	return 1, nil
}

func (f *fakeBlockState) AcquireCommitLock(ctx context.Context, blockID string) (bool, error) {
	return true, nil
}

func (f *fakeBlockState) ReleaseCommitLock(ctx context.Context, blockID string) error {
	return nil
}

func stateWithChoiceBlock() *fakeBlockState {
	return &fakeBlockState{blocks: map[string]*models.Block{
		"block-1": {
			Kind: models.BlockGoal,
			Goal: &models.GoalBlock{
				ID:             "block-1",
				Kind:           models.BlockGoal,
				GroupName:      "action0",
				SelectedChoice: models.NoChoiceSelected,
				Choices: []models.GoalChoice{
					{Label: "Walk daily"},
					{Label: "Swim weekly"},
				},
			},
		},
	}}
}

func TestApplySelection(t *testing.T) {
	ctx := context.Background()

	t.Run("Custom selection enables fields and persists", func(t *testing.T) {
		state := stateWithChoiceBlock()
		uc := &blockUsecase{BlockStateService: state, Log: zap.NewNop()}

		result, err := uc.ApplySelection(ctx, &requests.ApplySelection{BlockID: "block-1", Choice: requests.SelectionCustom})
		require.NoError(t, err)
		assert.True(t, result.FieldsEnabled)
		assert.Equal(t, "freetextResponse", result.FocusField)

		stored, err := state.GetBlock(ctx, "block-1")
		require.NoError(t, err)
		assert.True(t, stored.Goal.CustomSelected)
	})

	t.Run("Predefined selection disables fields", func(t *testing.T) {
		state := stateWithChoiceBlock()
		uc := &blockUsecase{BlockStateService: state, Log: zap.NewNop()}

		_, err := uc.ApplySelection(ctx, &requests.ApplySelection{BlockID: "block-1", Choice: requests.SelectionCustom})
		require.NoError(t, err)
		result, err := uc.ApplySelection(ctx, &requests.ApplySelection{BlockID: "block-1", Choice: "1"})
		require.NoError(t, err)
		assert.False(t, result.FieldsEnabled)
		assert.Empty(t, result.FocusField)
	})

	t.Run("Counseling block cannot take a selection", func(t *testing.T) {
		state := stateWithChoiceBlock()
		state.blocks["c-1"] = &models.Block{
			Kind:       models.BlockCounseling,
			Counseling: &models.CounselingBlock{ID: "c-1"},
		}
		uc := &blockUsecase{BlockStateService: state, Log: zap.NewNop()}

		_, err := uc.ApplySelection(ctx, &requests.ApplySelection{BlockID: "c-1", Choice: "0"})
		assert.Error(t, err)
	})
}

func TestRecordInput(t *testing.T) {
	ctx := context.Background()

	t.Run("Target date is recorded on the block", func(t *testing.T) {
		state := stateWithChoiceBlock()
		uc := &blockUsecase{BlockStateService: state, Log: zap.NewNop()}

		date := int64(1710028800)
		_, err := uc.RecordInput(ctx, &requests.RecordInput{BlockID: "block-1", TargetDateTS: &date})
		require.NoError(t, err)

		stored, err := state.GetBlock(ctx, "block-1")
		require.NoError(t, err)
		assert.Equal(t, date, stored.Goal.TargetDate)
	})

	t.Run("Achievement status moves an update-goal block", func(t *testing.T) {
		state := stateWithChoiceBlock()
		state.blocks["up-1"] = &models.Block{
			Kind:       models.BlockUpdateGoal,
			UpdateGoal: &models.UpdateGoalBlock{ID: "up-1", SelectedStatus: models.AchievementInProgress},
		}
		uc := &blockUsecase{BlockStateService: state, Log: zap.NewNop()}

		status := "NOT_ACHIEVED"
		_, err := uc.RecordInput(ctx, &requests.RecordInput{BlockID: "up-1", AchievementStatus: &status})
		require.NoError(t, err)

		stored, err := state.GetBlock(ctx, "up-1")
		require.NoError(t, err)
		assert.Equal(t, models.AchievementNotAchieved, stored.UpdateGoal.SelectedStatus)
	})

	t.Run("Counseling block takes no input", func(t *testing.T) {
		state := stateWithChoiceBlock()
		state.blocks["c-1"] = &models.Block{
			Kind:       models.BlockCounseling,
			Counseling: &models.CounselingBlock{ID: "c-1"},
		}
		uc := &blockUsecase{BlockStateService: state, Log: zap.NewNop()}

		text := "hello"
		_, err := uc.RecordInput(ctx, &requests.RecordInput{BlockID: "c-1", FreeText: &text})
		assert.Error(t, err)
	})
}
