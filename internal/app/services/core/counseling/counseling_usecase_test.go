package counseling

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

type fakeCounselingClient struct {
	status int
	calls  []*requests.CoachCounselingReceived
}

func (f *fakeCounselingClient) RegisterCounselingReceived(ctx context.Context, request *requests.CoachCounselingReceived) (int, error) {
	f.calls = append(f.calls, request)
	return f.status, nil
}

func counselingState() *fakeBlockState {
	return &fakeBlockState{blocks: map[string]*models.Block{
		"c-1": {
			Kind: models.BlockCounseling,
			Counseling: &models.CounselingBlock{
				ID:              "c-1",
				ExtCounselingID: "counsel-1",
				ReferenceSystem: "sys",
				ReferenceCode:   "code",
				Actions: []models.SuggestionAction{
					{Label: "Read the article", URL: "/article"},
				},
			},
		},
	}}
}

func TestRegisterReceived(t *testing.T) {
	ctx := context.Background()

	t.Run("Recorded receipt hands back the navigation target", func(t *testing.T) {
		state := counselingState()
		client := &fakeCounselingClient{status: 200}
		uc := &counselingUsecase{BlockStateService: state, CounselingCoachClient: client, Log: zap.NewNop()}

		result, err := uc.RegisterReceived(ctx, &requests.CounselingAction{BlockID: "c-1", ActionIndex: 0})
		require.NoError(t, err)
		assert.True(t, result.Recorded)
		assert.Equal(t, "/article", result.NavigateTo)
		require.Len(t, client.calls, 1)
		assert.Equal(t, "Read the article", client.calls[0].CounselingText)
	})

	t.Run("Failed write still yields the navigation target", func(t *testing.T) {
		state := counselingState()
		client := &fakeCounselingClient{status: 500}
		uc := &counselingUsecase{BlockStateService: state, CounselingCoachClient: client, Log: zap.NewNop()}

		result, err := uc.RegisterReceived(ctx, &requests.CounselingAction{BlockID: "c-1", ActionIndex: 0})
		require.NoError(t, err)
		assert.False(t, result.Recorded)
		assert.Equal(t, 500, result.StatusCode)
		assert.Equal(t, "/article", result.NavigateTo)
	})

	t.Run("Block survives the action", func(t *testing.T) {
		state := counselingState()
		client := &fakeCounselingClient{status: 200}
		uc := &counselingUsecase{BlockStateService: state, CounselingCoachClient: client, Log: zap.NewNop()}

		_, err := uc.RegisterReceived(ctx, &requests.CounselingAction{BlockID: "c-1", ActionIndex: 0})
		require.NoError(t, err)
		_, err = state.GetBlock(ctx, "c-1")
		assert.NoError(t, err)
	})

	t.Run("Unknown action index", func(t *testing.T) {
		state := counselingState()
		client := &fakeCounselingClient{status: 200}
		uc := &counselingUsecase{BlockStateService: state, CounselingCoachClient: client, Log: zap.NewNop()}

		_, err := uc.RegisterReceived(ctx, &requests.CounselingAction{BlockID: "c-1", ActionIndex: 3})
		assert.Error(t, err)
		assert.Empty(t, client.calls)
	})

	t.Run("Non-counseling block is rejected", func(t *testing.T) {
		state := counselingState()
		state.blocks["g-1"] = &models.Block{
			Kind: models.BlockGoal,
			Goal: &models.GoalBlock{ID: "g-1", Kind: models.BlockGoal},
		}
		client := &fakeCounselingClient{status: 200}
		uc := &counselingUsecase{BlockStateService: state, CounselingCoachClient: client, Log: zap.NewNop()}

		_, err := uc.RegisterReceived(ctx, &requests.CounselingAction{BlockID: "g-1", ActionIndex: 0})
		assert.Error(t, err)
	})
}
