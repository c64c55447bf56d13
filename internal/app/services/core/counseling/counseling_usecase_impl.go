package counseling

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

type counselingUsecase struct {
	BlockStateService     contracts.BlockStateService
	CounselingCoachClient contracts.CounselingCoachClient
	Log                   *zap.Logger
}

var (
	counselingUsecaseInstance contracts.CounselingUsecase
	onceCounselingUsecase     sync.Once
)

func NewCounselingUsecase(
	blockStateService contracts.BlockStateService,
	counselingCoachClient contracts.CounselingCoachClient,
	logger *zap.Logger,
) contracts.CounselingUsecase {
	onceCounselingUsecase.Do(func() {
		counselingUsecaseInstance = &counselingUsecase{
			BlockStateService:     blockStateService,
			CounselingCoachClient: counselingCoachClient,
			Log:                   logger,
		}
	})
	return counselingUsecaseInstance
}

// RegisterReceived records the receipt write, then hands back the navigation
// target whatever status the write resolved with. Navigation waits for the
// write to complete but never depends on its outcome.
func (uc *counselingUsecase) RegisterReceived(ctx context.Context, request *requests.CounselingAction) (*responses.CounselingResult, error) {
	block, err := uc.BlockStateService.GetBlock(ctx, request.BlockID)
	if err != nil {
		return nil, err
	}
	if block.Kind != models.BlockCounseling {
		return nil, exceptions.ErrBlockWrongKind(fmt.Errorf("block %s is %s", request.BlockID, block.Kind))
	}

	data, err := cards.BuildCounselingData(block.Counseling, request.ActionIndex)
	if err != nil {
		return nil, err
	}

	statusCode, err := uc.CounselingCoachClient.RegisterCounselingReceived(ctx, data)
	if err != nil {
		return nil, err
	}
	if statusCode != constvars.StatusOK {
		uc.Log.Warn("counseling receipt not recorded",
			zap.String(constvars.LoggingBlockIDKey, request.BlockID),
			zap.Int("status_code", statusCode),
		)
	}

	return &responses.CounselingResult{
		BlockID:    request.BlockID,
		StatusCode: statusCode,
		Recorded:   statusCode == constvars.StatusOK,
		NavigateTo: block.Counseling.Actions[request.ActionIndex].URL,
	}, nil
}
