package recommendations

import (
	"coach-service/internal/app/config"
	"coach-service/internal/app/contracts"
	"coach-service/internal/app/models"
	"coach-service/internal/app/services/cards"
	"coach-service/internal/pkg/constvars"
	"coach-service/internal/pkg/dto/requests"
	"coach-service/internal/pkg/dto/responses"
	"coach-service/internal/pkg/exceptions"
	"coach-service/internal/pkg/utils"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type recommendationUsecase struct {
	RecommendationCoachClient contracts.RecommendationCoachClient
	GoalCoachClient           contracts.GoalCoachClient
	BlockStateService         contracts.BlockStateService
	RedisRepository           contracts.RedisRepository
	InternalConfig            *config.InternalConfig
	Log                       *zap.Logger
}

var (
	recommendationUsecaseInstance contracts.RecommendationUsecase
	onceRecommendationUsecase     sync.Once
)

func NewRecommendationUsecase(
	recommendationCoachClient contracts.RecommendationCoachClient,
	goalCoachClient contracts.GoalCoachClient,
	blockStateService contracts.BlockStateService,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.RecommendationUsecase {
	onceRecommendationUsecase.Do(func() {
		recommendationUsecaseInstance = &recommendationUsecase{
			RecommendationCoachClient: recommendationCoachClient,
			GoalCoachClient:           goalCoachClient,
			BlockStateService:         blockStateService,
			RedisRepository:           redisRepository,
			InternalConfig:            internalConfig,
			Log:                       logger,
		}
	})
	return recommendationUsecaseInstance
}

func (uc *recommendationUsecase) Execute(ctx context.Context, request *requests.ExecuteRecommendation) (*responses.RenderedRecommendation, error) {
	cardList, err := uc.RecommendationCoachClient.ExecuteRecommendation(ctx, request.RecommendationID)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf(constvars.RedisKeyCardCacheFormat, request.RecommendationID)
	cacheExp := time.Duration(uc.InternalConfig.App.CardCacheExpiryInMinutes) * time.Minute
	err = uc.RedisRepository.Set(ctx, cacheKey, cardList, cacheExp)
	if err != nil {
		return nil, err
	}

	return uc.renderAndRegister(ctx, request.RecommendationID, cardList, nil)
}

func (uc *recommendationUsecase) GetCached(ctx context.Context, request *requests.GetCachedRecommendation) (*responses.RenderedRecommendation, error) {
	cardList, err := uc.cachedCards(ctx, request.RecommendationID)
	if err != nil {
		return nil, err
	}

	// The cached path re-arms the date picker; the markup it returns may be
	// freshly inserted into a page that never armed it.
	datePicker := &models.DatePickerConfig{
		MinDate: utils.TomorrowStart(time.Now()).Unix(),
	}
	return uc.renderAndRegister(ctx, request.RecommendationID, cardList, datePicker)
}

func (uc *recommendationUsecase) ApplyGoals(ctx context.Context, request *requests.ApplyGoals) (*responses.ApplyGoalsResult, error) {
	recordedGoals, err := uc.GoalCoachClient.ListRecordedGoals(ctx)
	if err != nil {
		return nil, err
	}

	result := &responses.ApplyGoalsResult{
		RecommendationID: request.RecommendationID,
		ExtGoalIDs:       make([]string, 0, len(recordedGoals)),
	}
	for _, goal := range recordedGoals {
		result.ExtGoalIDs = append(result.ExtGoalIDs, goal.ExtGoalID)
	}
	return result, nil
}

func (uc *recommendationUsecase) cachedCards(ctx context.Context, recommendationID string) ([]models.Card, error) {
	cacheKey := fmt.Sprintf(constvars.RedisKeyCardCacheFormat, recommendationID)
	data, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		return nil, err
	}
	if data != "" {
		var cardList []models.Card
		err = json.Unmarshal([]byte(data), &cardList)
		if err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		return cardList, nil
	}

	cardList, err := uc.RecommendationCoachClient.GetCachedRecommendation(ctx, recommendationID)
	if err != nil {
		return nil, err
	}

	cacheExp := time.Duration(uc.InternalConfig.App.CardCacheExpiryInMinutes) * time.Minute
	err = uc.RedisRepository.Set(ctx, cacheKey, cardList, cacheExp)
	if err != nil {
		return nil, err
	}
	return cardList, nil
}

// renderAndRegister projects the cards into markup, registers the resulting
// blocks under a new render generation, and invalidates the previous
// generation's blocks in the same step.
func (uc *recommendationUsecase) renderAndRegister(ctx context.Context, recommendationID string, cardList []models.Card, datePicker *models.DatePickerConfig) (*responses.RenderedRecommendation, error) {
	generation := time.Now().UnixNano()
	output, err := cards.Render(recommendationID, generation, cardList)
	if err != nil {
		return nil, err
	}

	err = uc.BlockStateService.ReplaceBlocks(ctx, recommendationID, generation, output.Blocks)
	if err != nil {
		return nil, err
	}

	blockIDs := make([]string, 0, len(output.Blocks))
	for i := range output.Blocks {
		blockIDs = append(blockIDs, output.Blocks[i].ID())
	}

	uc.Log.Debug("rendered recommendation",
		zap.String(constvars.LoggingRecommendationIDKey, recommendationID),
		zap.Int("blocks", len(blockIDs)),
	)

	return &responses.RenderedRecommendation{
		RecommendationID: recommendationID,
		RenderGeneration: generation,
		Markup:           output.Markup,
		BlockIDs:         blockIDs,
		DatePicker:       datePicker,
	}, nil
}
