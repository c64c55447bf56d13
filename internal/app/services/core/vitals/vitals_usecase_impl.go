package vitals

import (
	"coach-service/internal/app/config"
	"coach-service/internal/app/contracts"
	"coach-service/internal/app/models"
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

type vitalsUsecase struct {
	VitalsCoachClient contracts.VitalsCoachClient
	RedisRepository   contracts.RedisRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	vitalsUsecaseInstance contracts.VitalsUsecase
	onceVitalsUsecase     sync.Once
)

func NewVitalsUsecase(
	vitalsCoachClient contracts.VitalsCoachClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.VitalsUsecase {
	onceVitalsUsecase.Do(func() {
		vitalsUsecaseInstance = &vitalsUsecase{
			VitalsCoachClient: vitalsCoachClient,
			RedisRepository:   redisRepository,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return vitalsUsecaseInstance
}

func (uc *vitalsUsecase) CreateReading(ctx context.Context, request *requests.CreateVitals) (*responses.VitalsCreated, error) {
	readingDate := time.Unix(request.ReadingDate, 0)
	instant, err := utils.ComposeReadingInstant(readingDate, request.ReadingTime)
	if err != nil {
		return nil, err
	}

	payload := &requests.CoachCreateVitals{
		Systolic1:            request.Systolic1,
		Diastolic1:           request.Diastolic1,
		Pulse1:               request.Pulse1,
		Systolic2:            request.Systolic2,
		Diastolic2:           request.Diastolic2,
		Pulse2:               request.Pulse2,
		ReadingDateTS:        instant.Unix(),
		FollowedInstructions: request.Confirm == "yes",
	}

	statusCode, row, err := uc.VitalsCoachClient.CreateVitals(ctx, payload)
	if err != nil {
		return nil, err
	}
	if statusCode != constvars.StatusOK || row == nil {
		return nil, exceptions.ErrCoachCreateResource(fmt.Errorf("status %d", statusCode), constvars.ResourceVitals)
	}

	table, err := uc.loadTable(ctx, request.SessionID)
	if err != nil {
		return nil, err
	}
	table.Insert(*row)

	tableKey := fmt.Sprintf(constvars.RedisKeyVitalsTableFormat, request.SessionID)
	tableExp := time.Duration(uc.InternalConfig.App.BlockStateExpiryInMinutes) * time.Minute
	err = uc.RedisRepository.Set(ctx, tableKey, table, tableExp)
	if err != nil {
		return nil, err
	}

	// The form stays open for another entry, so the response re-arms the
	// reading date picker with the same bounds as the initial page.
	now := time.Now()
	return &responses.VitalsCreated{
		Row:   *row,
		Table: *table,
		DatePicker: &models.DatePickerConfig{
			MinDate: utils.FirstOfPreviousMonth(now).Unix(),
			MaxDate: utils.DayStart(now).Unix(),
		},
	}, nil
}

func (uc *vitalsUsecase) loadTable(ctx context.Context, sessionID string) (*models.VitalsTable, error) {
	data, err := uc.RedisRepository.Get(ctx, fmt.Sprintf(constvars.RedisKeyVitalsTableFormat, sessionID))
	if err != nil {
		return nil, err
	}

	table := new(models.VitalsTable)
	if data == "" {
		return table, nil
	}
	err = json.Unmarshal([]byte(data), table)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return table, nil
}
