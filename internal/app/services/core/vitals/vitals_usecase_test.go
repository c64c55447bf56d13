package vitals

import (
	"coach-service/internal/app/config"
	"coach-service/internal/app/models"
	"coach-service/internal/pkg/dto/requests"
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedis struct {
	store map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: make(map[string]string)}
}

func (f *fakeRedis) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = string(data)
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	return f.store[key], nil
}

func (f *fakeRedis) AddToSet(ctx context.Context, key string, values ...interface{}) error {
	return nil
}

func (f *fakeRedis) GetSetMembers(ctx context.Context, key string) ([]string, error) {
	return nil, nil
}

func (f *fakeRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}

type fakeVitalsClient struct {
	status int
	row    *models.VitalsRow
	calls  []*requests.CoachCreateVitals
}

func (f *fakeVitalsClient) CreateVitals(ctx context.Context, request *requests.CoachCreateVitals) (int, *models.VitalsRow, error) {
	f.calls = append(f.calls, request)
	return f.status, f.row, nil
}

func testConfig() *config.InternalConfig {
	cfg := &config.InternalConfig{}
	cfg.App.BlockStateExpiryInMinutes = 30
	return cfg
}

func readingRequest() *requests.CreateVitals {
	return &requests.CreateVitals{
		SessionID:   "sess-1",
		Systolic1:   "128",
		Diastolic1:  "82",
		Pulse1:      "70",
		ReadingDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC).Unix(),
		ReadingTime: "7:05 pm",
		Confirm:     "yes",
	}
}

func TestCreateReading(t *testing.T) {
	ctx := context.Background()

	t.Run("Composes the reading instant from date and clock time", func(t *testing.T) {
		client := &fakeVitalsClient{status: 200, row: &models.VitalsRow{ReadingDateTimestamp: 1, ReadingType: "BP", Value: "128/82"}}
		uc := &vitalsUsecase{VitalsCoachClient: client, RedisRepository: newFakeRedis(), InternalConfig: testConfig(), Log: zap.NewNop()}

		_, err := uc.CreateReading(ctx, readingRequest())
		require.NoError(t, err)
		require.Len(t, client.calls, 1)

		sent := time.Unix(client.calls[0].ReadingDateTS, 0)
		assert.Equal(t, 19, sent.Hour())
		assert.Equal(t, 5, sent.Minute())
		assert.Equal(t, time.Unix(readingRequest().ReadingDate, 0).Day(), sent.Day())
		assert.True(t, client.calls[0].FollowedInstructions)
	})

	t.Run("Returned row is merged into the stored table in order", func(t *testing.T) {
		redis := newFakeRedis()
		existing := &models.VitalsTable{Rows: []models.VitalsRow{
			{ReadingDateTimestamp: 100, Value: "old-a"},
			{ReadingDateTimestamp: 300, Value: "old-b"},
		}}
		data, err := json.Marshal(existing)
		require.NoError(t, err)
		redis.store["vitals:sess-1:table"] = string(data)

		client := &fakeVitalsClient{status: 200, row: &models.VitalsRow{ReadingDateTimestamp: 200, Value: "new"}}
		uc := &vitalsUsecase{VitalsCoachClient: client, RedisRepository: redis, InternalConfig: testConfig(), Log: zap.NewNop()}

		result, err := uc.CreateReading(ctx, readingRequest())
		require.NoError(t, err)
		require.Len(t, result.Table.Rows, 3)
		assert.Equal(t, "old-a", result.Table.Rows[0].Value)
		assert.Equal(t, "new", result.Table.Rows[1].Value)
		assert.Equal(t, "old-b", result.Table.Rows[2].Value)

		var persisted models.VitalsTable
		require.NoError(t, json.Unmarshal([]byte(redis.store["vitals:sess-1:table"]), &persisted))
		assert.Len(t, persisted.Rows, 3)
	})

	t.Run("First reading starts a fresh table", func(t *testing.T) {
		client := &fakeVitalsClient{status: 200, row: &models.VitalsRow{ReadingDateTimestamp: 100, Value: "only"}}
		uc := &vitalsUsecase{VitalsCoachClient: client, RedisRepository: newFakeRedis(), InternalConfig: testConfig(), Log: zap.NewNop()}

		result, err := uc.CreateReading(ctx, readingRequest())
		require.NoError(t, err)
		require.Len(t, result.Table.Rows, 1)
		assert.Equal(t, "only", result.Row.Value)
	})

	t.Run("Date picker spans first of last month through today", func(t *testing.T) {
		client := &fakeVitalsClient{status: 200, row: &models.VitalsRow{}}
		uc := &vitalsUsecase{VitalsCoachClient: client, RedisRepository: newFakeRedis(), InternalConfig: testConfig(), Log: zap.NewNop()}

		result, err := uc.CreateReading(ctx, readingRequest())
		require.NoError(t, err)
		require.NotNil(t, result.DatePicker)

		min := time.Unix(result.DatePicker.MinDate, 0)
		assert.Equal(t, 1, min.Day())
		assert.LessOrEqual(t, result.DatePicker.MinDate, result.DatePicker.MaxDate)
		assert.LessOrEqual(t, result.DatePicker.MaxDate, time.Now().Unix())
	})

	t.Run("Backend failure surfaces as an error and leaves the table alone", func(t *testing.T) {
		redis := newFakeRedis()
		client := &fakeVitalsClient{status: 500}
		uc := &vitalsUsecase{VitalsCoachClient: client, RedisRepository: redis, InternalConfig: testConfig(), Log: zap.NewNop()}

		_, err := uc.CreateReading(ctx, readingRequest())
		assert.Error(t, err)
		assert.NotContains(t, redis.store, "vitals:sess-1:table")
	})

	t.Run("Declined confirmation is forwarded as-is", func(t *testing.T) {
		client := &fakeVitalsClient{status: 200, row: &models.VitalsRow{}}
		uc := &vitalsUsecase{VitalsCoachClient: client, RedisRepository: newFakeRedis(), InternalConfig: testConfig(), Log: zap.NewNop()}

		request := readingRequest()
		request.Confirm = "no"
		_, err := uc.CreateReading(ctx, request)
		require.NoError(t, err)
		require.Len(t, client.calls, 1)
		assert.False(t, client.calls[0].FollowedInstructions)
	})

	t.Run("Unparseable clock time never reaches the backend", func(t *testing.T) {
		client := &fakeVitalsClient{status: 200, row: &models.VitalsRow{}}
		uc := &vitalsUsecase{VitalsCoachClient: client, RedisRepository: newFakeRedis(), InternalConfig: testConfig(), Log: zap.NewNop()}

		request := readingRequest()
		request.ReadingTime = "25:99"
		_, err := uc.CreateReading(ctx, request)
		assert.Error(t, err)
		assert.Empty(t, client.calls)
	})
}
