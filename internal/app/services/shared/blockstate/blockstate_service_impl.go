package blockstate

import (
	"coach-service/internal/app/config"
	"coach-service/internal/app/contracts"
	"coach-service/internal/app/models"
	"coach-service/internal/pkg/constvars"
	"coach-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type blockStateService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

var (
	blockStateServiceInstance contracts.BlockStateService
	onceBlockStateService     sync.Once
)

func NewBlockStateService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.BlockStateService {
	onceBlockStateService.Do(func() {
		blockStateServiceInstance = &blockStateService{
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
		}
	})
	return blockStateServiceInstance
}

func (s *blockStateService) blockExpiry() time.Duration {
	return time.Duration(s.InternalConfig.App.BlockStateExpiryInMinutes) * time.Minute
}

func (s *blockStateService) ReplaceBlocks(ctx context.Context, recommendationID string, generation int64, blocks []models.Block) error {
	setKey := fmt.Sprintf(constvars.RedisKeyBlockSetFormat, recommendationID)

	// Blocks of the previous render are dropped first so a commit racing
	// with a re-render sees them as gone, never as half-replaced.
	oldIDs, err := s.RedisRepository.GetSetMembers(ctx, setKey)
	if err != nil {
		return err
	}
	for _, oldID := range oldIDs {
		err = s.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisKeyBlockFormat, oldID))
		if err != nil {
			return err
		}
	}
	err = s.RedisRepository.Delete(ctx, setKey)
	if err != nil {
		return err
	}

	genKey := fmt.Sprintf(constvars.RedisKeyRenderGenFormat, recommendationID)
	err = s.RedisRepository.Set(ctx, genKey, generation, s.blockExpiry())
	if err != nil {
		return err
	}

	for i := range blocks {
		block := blocks[i]
		err = s.RedisRepository.Set(ctx, fmt.Sprintf(constvars.RedisKeyBlockFormat, block.ID()), block, s.blockExpiry())
		if err != nil {
			return err
		}
		err = s.RedisRepository.AddToSet(ctx, setKey, block.ID())
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *blockStateService) GetBlock(ctx context.Context, blockID string) (*models.Block, error) {
	data, err := s.RedisRepository.Get(ctx, fmt.Sprintf(constvars.RedisKeyBlockFormat, blockID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrBlockNotFound(fmt.Errorf("no block registered under id %s", blockID))
	}

	block := new(models.Block)
	err = json.Unmarshal([]byte(data), block)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return block, nil
}

func (s *blockStateService) UpdateBlock(ctx context.Context, block *models.Block) error {
	return s.RedisRepository.Set(ctx, fmt.Sprintf(constvars.RedisKeyBlockFormat, block.ID()), block, s.blockExpiry())
}

func (s *blockStateService) RemoveBlock(ctx context.Context, blockID string) error {
	return s.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisKeyBlockFormat, blockID))
}

func (s *blockStateService) Generation(ctx context.Context, recommendationID string) (int64, error) {
	data, err := s.RedisRepository.Get(ctx, fmt.Sprintf(constvars.RedisKeyRenderGenFormat, recommendationID))
	if err != nil {
		return 0, err
	}
	if data == "" {
		return 0, nil
	}
	generation, err := strconv.ParseInt(data, 10, 64)
	if err != nil {
		return 0, exceptions.ErrCannotParseJSON(err)
	}
	return generation, nil
}

func (s *blockStateService) AcquireCommitLock(ctx context.Context, blockID string) (bool, error) {
	exp := time.Duration(s.InternalConfig.App.CommitLockExpiryInSeconds) * time.Second
	return s.RedisRepository.TrySetNX(ctx, fmt.Sprintf(constvars.RedisKeyCommitLockFormat, blockID), "1", exp)
}

func (s *blockStateService) ReleaseCommitLock(ctx context.Context, blockID string) error {
	return s.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisKeyCommitLockFormat, blockID))
}
