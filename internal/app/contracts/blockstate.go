package contracts

import (
	"coach-service/internal/app/models"
	"context"
)

// BlockStateService stores the per-block view-models between render and
// extraction. Replacing a recommendation's blocks bumps its render
// generation; blocks from an older generation are stale and any commit
// against them fails without side effects.
type BlockStateService interface {
	// ReplaceBlocks atomically swaps the registered blocks of one
	// recommendation for a fresh render and returns nothing; the blocks
	// already carry the new generation.
	ReplaceBlocks(ctx context.Context, recommendationID string, generation int64, blocks []models.Block) error
	GetBlock(ctx context.Context, blockID string) (*models.Block, error)
	UpdateBlock(ctx context.Context, block *models.Block) error
	// RemoveBlock deregisters a block permanently. Removal is one-way.
	RemoveBlock(ctx context.Context, blockID string) error
	// Generation returns the current render generation of a recommendation,
	// 0 when it has never been rendered.
	Generation(ctx context.Context, recommendationID string) (int64, error)
	// AcquireCommitLock marks a block as having a commit in flight. It
	// reports false when another commit already holds the mark.
	AcquireCommitLock(ctx context.Context, blockID string) (bool, error)
	ReleaseCommitLock(ctx context.Context, blockID string) error
}
