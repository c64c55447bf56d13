package contracts

import (
	"coach-service/internal/pkg/dto/requests"
	"coach-service/internal/pkg/dto/responses"
	"context"
)

// BlockUsecase is the interaction state controller surface: selection
// changes and input recording against one block's view-model, scoped to that
// block only.
type BlockUsecase interface {
	ApplySelection(ctx context.Context, request *requests.ApplySelection) (*responses.SelectionState, error)
	RecordInput(ctx context.Context, request *requests.RecordInput) (*responses.SelectionState, error)
}
