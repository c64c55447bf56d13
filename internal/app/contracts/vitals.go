package contracts

import (
	"coach-service/internal/app/models"
	"coach-service/internal/pkg/dto/requests"
	"coach-service/internal/pkg/dto/responses"
	"context"
)

type VitalsUsecase interface {
	CreateReading(ctx context.Context, request *requests.CreateVitals) (*responses.VitalsCreated, error)
}

// VitalsCoachClient posts a reading to the COACH backend and returns the
// created row on 200; on any other status the row is nil and the status
// alone drives the outcome.
type VitalsCoachClient interface {
	CreateVitals(ctx context.Context, request *requests.CoachCreateVitals) (int, *models.VitalsRow, error)
}
