package contracts

import (
	"context"
	"senehorario-service/internal/pkg/dto/requests"
	"senehorario-service/internal/pkg/dto/responses"
)

type ScheduleUsecase interface {
	GenerateSchedules(ctx context.Context, request *requests.GenerateSchedules) (*responses.GenerateSchedules, error)
}
