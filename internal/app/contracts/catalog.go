package contracts

import (
	"context"
	"senehorario-service/internal/pkg/catalog_dto"
)

type CourseCatalogClient interface {
	SearchOfferings(ctx context.Context, nameInput string) ([]catalog_dto.CourseOffering, error)
}
