package ports

import (
	"context"

	dashusecase "vemio-dashboard/internal/dashboard/core/usecase"
)

// ParametersLoaderPort runs the parameter fetch of a view.
type ParametersLoaderPort interface {
	Execute(ctx context.Context) dashusecase.ParametersResult
}
