package ports

import (
	"context"

	"vemio-dashboard/internal/dashboard/core/domain"
)

type ParametersReaderPort interface {
	// FetchParameters:
	//   row != nil, err = nil -> first row of the table
	//   row = nil,  err = nil -> table is empty
	//   row = nil,  err != nil -> connectivity / query / authorization error
	FetchParameters(ctx context.Context) (*domain.ParametersRow, error)
}
