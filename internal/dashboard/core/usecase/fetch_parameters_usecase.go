package usecase

import (
	"context"
	"errors"

	"vemio-dashboard/internal/dashboard/core/domain"
	"vemio-dashboard/internal/dashboard/core/ports"
)

var ErrParametersFetch = errors.New("failed to fetch data")

const genericFetchMessage = "Failed to fetch data"

// fetchError matches ErrParametersFetch but reads as the underlying cause,
// which is what the view shows inline.
type fetchError struct {
	cause error
}

func (e *fetchError) Error() string {
	if msg := e.cause.Error(); msg != "" {
		return msg
	}
	return genericFetchMessage
}

func (e *fetchError) Unwrap() []error {
	return []error{ErrParametersFetch, e.cause}
}

// ParametersResult is the outcome of the single parameter fetch.
// Records is always usable: it falls back to the default set when the table is
// empty or the fetch failed. Err and FromSource are never both set.
type ParametersResult struct {
	Records    []domain.ParameterRecord
	FromSource bool
	Err        error
}

type FetchParametersUseCase struct {
	reader ports.ParametersReaderPort
}

func NewFetchParametersUseCase(reader ports.ParametersReaderPort) *FetchParametersUseCase {
	return &FetchParametersUseCase{reader: reader}
}

func (uc *FetchParametersUseCase) Execute(ctx context.Context) ParametersResult {
	row, err := uc.reader.FetchParameters(ctx)
	if err != nil {
		return ParametersResult{
			Records: domain.DefaultParameterRecords(),
			Err:     &fetchError{cause: err},
		}
	}

	if row == nil {
		return ParametersResult{Records: domain.DefaultParameterRecords()}
	}

	return ParametersResult{
		Records:    domain.ParameterRecordsFromRow(*row),
		FromSource: true,
	}
}
