package usecase_test

import (
	"context"
	"errors"
	"testing"

	"vemio-dashboard/internal/dashboard/core/domain"
	"vemio-dashboard/internal/dashboard/core/usecase"
)

// fakeParametersReader, ParametersReaderPort'u test için fake'ler.
type fakeParametersReader struct {
	FetchFn func(ctx context.Context) (*domain.ParametersRow, error)
	called  bool
}

func (f *fakeParametersReader) FetchParameters(ctx context.Context) (*domain.ParametersRow, error) {
	f.called = true
	if f.FetchFn != nil {
		return f.FetchFn(ctx)
	}
	return nil, nil
}

// ------------------------------------------------------------
// SUCCESS (row found)
// ------------------------------------------------------------

func TestFetchParameters_Success(t *testing.T) {
	reader := &fakeParametersReader{
		FetchFn: func(ctx context.Context) (*domain.ParametersRow, error) {
			return &domain.ParametersRow{
				InventoryDaysOptimal: 30,
				InventoryDaysActual:  40,
				ReorderPointOptimal:  90,
				ReorderPointActual:   100,
			}, nil
		},
	}

	uc := usecase.NewFetchParametersUseCase(reader)

	res := uc.Execute(context.Background())
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if !res.FromSource {
		t.Fatalf("expected records from source")
	}
	if len(res.Records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(res.Records))
	}
	if res.Records[0].OptimizedValue != 30 || res.Records[0].ActualValue != 40 {
		t.Fatalf("unexpected first record: %+v", res.Records[0])
	}
	if !reader.called {
		t.Fatalf("expected FetchParameters to be called")
	}
}

// ------------------------------------------------------------
// EMPTY TABLE -> fallback, no error
// ------------------------------------------------------------

func TestFetchParameters_EmptyTable(t *testing.T) {
	uc := usecase.NewFetchParametersUseCase(&fakeParametersReader{})

	res := uc.Execute(context.Background())
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.FromSource {
		t.Fatalf("expected fallback records")
	}
	if res.Records[0].OptimizedValue != 45 || res.Records[0].ActualValue != 52 {
		t.Fatalf("expected default records, got %+v", res.Records[0])
	}
}

// ------------------------------------------------------------
// REPOSITORY ERROR -> fallback + cause as message
// ------------------------------------------------------------

func TestFetchParameters_RepositoryError(t *testing.T) {
	reader := &fakeParametersReader{
		FetchFn: func(ctx context.Context) (*domain.ParametersRow, error) {
			return nil, errors.New("permission denied for schema gonac")
		},
	}

	uc := usecase.NewFetchParametersUseCase(reader)

	res := uc.Execute(context.Background())
	if res.Err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !errors.Is(res.Err, usecase.ErrParametersFetch) {
		t.Fatalf("expected ErrParametersFetch, got %v", res.Err)
	}
	if res.Err.Error() != "permission denied for schema gonac" {
		t.Fatalf("expected the cause as message, got %q", res.Err.Error())
	}
	if res.FromSource {
		t.Fatalf("error and source data must not both be set")
	}
	if len(res.Records) != 4 {
		t.Fatalf("expected fallback records, got %d", len(res.Records))
	}
}

func TestFetchParameters_EmptyCauseUsesGenericMessage(t *testing.T) {
	cause := errors.New("")
	reader := &fakeParametersReader{
		FetchFn: func(ctx context.Context) (*domain.ParametersRow, error) {
			return nil, cause
		},
	}

	res := usecase.NewFetchParametersUseCase(reader).Execute(context.Background())
	if res.Err == nil {
		t.Fatalf("expected error, got nil")
	}
	if res.Err.Error() != "Failed to fetch data" {
		t.Fatalf("expected generic message, got %q", res.Err.Error())
	}
	if !errors.Is(res.Err, cause) || !errors.Is(res.Err, usecase.ErrParametersFetch) {
		t.Fatalf("expected both sentinel and cause to match, got %v", res.Err)
	}
}
