package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"vemio-dashboard/internal/opportunities/core/domain"
)

// fakeResult implements sql.Result for tests.
type fakeResult struct {
	rowsAffected int64
	err          error
}

func (f *fakeResult) LastInsertId() (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeResult) RowsAffected() (int64, error) {
	return f.rowsAffected, f.err
}

// fakeDB implements DB interface for tests.
type fakeDB struct {
	ExecFn     func(ctx context.Context, query string, args ...any) (sql.Result, error)
	lastQuery  string
	lastArgs   []any
	execCalled bool
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.execCalled = true
	f.lastQuery = query
	f.lastArgs = args
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	return &fakeResult{rowsAffected: 1}, nil
}

func samplePlan() *domain.ActionPlan {
	deadline := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	return &domain.ActionPlan{
		ID:                  uuid.New(),
		OpportunityID:       1,
		OpportunityTitle:    "Venta Incremental",
		InventoryDays:       14,
		OrderSize:           500,
		Owner:               "Ana",
		Deadline:            &deadline,
		ProjectedROIPercent: 150,
		Tags:                []string{"Auto servicio", "Centro", "Walmart"},
		Metadata:            map[string]any{"current_value": 250000},
		ApprovedAt:          time.Now().UTC(),
		DedupeKey:           "1|14|500|ana|2025-03-31",
	}
}

// ------------------------------------------------------------
// SUCCESS (created)
// ------------------------------------------------------------

func TestPlanRepository_InsertPlan_Created(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "INSERT INTO gonac.tab_planes_accion") {
				t.Fatalf("unexpected query: %s", query)
			}
			return &fakeResult{rowsAffected: 1}, nil
		},
	}

	repo := NewPlanRepository(db)

	created, err := repo.InsertPlan(context.Background(), samplePlan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true, got false")
	}
	if !db.execCalled {
		t.Fatalf("expected ExecContext to be called")
	}
	if len(db.lastArgs) != 12 {
		t.Fatalf("expected 12 args, got %d", len(db.lastArgs))
	}
	if string(db.lastArgs[9].([]byte)) != `{"current_value":250000}` {
		t.Errorf("unexpected metadata arg: %s", db.lastArgs[9])
	}
}

// ------------------------------------------------------------
// OPTIONAL FIELDS -> NULL
// ------------------------------------------------------------

func TestPlanRepository_InsertPlan_NullOptionals(t *testing.T) {
	db := &fakeDB{}
	repo := NewPlanRepository(db)

	p := samplePlan()
	p.Owner = ""
	p.Deadline = nil

	if _, err := repo.InsertPlan(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db.lastArgs[5] != nil {
		t.Errorf("expected nil owner, got %v", db.lastArgs[5])
	}
	if db.lastArgs[6] != nil {
		t.Errorf("expected nil deadline, got %v", db.lastArgs[6])
	}
}

// ------------------------------------------------------------
// DUPLICATE (rowsAffected=0)
// ------------------------------------------------------------

func TestPlanRepository_InsertPlan_Duplicate(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return &fakeResult{rowsAffected: 0}, nil
		},
	}

	repo := NewPlanRepository(db)

	created, err := repo.InsertPlan(context.Background(), samplePlan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected created=false for duplicate")
	}
}

// ------------------------------------------------------------
// DB ERROR
// ------------------------------------------------------------

func TestPlanRepository_InsertPlan_Error(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return nil, errors.New("db error")
		},
	}

	repo := NewPlanRepository(db)

	created, err := repo.InsertPlan(context.Background(), samplePlan())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if created {
		t.Fatalf("expected created=false on error")
	}
}

func TestPlanRepository_InsertPlan_RowsAffectedError(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return &fakeResult{err: errors.New("driver error")}, nil
		},
	}

	repo := NewPlanRepository(db)

	if _, err := repo.InsertPlan(context.Background(), samplePlan()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
