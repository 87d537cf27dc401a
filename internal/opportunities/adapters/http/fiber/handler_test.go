package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dashdomain "vemio-dashboard/internal/dashboard/core/domain"
	"vemio-dashboard/internal/opportunities/core/domain"
	"vemio-dashboard/internal/opportunities/core/usecase"
)

type fakeOpportunitiesUseCase struct {
	SimulateFunc   func(ctx context.Context, in usecase.PlanInput) (*domain.Simulation, error)
	ApproveFunc    func(ctx context.Context, in usecase.PlanInput) (*usecase.ApprovePlanResult, error)
	LastPlanInput  usecase.PlanInput
	approveCalled  bool
	simulateCalled bool
}

func (f *fakeOpportunitiesUseCase) List() []domain.Opportunity {
	return domain.StaticOpportunities()
}

func (f *fakeOpportunitiesUseCase) Analysis() []domain.RootCauseCard {
	return domain.TopRootCauses()
}

func (f *fakeOpportunitiesUseCase) Simulate(ctx context.Context, in usecase.PlanInput) (*domain.Simulation, error) {
	f.simulateCalled = true
	f.LastPlanInput = in
	if f.SimulateFunc != nil {
		return f.SimulateFunc(ctx, in)
	}
	return &domain.Simulation{}, nil
}

func (f *fakeOpportunitiesUseCase) Approve(ctx context.Context, in usecase.PlanInput) (*usecase.ApprovePlanResult, error) {
	f.approveCalled = true
	f.LastPlanInput = in
	if f.ApproveFunc != nil {
		return f.ApproveFunc(ctx, in)
	}
	return &usecase.ApprovePlanResult{Plan: &domain.ActionPlan{ID: uuid.New()}, Created: true}, nil
}

// helper: create fiber app and routes
func setupTestApp(uc OpportunitiesUseCase) *fiber.App {
	app := fiber.New()
	h := NewOpportunitiesHandler(uc)

	app.Get("/opportunities", h.ListOpportunities)
	app.Get("/opportunities/analysis", h.GetAnalysis)
	app.Post("/opportunities/:id/plans/simulate", h.SimulatePlan)
	app.Post("/opportunities/:id/plans", h.ApprovePlan)

	return app
}

// helper: send request
func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, respBody
}

func defaultPlanRequest() PlanRequest {
	return PlanRequest{InventoryDays: 14, OrderSize: 500, Owner: "Ana", Deadline: "2030-01-01"}
}

// ---------------------------------------------------------
// LIST / ANALYSIS
// ---------------------------------------------------------

func TestListOpportunities(t *testing.T) {
	app := setupTestApp(&fakeOpportunitiesUseCase{})

	resp, body := doRequest(t, app, http.MethodGet, "/opportunities", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", resp.StatusCode, string(body))
	}

	var got OpportunitiesResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}

	if len(got.Opportunities) != 3 {
		t.Fatalf("expected 3 opportunities, got %d", len(got.Opportunities))
	}
	if got.TotalPotential != 525000 {
		t.Errorf("expected total 525000, got %v", got.TotalPotential)
	}
	first := got.Opportunities[0]
	if first.DisplayValue != "$250K" || first.PriorityColor != "error" {
		t.Errorf("unexpected first card: %+v", first)
	}
}

func TestGetAnalysis(t *testing.T) {
	app := setupTestApp(&fakeOpportunitiesUseCase{})

	resp, body := doRequest(t, app, http.MethodGet, "/opportunities/analysis", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var got AnalysisResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(got.RootCauses) != 3 || got.RootCauses[1].DeviationLabel != "+30%" {
		t.Errorf("unexpected analysis: %+v", got.RootCauses)
	}
}

// ---------------------------------------------------------
// SIMULATE
// ---------------------------------------------------------

func TestSimulatePlan_Success(t *testing.T) {
	fakeUC := &fakeOpportunitiesUseCase{
		SimulateFunc: func(ctx context.Context, in usecase.PlanInput) (*domain.Simulation, error) {
			return &domain.Simulation{
				Opportunity:         domain.Opportunity{ID: in.OpportunityID},
				CurrentValue:        250000,
				ProjectedROIPercent: 150,
				Adjustments: []domain.ParameterAdjustment{
					{
						Parameter: "Tamaño de Pedido",
						Current:   650,
						Proposed:  500,
						Deviation: dashdomain.DeviationFromTarget(500, 650),
					},
				},
			}, nil
		},
	}

	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/opportunities/1/plans/simulate", defaultPlanRequest())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", resp.StatusCode, string(body))
	}

	if fakeUC.LastPlanInput.OpportunityID != 1 || fakeUC.LastPlanInput.OrderSize != 500 {
		t.Errorf("unexpected input: %+v", fakeUC.LastPlanInput)
	}

	var got SimulationResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(got.Adjustments) != 1 || got.Adjustments[0].DeviationLabel != "+30.0%" {
		t.Errorf("unexpected adjustments: %+v", got.Adjustments)
	}
}

func TestSimulatePlan_InvalidID(t *testing.T) {
	fakeUC := &fakeOpportunitiesUseCase{}
	app := setupTestApp(fakeUC)

	resp, _ := doRequest(t, app, http.MethodPost, "/opportunities/abc/plans/simulate", defaultPlanRequest())
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if fakeUC.simulateCalled {
		t.Error("use case should not be called")
	}
}

func TestSimulatePlan_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", usecase.ErrOpportunityNotFound, http.StatusNotFound},
		{"invalid plan", fmt.Errorf("%w: order size", usecase.ErrInvalidPlan), http.StatusBadRequest},
		{"past deadline", usecase.ErrDeadlineInPast, http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeUC := &fakeOpportunitiesUseCase{
				SimulateFunc: func(ctx context.Context, in usecase.PlanInput) (*domain.Simulation, error) {
					return nil, tt.err
				},
			}
			app := setupTestApp(fakeUC)

			resp, _ := doRequest(t, app, http.MethodPost, "/opportunities/1/plans/simulate", defaultPlanRequest())
			if resp.StatusCode != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, resp.StatusCode)
			}
		})
	}
}

// ---------------------------------------------------------
// APPROVE
// ---------------------------------------------------------

func TestApprovePlan_Created(t *testing.T) {
	fakeUC := &fakeOpportunitiesUseCase{}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/opportunities/2/plans", defaultPlanRequest())
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body: %s)", resp.StatusCode, string(body))
	}

	var got ApprovePlanResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if got.Status != "created" || got.PlanID == "" {
		t.Errorf("unexpected response: %+v", got)
	}
	if fakeUC.LastPlanInput.Owner != "Ana" || fakeUC.LastPlanInput.Deadline != "2030-01-01" {
		t.Errorf("unexpected input: %+v", fakeUC.LastPlanInput)
	}
}

func TestApprovePlan_Duplicate(t *testing.T) {
	storedID := uuid.New()
	fakeUC := &fakeOpportunitiesUseCase{
		ApproveFunc: func(ctx context.Context, in usecase.PlanInput) (*usecase.ApprovePlanResult, error) {
			return &usecase.ApprovePlanResult{Plan: &domain.ActionPlan{ID: storedID}, Created: false}, nil
		},
	}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/opportunities/1/plans", defaultPlanRequest())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if got["status"] != "duplicate" {
		t.Errorf("expected status=duplicate, got %v", got["status"])
	}
	if got["plan_id"] != storedID.String() {
		t.Errorf("expected plan_id=%s, got %v", storedID, got["plan_id"])
	}
}

func TestApprovePlan_InvalidJSON(t *testing.T) {
	fakeUC := &fakeOpportunitiesUseCase{}
	app := setupTestApp(fakeUC)

	req := httptest.NewRequest(http.MethodPost, "/opportunities/1/plans", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if fakeUC.approveCalled {
		t.Error("use case should not be called")
	}
}

func TestApprovePlan_InternalError(t *testing.T) {
	fakeUC := &fakeOpportunitiesUseCase{
		ApproveFunc: func(ctx context.Context, in usecase.PlanInput) (*usecase.ApprovePlanResult, error) {
			return nil, errors.New("db down")
		},
	}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/opportunities/1/plans", defaultPlanRequest())
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	var got ErrorResponse
	_ = json.Unmarshal(body, &got)
	if got.Error != "internal_server_error" {
		t.Errorf("unexpected error body: %s", string(body))
	}
}
