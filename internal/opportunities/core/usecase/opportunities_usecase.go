package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	dashdomain "vemio-dashboard/internal/dashboard/core/domain"
	"vemio-dashboard/internal/opportunities/core/domain"
	"vemio-dashboard/internal/opportunities/core/ports"
)

var (
	ErrInvalidPlan         = errors.New("invalid plan")
	ErrDeadlineInPast      = errors.New("deadline cannot be in the past")
	ErrOpportunityNotFound = errors.New("opportunity not found")
)

// planNamespace scopes plan IDs derived from their dedupe key, so a
// re-approval of the same draft resolves to the stored row.
var planNamespace = uuid.MustParse("6f1c2d7e-4b0a-4c55-9a7e-2f3d8b1e5c90")

type PlanInput struct {
	OpportunityID int
	InventoryDays int
	OrderSize     int
	Owner         string
	Deadline      string // YYYY-MM-DD, optional
}

type ApprovePlanResult struct {
	Plan    *domain.ActionPlan
	Created bool
}

type OpportunitiesUseCase struct {
	repo ports.PlanRepositoryPort
	now  func() time.Time
}

func NewOpportunitiesUseCase(repo ports.PlanRepositoryPort) *OpportunitiesUseCase {
	return &OpportunitiesUseCase{repo: repo, now: time.Now}
}

func (uc *OpportunitiesUseCase) List() []domain.Opportunity {
	return domain.StaticOpportunities()
}

func (uc *OpportunitiesUseCase) Analysis() []domain.RootCauseCard {
	return domain.TopRootCauses()
}

// Simulate runs the what-if for a draft plan without storing anything.
func (uc *OpportunitiesUseCase) Simulate(ctx context.Context, in PlanInput) (*domain.Simulation, error) {
	op, _, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	return simulate(op, in), nil
}

// Approve validates the draft, stores it and reports whether it was new.
func (uc *OpportunitiesUseCase) Approve(ctx context.Context, in PlanInput) (*ApprovePlanResult, error) {
	op, deadline, err := uc.validate(in)
	if err != nil {
		return nil, err
	}

	sim := simulate(op, in)
	owner := strings.TrimSpace(in.Owner)

	adjustments := make([]map[string]any, 0, len(sim.Adjustments))
	for _, a := range sim.Adjustments {
		adjustments = append(adjustments, map[string]any{
			"parameter":         a.Parameter,
			"current":           a.Current,
			"proposed":          a.Proposed,
			"deviation_percent": a.Deviation.MagnitudePercent,
			"severity":          string(a.Deviation.Severity),
		})
	}

	plan := &domain.ActionPlan{
		OpportunityID:       op.ID,
		OpportunityTitle:    op.Title,
		InventoryDays:       in.InventoryDays,
		OrderSize:           in.OrderSize,
		Owner:               owner,
		Deadline:            deadline,
		ProjectedROIPercent: sim.ProjectedROIPercent,
		Tags:                op.RootCause.Path(),
		Metadata: map[string]any{
			"current_value":          sim.CurrentValue,
			"ml_correlation_percent": sim.MLCorrelationPercent,
			"adjustments":            adjustments,
		},
		ApprovedAt: uc.now().UTC(),
	}
	plan.DedupeKey = buildDedupeKey(plan)
	plan.ID = planID(plan.DedupeKey)

	created, err := uc.repo.InsertPlan(ctx, plan)
	if err != nil {
		return nil, err
	}

	log.Printf("[opportunities.approve] plan=%s opportunity=%d created=%v", plan.ID, plan.OpportunityID, created)

	return &ApprovePlanResult{Plan: plan, Created: created}, nil
}

func (uc *OpportunitiesUseCase) validate(in PlanInput) (domain.Opportunity, *time.Time, error) {
	op, ok := domain.FindOpportunity(in.OpportunityID)
	if !ok {
		return domain.Opportunity{}, nil, ErrOpportunityNotFound
	}

	if in.InventoryDays < domain.MinInventoryDays || in.InventoryDays > domain.MaxInventoryDays {
		return op, nil, fmt.Errorf("%w: inventory days must be between %d and %d",
			ErrInvalidPlan, domain.MinInventoryDays, domain.MaxInventoryDays)
	}

	if in.OrderSize < domain.MinOrderSize || in.OrderSize > domain.MaxOrderSize ||
		(in.OrderSize-domain.MinOrderSize)%domain.OrderSizeStep != 0 {
		return op, nil, fmt.Errorf("%w: order size must be between %d and %d in steps of %d",
			ErrInvalidPlan, domain.MinOrderSize, domain.MaxOrderSize, domain.OrderSizeStep)
	}

	if len([]rune(strings.TrimSpace(in.Owner))) > domain.MaxOwnerLength {
		return op, nil, fmt.Errorf("%w: owner is too long", ErrInvalidPlan)
	}

	if in.Deadline == "" {
		return op, nil, nil
	}

	d, err := time.Parse(time.DateOnly, in.Deadline)
	if err != nil {
		return op, nil, fmt.Errorf("%w: deadline must be YYYY-MM-DD", ErrInvalidPlan)
	}
	today, _ := time.Parse(time.DateOnly, uc.now().UTC().Format(time.DateOnly))
	if d.Before(today) {
		return op, nil, ErrDeadlineInPast
	}

	return op, &d, nil
}

// observed values behind the two adjustable parameters, from the root-cause analysis.
func observedValue(title string) float64 {
	for _, c := range domain.TopRootCauses() {
		if c.Title == title {
			return c.Actual
		}
	}
	return 0
}

func simulate(op domain.Opportunity, in PlanInput) *domain.Simulation {
	days := observedValue("Dias Inventario")
	size := observedValue("Tamaño Pedido")

	adjustments := []domain.ParameterAdjustment{
		{
			Parameter: "Dias de inventario óptimo",
			Current:   days,
			Proposed:  float64(in.InventoryDays),
			Deviation: dashdomain.DeviationFromTarget(float64(in.InventoryDays), days),
		},
		{
			Parameter: "Tamaño de Pedido",
			Current:   size,
			Proposed:  float64(in.OrderSize),
			Deviation: dashdomain.DeviationFromTarget(float64(in.OrderSize), size),
		},
	}

	summary := fmt.Sprintf(
		"Al ajustar los parámetros seleccionados, el valor estimado de la oportunidad es de %s con un ROI del %d%%. "+
			"La proyección considera correlaciones ML entre parámetros y el comportamiento histórico en %s.",
		op.DisplayValue(), domain.ProjectedROIPercent, op.RootCause.Detail,
	)

	return &domain.Simulation{
		Opportunity:          op,
		CurrentValue:         op.MonetaryValue,
		ProjectedROIPercent:  domain.ProjectedROIPercent,
		MLCorrelationPercent: op.RootCause.CorrelationPercent,
		Adjustments:          adjustments,
		Summary:              summary,
	}
}

func planID(dedupeKey string) uuid.UUID {
	return uuid.NewSHA1(planNamespace, []byte(dedupeKey))
}

func buildDedupeKey(p *domain.ActionPlan) string {
	// opportunity + inventory_days + order_size + owner + deadline
	deadline := ""
	if p.Deadline != nil {
		deadline = p.Deadline.Format(time.DateOnly)
	}
	return fmt.Sprintf("%d|%d|%d|%s|%s",
		p.OpportunityID,
		p.InventoryDays,
		p.OrderSize,
		strings.ToLower(p.Owner),
		deadline,
	)
}
