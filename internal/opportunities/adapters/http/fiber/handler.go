package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"vemio-dashboard/internal/opportunities/core/domain"
	"vemio-dashboard/internal/opportunities/core/usecase"
)

type OpportunitiesUseCase interface {
	List() []domain.Opportunity
	Analysis() []domain.RootCauseCard
	Simulate(ctx context.Context, in usecase.PlanInput) (*domain.Simulation, error)
	Approve(ctx context.Context, in usecase.PlanInput) (*usecase.ApprovePlanResult, error)
}

type OpportunitiesHandler struct {
	uc OpportunitiesUseCase
}

func NewOpportunitiesHandler(uc OpportunitiesUseCase) *OpportunitiesHandler {
	return &OpportunitiesHandler{uc: uc}
}

// ListOpportunities godoc
// @Summary List opportunities
// @Description Returns the opportunity cards and the total potential value
// @Tags Opportunities
// @Produce json
// @Success 200 {object} OpportunitiesResponse
// @Router /opportunities [get]
func (h *OpportunitiesHandler) ListOpportunities(c *fiber.Ctx) error {
	ops := h.uc.List()

	resp := OpportunitiesResponse{
		Opportunities:  make([]OpportunityResponse, 0, len(ops)),
		TotalPotential: domain.TotalPotential(ops),
	}
	for _, o := range ops {
		resp.Opportunities = append(resp.Opportunities, OpportunityResponse{
			ID:                  o.ID,
			Priority:            string(o.Priority),
			PriorityColor:       o.Priority.Color(),
			Title:               o.Title,
			MonetaryValue:       o.MonetaryValue,
			DisplayValue:        o.DisplayValue(),
			StoreCount:          o.StoreCount,
			SKUCount:            o.SKUCount,
			ShareOfTotalPercent: o.ShareOfTotalPercent,
			RootCause: RootCauseResponse{
				Type:               o.RootCause.Type,
				CorrelationPercent: o.RootCause.CorrelationPercent,
				DeviationPercent:   o.RootCause.DeviationPercent,
				DeviationLabel:     o.RootCause.DeviationLabel(),
				Detail:             o.RootCause.Detail,
				Path:               o.RootCause.Path(),
			},
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetAnalysis godoc
// @Summary Root-cause analysis
// @Description Returns the top three root causes behind the opportunities
// @Tags Opportunities
// @Produce json
// @Success 200 {object} AnalysisResponse
// @Router /opportunities/analysis [get]
func (h *OpportunitiesHandler) GetAnalysis(c *fiber.Ctx) error {
	causes := h.uc.Analysis()

	resp := AnalysisResponse{RootCauses: make([]RootCauseCardResponse, 0, len(causes))}
	for _, rc := range causes {
		resp.RootCauses = append(resp.RootCauses, RootCauseCardResponse{
			Rank:               rc.Rank,
			Title:              rc.Title,
			Subtitle:           rc.Subtitle,
			Trend:              string(rc.Trend),
			Actual:             rc.Actual,
			Optimal:            rc.Optimal,
			DeviationPercent:   rc.DeviationPercent,
			DeviationLabel:     rc.DeviationLabel(),
			CorrelationPercent: rc.CorrelationPercent,
			ImpactProgress:     rc.ImpactProgress,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// SimulatePlan godoc
// @Summary Simulate an action plan
// @Description Computes the what-if impact of a co-design draft without storing it
// @Tags Opportunities
// @Accept json
// @Produce json
// @Param id path int true "Opportunity ID"
// @Param request body PlanRequest true "Plan draft"
// @Success 200 {object} SimulationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /opportunities/{id}/plans/simulate [post]
func (h *OpportunitiesHandler) SimulatePlan(c *fiber.Ctx) error {
	in, errResp := parsePlanInput(c)
	if errResp != nil {
		return c.Status(http.StatusBadRequest).JSON(errResp)
	}

	sim, err := h.uc.Simulate(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	resp := SimulationResponse{
		OpportunityID:        sim.Opportunity.ID,
		CurrentValue:         sim.CurrentValue,
		ProjectedROIPercent:  sim.ProjectedROIPercent,
		MLCorrelationPercent: sim.MLCorrelationPercent,
		Adjustments:          make([]AdjustmentResponse, 0, len(sim.Adjustments)),
		Summary:              sim.Summary,
	}
	for _, a := range sim.Adjustments {
		resp.Adjustments = append(resp.Adjustments, AdjustmentResponse{
			Parameter:        a.Parameter,
			Current:          a.Current,
			Proposed:         a.Proposed,
			DeviationPercent: a.Deviation.MagnitudePercent,
			DeviationLabel:   a.Deviation.SignedLabel(),
			Severity:         string(a.Deviation.Severity),
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// ApprovePlan godoc
// @Summary Approve an action plan
// @Description Stores a co-design plan with idempotency handling
// @Tags Opportunities
// @Accept json
// @Produce json
// @Param id path int true "Opportunity ID"
// @Param request body PlanRequest true "Plan draft"
// @Success 201 {object} ApprovePlanResponse
// @Success 200 {object} ApprovePlanResponse "Duplicate plan"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /opportunities/{id}/plans [post]
func (h *OpportunitiesHandler) ApprovePlan(c *fiber.Ctx) error {
	in, errResp := parsePlanInput(c)
	if errResp != nil {
		return c.Status(http.StatusBadRequest).JSON(errResp)
	}

	res, err := h.uc.Approve(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	if !res.Created {
		return c.Status(http.StatusOK).JSON(ApprovePlanResponse{
			Status: "duplicate",
			PlanID: res.Plan.ID.String(),
		})
	}

	return c.Status(http.StatusCreated).JSON(ApprovePlanResponse{
		Status: "created",
		PlanID: res.Plan.ID.String(),
	})
}

func parsePlanInput(c *fiber.Ctx) (usecase.PlanInput, *ErrorResponse) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return usecase.PlanInput{}, &ErrorResponse{
			Error:   "invalid_request",
			Message: "invalid opportunity id",
		}
	}

	var req PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return usecase.PlanInput{}, &ErrorResponse{Error: "invalid_json"}
	}

	return usecase.PlanInput{
		OpportunityID: id,
		InventoryDays: req.InventoryDays,
		OrderSize:     req.OrderSize,
		Owner:         req.Owner,
		Deadline:      req.Deadline,
	}, nil
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrOpportunityNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidPlan),
		errors.Is(err, usecase.ErrDeadlineInPast):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
