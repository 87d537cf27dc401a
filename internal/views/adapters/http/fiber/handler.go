package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dashdomain "vemio-dashboard/internal/dashboard/core/domain"
	navdomain "vemio-dashboard/internal/navigation/core/domain"
	"vemio-dashboard/internal/views/core/domain"
	"vemio-dashboard/internal/views/core/usecase"
)

type ViewUseCase interface {
	Open(ctx context.Context) (domain.View, error)
	Get(ctx context.Context, id uuid.UUID) (domain.View, error)
	Close(ctx context.Context, id uuid.UUID) error
	SelectTab(ctx context.Context, id uuid.UUID, tab string) (domain.View, error)
	SetOpportunitiesMode(ctx context.Context, id uuid.UUID, mode string) (domain.View, error)
	SetPeriod(ctx context.Context, id uuid.UUID, period string) (domain.View, error)
	SetFilter(ctx context.Context, id uuid.UUID, in usecase.FilterInput) (domain.View, error)
	Navigate(ctx context.Context, id uuid.UUID, level, value string) (domain.View, error)
	DismissError(ctx context.Context, id uuid.UUID) (domain.View, error)
	FilterOptions(ctx context.Context, id uuid.UUID) (usecase.FilterOptions, error)
	Dashboard(ctx context.Context, id uuid.UUID) (usecase.DashboardView, error)
	Export(ctx context.Context, id uuid.UUID) (usecase.ExportFile, error)
}

type ViewHandler struct {
	uc ViewUseCase
}

func NewViewHandler(uc ViewUseCase) *ViewHandler {
	return &ViewHandler{uc: uc}
}

// OpenView godoc
// @Summary Open a dashboard view
// @Description Creates a view session and starts loading the optimal parameters
// @Tags Views
// @Produce json
// @Success 201 {object} ViewResponse
// @Failure 500 {object} ErrorResponse
// @Router /views [post]
func (h *ViewHandler) OpenView(c *fiber.Ctx) error {
	v, err := h.uc.Open(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(toViewResponse(v))
}

// GetView godoc
// @Summary Get a view
// @Tags Views
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /views/{id} [get]
func (h *ViewHandler) GetView(c *fiber.Ctx) error {
	id, ok := parseViewID(c)
	if !ok {
		return invalidViewID(c)
	}
	v, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toViewResponse(v))
}

// CloseView godoc
// @Summary Close a view
// @Tags Views
// @Param id path string true "View ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /views/{id} [delete]
func (h *ViewHandler) CloseView(c *fiber.Ctx) error {
	id, ok := parseViewID(c)
	if !ok {
		return invalidViewID(c)
	}
	if err := h.uc.Close(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// SelectTab godoc
// @Summary Select the active tab
// @Tags Views
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param request body SelectTabRequest true "Tab"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /views/{id}/tab [put]
func (h *ViewHandler) SelectTab(c *fiber.Ctx) error {
	id, ok := parseViewID(c)
	if !ok {
		return invalidViewID(c)
	}
	var req SelectTabRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	v, err := h.uc.SelectTab(c.UserContext(), id, req.Tab)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toViewResponse(v))
}

// SetPeriod godoc
// @Summary Select the time period
// @Tags Views
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param request body SetPeriodRequest true "Period: mes | trimestre | 3meses | 6meses | año"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /views/{id}/period [put]
func (h *ViewHandler) SetPeriod(c *fiber.Ctx) error {
	id, ok := parseViewID(c)
	if !ok {
		return invalidViewID(c)
	}
	var req SetPeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	v, err := h.uc.SetPeriod(c.UserContext(), id, req.Period)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toViewResponse(v))
}

// SetOpportunitiesMode godoc
// @Summary Toggle list and analysis on the opportunities tab
// @Tags Views
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param request body SetModeRequest true "Mode: list | analysis"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /views/{id}/opportunities/mode [put]
func (h *ViewHandler) SetOpportunitiesMode(c *fiber.Ctx) error {
	id, ok := parseViewID(c)
	if !ok {
		return invalidViewID(c)
	}
	var req SetModeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	v, err := h.uc.SetOpportunitiesMode(c.UserContext(), id, req.Mode)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toViewResponse(v))
}

// SetFilter godoc
// @Summary Change a filter level
// @Description Sets one level and clears the deeper levels of the same axis
// @Tags Views
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param request body SetFilterRequest true "Filter change"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /views/{id}/filters [post]
func (h *ViewHandler) SetFilter(c *fiber.Ctx) error {
	id, ok := parseViewID(c)
	if !ok {
		return invalidViewID(c)
	}
	var req SetFilterRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	v, err := h.uc.SetFilter(c.UserContext(), id, usecase.FilterInput{
		Axis:  req.Axis,
		Level: req.Level,
		Value: req.Value,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toViewResponse(v))
}

// Navigate godoc
// @Summary Breadcrumb navigation
// @Description Keeps the ancestors of the clicked level and the other axes; level "root" clears every filter
// @Tags Views
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param request body NavigateRequest true "Clicked crumb"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /views/{id}/navigate [post]
func (h *ViewHandler) Navigate(c *fiber.Ctx) error {
	id, ok := parseViewID(c)
	if !ok {
		return invalidViewID(c)
	}
	var req NavigateRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	v, err := h.uc.Navigate(c.UserContext(), id, req.Level, req.Value)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toViewResponse(v))
}

// GetFilterOptions godoc
// @Summary Filter option lists
// @Description Options for every level under the current filters; a level whose parent is unset has none
// @Tags Views
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} FilterOptionsResponse
// @Failure 404 {object} ErrorResponse
// @Router /views/{id}/filters/options [get]
func (h *ViewHandler) GetFilterOptions(c *fiber.Ctx) error {
	id, ok := parseViewID(c)
	if !ok {
		return invalidViewID(c)
	}
	opts, err := h.uc.FilterOptions(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}

	resp := FilterOptionsResponse{
		Levels:  make([]LevelOptionsResponse, 0, len(opts.Levels)),
		Periods: opts.Periods,
	}
	for _, l := range opts.Levels {
		resp.Levels = append(resp.Levels, LevelOptionsResponse{
			Level:   string(l.Level),
			Label:   l.Label,
			Options: l.Options,
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetDashboard godoc
// @Summary Dashboard content
// @Description Parameter cards (empty while loading), KPI cards, breadcrumb and inline error
// @Tags Views
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} DashboardResponse
// @Failure 404 {object} ErrorResponse
// @Router /views/{id}/dashboard [get]
func (h *ViewHandler) GetDashboard(c *fiber.Ctx) error {
	id, ok := parseViewID(c)
	if !ok {
		return invalidViewID(c)
	}
	d, err := h.uc.Dashboard(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDashboardResponse(d))
}

// DismissError godoc
// @Summary Dismiss the parameters error
// @Tags Views
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} ViewResponse
// @Failure 404 {object} ErrorResponse
// @Router /views/{id}/dashboard/error [delete]
func (h *ViewHandler) DismissError(c *fiber.Ctx) error {
	id, ok := parseViewID(c)
	if !ok {
		return invalidViewID(c)
	}
	v, err := h.uc.DismissError(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toViewResponse(v))
}

// Export godoc
// @Summary Export the dashboard as CSV
// @Tags Views
// @Produce text/csv
// @Param id path string true "View ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Router /views/{id}/export [get]
func (h *ViewHandler) Export(c *fiber.Ctx) error {
	id, ok := parseViewID(c)
	if !ok {
		return invalidViewID(c)
	}
	f, err := h.uc.Export(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}

	// Attachment guesses the type from the extension; the charset is set after it.
	c.Attachment(f.FileName)
	c.Set(fiber.HeaderContentType, f.ContentType)
	return c.Status(http.StatusOK).Send(f.Body)
}

func parseViewID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func invalidViewID(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_request",
		Message: "invalid view id",
	})
}

func invalidJSON(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrViewNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidTab),
		errors.Is(err, usecase.ErrInvalidMode),
		errors.Is(err, usecase.ErrInvalidPeriod),
		errors.Is(err, usecase.ErrInvalidLevel),
		errors.Is(err, usecase.ErrAxisMismatch),
		errors.Is(err, usecase.ErrInvalidSegmentation):
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

func toViewResponse(v domain.View) ViewResponse {
	return ViewResponse{
		ID:                v.ID.String(),
		Tab:               string(v.Tab),
		OpportunitiesMode: string(v.OpportunitiesMode),
		Period:            string(v.Period),
		Filters:           v.Filters,
		Breadcrumb:        navdomain.DeriveBreadcrumb(v.Filters),
		ParametersStatus:  string(v.Parameters.Status),
		CreatedAt:         v.CreatedAt,
		LastSeenAt:        v.LastSeenAt,
	}
}

func toDashboardResponse(d usecase.DashboardView) DashboardResponse {
	resp := DashboardResponse{
		ViewID:     d.View.ID.String(),
		Period:     string(d.View.Period),
		Loading:    d.Loading,
		Error:      d.ErrorMessage,
		Breadcrumb: d.Breadcrumb,
		Parameters: make([]ParameterCardResponse, 0, len(d.ParameterCards)),
		KPIs:       make([]KPICardResponse, 0, len(d.KPICards)),
	}

	for _, p := range d.ParameterCards {
		resp.Parameters = append(resp.Parameters, ParameterCardResponse{
			Title:               p.Record.Title,
			OptimizedValue:      p.Record.OptimizedValue,
			ActualValue:         p.Record.ActualValue,
			PreviousPeriodValue: p.Record.PreviousPeriodValue,
			Unit:                p.Record.Unit,
			DeviationPercent:    p.Deviation.MagnitudePercent,
			DeviationLabel:      p.Deviation.SignedLabel(),
			IsAboveTarget:       p.Deviation.IsAboveTarget,
			Severity:            string(p.Deviation.Severity),
		})
	}

	for _, k := range d.KPICards {
		resp.KPIs = append(resp.KPIs, KPICardResponse{
			Title:               k.Record.Title,
			Value:               k.Record.Value,
			DisplayValue:        dashdomain.FormatKPIValue(k.Record.Value, k.Record.Unit),
			PreviousPeriodValue: k.Record.PreviousPeriodValue,
			TargetValue:         k.Record.TargetValue,
			Unit:                k.Record.Unit,
			VariationPercent:    k.Variation.Percent,
			VariationLabel:      k.Variation.Label(),
			Direction:           string(k.Variation.Direction),
			Projection90d:       k.Projection,
		})
	}

	return resp
}
