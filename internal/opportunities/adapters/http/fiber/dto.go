package fiber

type RootCauseResponse struct {
	Type               string   `json:"type" example:"Dias Inventario"`
	CorrelationPercent float64  `json:"correlation_percent" example:"85"`
	DeviationPercent   float64  `json:"deviation_percent" example:"-43"`
	DeviationLabel     string   `json:"deviation_label" example:"-43%"`
	Detail             string   `json:"detail" example:"Auto servicio > Centro > Walmart"`
	Path               []string `json:"path"`
}

type OpportunityResponse struct {
	ID                  int               `json:"id" example:"1"`
	Priority            string            `json:"priority" example:"Critica"`
	PriorityColor       string            `json:"priority_color" example:"error"`
	Title               string            `json:"title" example:"Venta Incremental"`
	MonetaryValue       float64           `json:"monetary_value" example:"250000"`
	DisplayValue        string            `json:"display_value" example:"$250K"`
	StoreCount          int               `json:"store_count" example:"25"`
	SKUCount            int               `json:"sku_count" example:"28"`
	ShareOfTotalPercent float64           `json:"share_of_total_percent" example:"36.3"`
	RootCause           RootCauseResponse `json:"root_cause"`
}

type OpportunitiesResponse struct {
	Opportunities  []OpportunityResponse `json:"opportunities"`
	TotalPotential float64               `json:"total_potential" example:"525000"`
}

type RootCauseCardResponse struct {
	Rank               int     `json:"rank" example:"1"`
	Title              string  `json:"title" example:"Dias Inventario"`
	Subtitle           string  `json:"subtitle" example:"Autoservicio > Centro > Walmart"`
	Trend              string  `json:"trend" example:"down"`
	Actual             float64 `json:"actual" example:"8"`
	Optimal            float64 `json:"optimal" example:"14"`
	DeviationPercent   float64 `json:"deviation_percent" example:"-43"`
	DeviationLabel     string  `json:"deviation_label" example:"-43%"`
	CorrelationPercent float64 `json:"correlation_percent" example:"85"`
	ImpactProgress     float64 `json:"impact_progress" example:"85"`
}

type AnalysisResponse struct {
	RootCauses []RootCauseCardResponse `json:"root_causes"`
}

// PlanRequest represents the co-design form
// @Description Action plan draft
type PlanRequest struct {
	InventoryDays int    `json:"inventory_days" example:"14"`
	OrderSize     int    `json:"order_size" example:"500"`
	Owner         string `json:"owner" example:"Ana López"`
	Deadline      string `json:"deadline" example:"2025-03-31"`
}

type AdjustmentResponse struct {
	Parameter        string  `json:"parameter" example:"Tamaño de Pedido"`
	Current          float64 `json:"current" example:"650"`
	Proposed         float64 `json:"proposed" example:"500"`
	DeviationPercent float64 `json:"deviation_percent" example:"30"`
	DeviationLabel   string  `json:"deviation_label" example:"+30.0%"`
	Severity         string  `json:"severity" example:"success"`
}

type SimulationResponse struct {
	OpportunityID        int                  `json:"opportunity_id" example:"1"`
	CurrentValue         float64              `json:"current_value" example:"250000"`
	ProjectedROIPercent  float64              `json:"projected_roi_percent" example:"150"`
	MLCorrelationPercent float64              `json:"ml_correlation_percent" example:"85"`
	Adjustments          []AdjustmentResponse `json:"adjustments"`
	Summary              string               `json:"summary"`
}

type ApprovePlanResponse struct {
	Status string `json:"status" example:"created"`
	PlanID string `json:"plan_id" example:"5f0c3b8e-2d7a-4c61-9d3e-0c1f2a3b4c5d"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"inventory days must be between 5 and 30"`
}
