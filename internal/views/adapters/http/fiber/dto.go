package fiber

import (
	"time"

	navdomain "vemio-dashboard/internal/navigation/core/domain"
)

type ViewResponse struct {
	ID                string                     `json:"id" example:"5f0c3b8e-2d7a-4c61-9d3e-0c1f2a3b4c5d"`
	Tab               string                     `json:"tab" example:"dashboard"`
	OpportunitiesMode string                     `json:"opportunities_mode" example:"list"`
	Period            string                     `json:"period" example:"mes"`
	Filters           navdomain.FilterState      `json:"filters" swaggertype:"object,string"`
	Breadcrumb        []navdomain.BreadcrumbItem `json:"breadcrumb"`
	ParametersStatus  string                     `json:"parameters_status" example:"loading"`
	CreatedAt         time.Time                  `json:"created_at"`
	LastSeenAt        time.Time                  `json:"last_seen_at"`
}

type SelectTabRequest struct {
	Tab string `json:"tab" example:"oportunidades"`
}

type SetPeriodRequest struct {
	Period string `json:"period" example:"trimestre"`
}

type SetModeRequest struct {
	Mode string `json:"mode" example:"analysis"`
}

// SetFilterRequest changes one filter level
// @Description Filter change; axis is optional
type SetFilterRequest struct {
	Axis  string `json:"axis" example:"client"`
	Level string `json:"level" example:"canal"`
	Value string `json:"value" example:"retail"`
}

type NavigateRequest struct {
	Level string `json:"level" example:"canal"`
	Value string `json:"value" example:"retail"`
}

type LevelOptionsResponse struct {
	Level   string             `json:"level" example:"canal"`
	Label   string             `json:"label" example:"Canal"`
	Options []navdomain.Option `json:"options"`
}

type FilterOptionsResponse struct {
	Levels  []LevelOptionsResponse `json:"levels"`
	Periods []navdomain.Option     `json:"periods"`
}

type ParameterCardResponse struct {
	Title               string  `json:"title" example:"Días de Inventario"`
	OptimizedValue      float64 `json:"optimized_value" example:"45"`
	ActualValue         float64 `json:"actual_value" example:"52"`
	PreviousPeriodValue float64 `json:"previous_period_value" example:"48"`
	Unit                string  `json:"unit" example:"días"`
	DeviationPercent    float64 `json:"deviation_percent" example:"15.6"`
	DeviationLabel      string  `json:"deviation_label" example:"+15.6%"`
	IsAboveTarget       bool    `json:"is_above_target" example:"true"`
	Severity            string  `json:"severity" example:"success"`
}

type KPICardResponse struct {
	Title               string  `json:"title" example:"Ventas en Valor"`
	Value               float64 `json:"value" example:"245680"`
	DisplayValue        string  `json:"display_value" example:"$245,680"`
	PreviousPeriodValue float64 `json:"previous_period_value" example:"232000"`
	TargetValue         float64 `json:"target_value" example:"260000"`
	Unit                string  `json:"unit" example:"$"`
	VariationPercent    float64 `json:"variation_percent" example:"5.9"`
	VariationLabel      string  `json:"variation_label" example:"+5.9%"`
	Direction           string  `json:"direction" example:"up"`
	Projection90d       float64 `json:"projection_90d" example:"737040"`
}

type DashboardResponse struct {
	ViewID     string                     `json:"view_id"`
	Period     string                     `json:"period" example:"mes"`
	Loading    bool                       `json:"loading"`
	Error      string                     `json:"error,omitempty"`
	Breadcrumb []navdomain.BreadcrumbItem `json:"breadcrumb"`
	Parameters []ParameterCardResponse    `json:"parameters"`
	KPIs       []KPICardResponse          `json:"kpis"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"invalid level: \"pais\""`
}
