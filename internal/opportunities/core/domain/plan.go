package domain

import (
	"time"

	"github.com/google/uuid"

	dashdomain "vemio-dashboard/internal/dashboard/core/domain"
)

// Slider bounds of the co-design form.
const (
	MinInventoryDays     = 5
	MaxInventoryDays     = 30
	DefaultInventoryDays = 14

	MinOrderSize     = 100
	MaxOrderSize     = 1000
	OrderSizeStep    = 50
	DefaultOrderSize = 500

	MaxOwnerLength = 120
)

// ProjectedROIPercent is the fixed ROI shown by the simulator; there is no ROI model yet.
const ProjectedROIPercent = 150

// ParameterAdjustment compares a proposed target with the value observed today.
type ParameterAdjustment struct {
	Parameter string
	Current   float64
	Proposed  float64
	Deviation dashdomain.Deviation // current measured against proposed
}

type Simulation struct {
	Opportunity          Opportunity
	CurrentValue         float64
	ProjectedROIPercent  float64
	MLCorrelationPercent float64
	Adjustments          []ParameterAdjustment
	Summary              string
}

type ActionPlan struct {
	ID                  uuid.UUID
	OpportunityID       int
	OpportunityTitle    string
	InventoryDays       int
	OrderSize           int
	Owner               string     // optional
	Deadline            *time.Time // optional, date only
	ProjectedROIPercent float64
	Tags                []string
	Metadata            map[string]any
	ApprovedAt          time.Time
	DedupeKey           string
}
