package domain

import (
	"time"

	"github.com/google/uuid"

	dashdomain "vemio-dashboard/internal/dashboard/core/domain"
	navdomain "vemio-dashboard/internal/navigation/core/domain"
)

type Tab string

const (
	TabDashboard     Tab = "dashboard"
	TabOpportunities Tab = "oportunidades"
)

func ParseTab(s string) (Tab, bool) {
	switch Tab(s) {
	case TabDashboard, TabOpportunities:
		return Tab(s), true
	}
	return "", false
}

type OpportunitiesMode string

const (
	ModeList     OpportunitiesMode = "list"
	ModeAnalysis OpportunitiesMode = "analysis"
)

func ParseOpportunitiesMode(s string) (OpportunitiesMode, bool) {
	switch OpportunitiesMode(s) {
	case ModeList, ModeAnalysis:
		return OpportunitiesMode(s), true
	}
	return "", false
}

type ParametersStatus string

const (
	StatusLoading ParametersStatus = "loading"
	StatusLoaded  ParametersStatus = "loaded"
	StatusFailed  ParametersStatus = "failed"
)

const errorMessagePrefix = "Error al cargar los parámetros: "

// ParametersState tracks the one parameter fetch of a view.
// Records is nil while loading; after a failure it holds the fallback set.
type ParametersState struct {
	Status         ParametersStatus
	Records        []dashdomain.ParameterRecord
	Err            string
	ErrorDismissed bool
}

func (p ParametersState) Loading() bool {
	return p.Status == StatusLoading
}

// ErrorMessage is the inline error text, empty when there is none to show.
func (p ParametersState) ErrorMessage() string {
	if p.Status != StatusFailed || p.ErrorDismissed || p.Err == "" {
		return ""
	}
	return errorMessagePrefix + p.Err
}

// EffectiveRecords are the records the view reports and exports.
// Until the fetch settles that is the default set.
func (p ParametersState) EffectiveRecords() []dashdomain.ParameterRecord {
	if p.Status == StatusLoading || len(p.Records) == 0 {
		return dashdomain.DefaultParameterRecords()
	}
	return p.Records
}

// View is one open dashboard page.
type View struct {
	ID                uuid.UUID
	Tab               Tab
	OpportunitiesMode OpportunitiesMode
	Period            navdomain.TimePeriod
	Filters           navdomain.FilterState
	Parameters        ParametersState
	CreatedAt         time.Time
	LastSeenAt        time.Time
}

func NewView(id uuid.UUID, now time.Time) View {
	return View{
		ID:                id,
		Tab:               TabDashboard,
		OpportunitiesMode: ModeList,
		Period:            navdomain.DefaultTimePeriod,
		Parameters:        ParametersState{Status: StatusLoading},
		CreatedAt:         now,
		LastSeenAt:        now,
	}
}
