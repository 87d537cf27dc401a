package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	dashdomain "vemio-dashboard/internal/dashboard/core/domain"
	navdomain "vemio-dashboard/internal/navigation/core/domain"
	"vemio-dashboard/internal/views/core/domain"
)

func TestNewView_Defaults(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	v := domain.NewView(uuid.New(), now)

	assert.Equal(t, domain.TabDashboard, v.Tab)
	assert.Equal(t, domain.ModeList, v.OpportunitiesMode)
	assert.Equal(t, navdomain.PeriodMonth, v.Period)
	assert.True(t, v.Filters.IsEmpty())
	assert.True(t, v.Parameters.Loading())
	assert.Equal(t, now, v.LastSeenAt)
}

func TestParametersState_ErrorMessage(t *testing.T) {
	p := domain.ParametersState{Status: domain.StatusFailed, Err: "timeout"}
	assert.Equal(t, "Error al cargar los parámetros: timeout", p.ErrorMessage())

	p.ErrorDismissed = true
	assert.Empty(t, p.ErrorMessage())

	assert.Empty(t, domain.ParametersState{Status: domain.StatusLoaded}.ErrorMessage())
}

func TestParametersState_EffectiveRecords(t *testing.T) {
	loading := domain.ParametersState{Status: domain.StatusLoading}
	assert.Equal(t, dashdomain.DefaultParameterRecords(), loading.EffectiveRecords())

	loaded := domain.ParametersState{
		Status:  domain.StatusLoaded,
		Records: []dashdomain.ParameterRecord{{Title: "x"}},
	}
	assert.Len(t, loaded.EffectiveRecords(), 1)
}

func TestParseTabAndMode(t *testing.T) {
	tab, ok := domain.ParseTab("oportunidades")
	assert.True(t, ok)
	assert.Equal(t, domain.TabOpportunities, tab)

	_, ok = domain.ParseTab("settings")
	assert.False(t, ok)

	mode, ok := domain.ParseOpportunitiesMode("analysis")
	assert.True(t, ok)
	assert.Equal(t, domain.ModeAnalysis, mode)

	_, ok = domain.ParseOpportunitiesMode("")
	assert.False(t, ok)
}
