package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vemio-dashboard/internal/opportunities/core/domain"
)

func TestStaticOpportunities(t *testing.T) {
	ops := domain.StaticOpportunities()

	assert.Len(t, ops, 3)
	assert.Equal(t, "$250K", ops[0].DisplayValue())
	assert.Equal(t, "$95K", ops[2].DisplayValue())
	assert.Equal(t, 525000.0, domain.TotalPotential(ops))
}

func TestPriorityColor(t *testing.T) {
	assert.Equal(t, "error", domain.PriorityCritical.Color())
	assert.Equal(t, "warning", domain.PriorityHigh.Color())
	assert.Equal(t, "success", domain.PriorityMedium.Color())
}

func TestRootCause_LabelsAndPath(t *testing.T) {
	op, ok := domain.FindOpportunity(1)
	assert.True(t, ok)
	assert.Equal(t, "-43%", op.RootCause.DeviationLabel())
	assert.Equal(t, []string{"Auto servicio", "Centro", "Walmart"}, op.RootCause.Path())

	op, _ = domain.FindOpportunity(3)
	assert.Equal(t, "150%", op.RootCause.DeviationLabel())

	_, ok = domain.FindOpportunity(42)
	assert.False(t, ok)
}

func TestTopRootCauses(t *testing.T) {
	causes := domain.TopRootCauses()

	assert.Len(t, causes, 3)
	for i, c := range causes {
		assert.Equal(t, i+1, c.Rank)
	}
	assert.Equal(t, "-43%", causes[0].DeviationLabel())
	assert.Equal(t, "+30%", causes[1].DeviationLabel())
	assert.Equal(t, domain.TrendNeutral, causes[2].Trend)
}
