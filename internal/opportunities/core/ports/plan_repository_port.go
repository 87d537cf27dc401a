package ports

import (
	"context"

	"vemio-dashboard/internal/opportunities/core/domain"
)

type PlanRepositoryPort interface {
	// InsertPlan:
	//   created = true,  err = nil  -> new plan
	//   created = false, err = nil  -> same plan already approved (idempotent)
	//   created = false, err != nil -> DB error
	InsertPlan(ctx context.Context, p *domain.ActionPlan) (created bool, err error)
}
