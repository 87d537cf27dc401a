package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"

	"vemio-dashboard/internal/opportunities/core/domain"
	"vemio-dashboard/internal/opportunities/core/ports"
)

type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type PlanRepository struct {
	db DB
}

func NewPlanRepository(db DB) *PlanRepository {
	return &PlanRepository{db: db}
}

var _ ports.PlanRepositoryPort = (*PlanRepository)(nil)

const insertPlanSQL = `
INSERT INTO gonac.tab_planes_accion (
    id,
    opportunity_id,
    opportunity_title,
    inventory_days,
    order_size,
    owner,
    deadline,
    projected_roi_percent,
    tags,
    metadata,
    approved_at,
    dedupe_key
) VALUES (
    $1, $2, $3, $4, $5, $6,
    $7, $8, $9, $10, $11, $12
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

func (r *PlanRepository) InsertPlan(ctx context.Context, p *domain.ActionPlan) (bool, error) {
	var owner any
	if p.Owner != "" {
		owner = p.Owner
	}

	var deadline any
	if p.Deadline != nil {
		deadline = *p.Deadline
	}

	metadataJSON, err := json.Marshal(p.Metadata)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, insertPlanSQL,
		p.ID.String(),
		p.OpportunityID,
		p.OpportunityTitle,
		p.InventoryDays,
		p.OrderSize,
		owner,
		deadline,
		p.ProjectedROIPercent,
		pq.Array(p.Tags),
		metadataJSON,
		p.ApprovedAt,
		p.DedupeKey,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new plan
	// rows == 0  -> already approved (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}
