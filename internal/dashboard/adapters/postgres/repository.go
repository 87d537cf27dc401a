package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vemio-dashboard/internal/dashboard/core/domain"
	"vemio-dashboard/internal/dashboard/core/ports"
)

// RowScanner is satisfied by *sql.Row. Scan returns sql.ErrNoRows on an empty result.
type RowScanner interface {
	Scan(dest ...any) error
}

type DB interface {
	QueryRowContext(ctx context.Context, query string, args ...any) RowScanner
}

type ParametersRepository struct {
	db DB
}

func NewParametersRepository(db DB) *ParametersRepository {
	return &ParametersRepository{db: db}
}

var _ ports.ParametersReaderPort = (*ParametersRepository)(nil)

// The table has no filter columns yet, so the first row stands for every view.
// NULL columns read as 0, which the calculator reports as an undefined deviation.
const selectParametersSQL = `
SELECT
    COALESCE(dias_inventario_optimo, 0),
    COALESCE(dias_inventario_real, 0),
    COALESCE(punto_reorden, 0),
    COALESCE(punto_reorden_real, 0),
    COALESCE(tamano_pedido_optimo, 0),
    COALESCE(tamano_pedido_real, 0),
    COALESCE(frecuencia_optima, 0),
    COALESCE(frecuencia_real, 0)
FROM gonac.tab_parametros_optimos
LIMIT 1`

func (r *ParametersRepository) FetchParameters(ctx context.Context) (*domain.ParametersRow, error) {
	var p domain.ParametersRow
	err := r.db.QueryRowContext(ctx, selectParametersSQL).Scan(
		&p.InventoryDaysOptimal,
		&p.InventoryDaysActual,
		&p.ReorderPointOptimal,
		&p.ReorderPointActual,
		&p.OrderSizeOptimal,
		&p.OrderSizeActual,
		&p.OrderFrequencyOptimal,
		&p.OrderFrequencyActual,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}
