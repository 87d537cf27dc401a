package postgres

import (
	"context"
	"database/sql"
)

// sqlDB adapts *sql.DB to the single-row reader the repository needs.
type sqlDB struct {
	db *sql.DB
}

func NewSQLDB(db *sql.DB) DB {
	return &sqlDB{db: db}
}

func (s *sqlDB) QueryRowContext(ctx context.Context, query string, args ...any) RowScanner {
	return s.db.QueryRowContext(ctx, query, args...)
}
