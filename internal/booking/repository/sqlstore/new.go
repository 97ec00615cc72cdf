package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"hotel-assistant/internal/booking/repository"
	"hotel-assistant/pkg/log"
	"hotel-assistant/pkg/sqldb"
)

type implRepository struct {
	db      *sql.DB
	dialect sqldb.Dialect
	l       log.Logger
}

// New creates a SQL-backed Repository for the booking domain.
func New(db *sql.DB, dialect sqldb.Dialect, l log.Logger) repository.Repository {
	if db == nil {
		panic("booking/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, dialect: dialect, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("booking/repository/sqlstore.%s", method)
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
