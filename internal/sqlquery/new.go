package sqlquery

import (
	"database/sql"
	"time"

	"hotel-assistant/pkg/log"
	"hotel-assistant/pkg/sqldb"
)

const (
	LogPrefixExecute = "internal.sqlquery.Execute"

	DefaultTimeout = 15 * time.Second

	// maxCellRunes caps a single rendered value.
	maxCellRunes = 500
)

type implExecutor struct {
	db      *sql.DB
	dialect sqldb.Dialect
	timeout time.Duration
	l       log.Logger
}

// New creates an executor. db should be a read-only connection where the
// deployment provides one.
func New(db *sql.DB, dialect sqldb.Dialect, timeout time.Duration, l log.Logger) Executor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &implExecutor{db: db, dialect: dialect, timeout: timeout, l: l}
}
