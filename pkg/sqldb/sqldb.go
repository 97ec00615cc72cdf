// Package sqldb opens the relational store behind a single driver switch.
// Queries are written with $n placeholders and rebound for SQLite.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect names a supported SQL backend.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

const (
	driverPgx    = "pgx"
	driverSQLite = "sqlite"

	DefaultPingTimeout = 5 * time.Second
)

var placeholderRe = regexp.MustCompile(`\$\d+`)

// Config selects the backend and connection pool.
type Config struct {
	Dialect      Dialect
	DSN          string
	MaxOpenConns int
}

// Open connects and pings the database.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	var driver string
	switch cfg.Dialect {
	case Postgres:
		driver = driverPgx
	case SQLite:
		driver = driverSQLite
	default:
		return nil, fmt.Errorf("sqldb: unsupported dialect %q", cfg.Dialect)
	}

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqldb: open: %w", err)
	}

	// SQLite serialises writers; one connection also keeps :memory: databases shared.
	if cfg.Dialect == SQLite {
		db.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	pingCtx, cancel := context.WithTimeout(ctx, DefaultPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqldb: ping: %w", err)
	}
	return db, nil
}

// Rebind rewrites $n placeholders for the dialect. Each $n must appear once, in order.
func (d Dialect) Rebind(query string) string {
	if d != SQLite {
		return query
	}
	return placeholderRe.ReplaceAllString(query, "?")
}

// Date scans DATE columns that arrive as time.Time (pgx) or text (SQLite).
type Date struct {
	Time  time.Time
	Valid bool
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		d.Time, d.Valid = time.Time{}, false
		return nil
	case time.Time:
		d.Time, d.Valid = v, true
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("sqldb: cannot scan %T into Date", src)
	}
}

func (d *Date) parse(s string) error {
	if len(s) >= len(dateLayout) {
		if t, err := time.Parse(dateLayout, s[:len(dateLayout)]); err == nil {
			d.Time, d.Valid = t, true
			return nil
		}
	}
	return fmt.Errorf("sqldb: invalid date %q", s)
}

const dateLayout = "2006-01-02"

// FormatDate renders t as a DATE parameter both drivers accept.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
