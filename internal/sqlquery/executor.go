package sqlquery

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"hotel-assistant/pkg/sqldb"
)

// Execute checks the statement and runs it inside a transaction that is
// always rolled back. Postgres additionally marks the transaction read-only.
func (e *implExecutor) Execute(ctx context.Context, query string) (Result, error) {
	q, err := Check(query)
	if err != nil {
		e.l.Warnf(ctx, "%s: rejected statement: %v", LogPrefixExecute, err)
		return Result{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	tx, err := e.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: e.dialect == sqldb.Postgres})
	if err != nil {
		e.l.Errorf(ctx, "%s: begin: %v", LogPrefixExecute, err)
		return Result{}, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, q)
	if err != nil {
		e.l.Warnf(ctx, "%s: %v", LogPrefixExecute, err)
		return Result{}, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	res := Result{Columns: cols}
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}
		row := make([]string, len(cols))
		for i, v := range values {
			row[i] = render(v)
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		e.l.Warnf(ctx, "%s: %v", LogPrefixExecute, err)
		return Result{}, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	e.l.Debugf(ctx, "%s: %d rows", LogPrefixExecute, len(res.Rows))
	return res, nil
}

func render(v interface{}) string {
	var s string
	switch x := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		s = string(x)
	case string:
		s = x
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return sqldb.FormatDate(x)
		}
		return x.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		s = fmt.Sprint(x)
	}
	if r := []rune(s); len(r) > maxCellRunes {
		return string(r[:maxCellRunes]) + "…"
	}
	return s
}
