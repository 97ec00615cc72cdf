package sqlquery

import "context"

// Executor runs one generated read-only statement.
type Executor interface {
	Execute(ctx context.Context, query string) (Result, error)
}
