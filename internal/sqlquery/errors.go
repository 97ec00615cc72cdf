package sqlquery

import "errors"

var (
	ErrEmptyQuery         = errors.New("empty query")
	ErrNotReadOnly        = errors.New("only a single SELECT or WITH statement is allowed")
	ErrMultipleStatements = errors.New("multiple statements are not allowed")
	ErrQueryFailed        = errors.New("query failed")
)
