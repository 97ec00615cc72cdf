package sqlquery

// Result is a query's column names and its rows rendered as text.
type Result struct {
	Columns []string
	Rows    [][]string
}

// Empty reports whether the query returned no rows.
func (r Result) Empty() bool { return len(r.Rows) == 0 }
