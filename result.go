package litedb

// Row is one result row, with values as returned by the driver.
type Row []any

// Result holds the rows returned by GetData.
//
// A single-row result (number == 1) is read with One, anything else with All.
type Result struct {
	single  bool
	columns []string
	rows    []Row
}

// Columns returns the names of the result columns as reported by the engine.
func (r Result) Columns() []string {
	return r.columns
}

// IsSingle reports whether the result was requested as a single row.
func (r Result) IsSingle() bool {
	return r.single
}

// One returns the first row, or nil when no row matched.
func (r Result) One() Row {
	if len(r.rows) == 0 {
		return nil
	}
	return r.rows[0]
}

// All returns every fetched row. It is empty, never nil, when nothing
// matched.
func (r Result) All() []Row {
	if r.rows == nil {
		return []Row{}
	}
	return r.rows
}

// Len returns the number of fetched rows.
func (r Result) Len() int {
	return len(r.rows)
}
