package litedb

import "strings"

// ColumnDef is one column of a CREATE TABLE statement. Definition is written
// verbatim after the name, e.g. "INTEGER PRIMARY KEY" or "TEXT NOT NULL".
type ColumnDef struct {
	Name       string
	Definition string
}

// ColumnDefs is an ordered list of column definitions. Columns are created in
// slice order.
type ColumnDefs []ColumnDef

// columnsKind tells the three forms of a Columns selection apart.
type columnsKind int

const (
	columnsAll columnsKind = iota
	columnsExpr
	columnsList
)

// Columns selects what a query returns. The zero value selects every column.
type Columns struct {
	kind  columnsKind
	expr  string
	names []string
}

// AllColumns selects every column, rendered as "*".
func AllColumns() Columns {
	return Columns{kind: columnsAll}
}

// Expr selects the given column clause verbatim, e.g. "COUNT(*)" or
// "id, upper(name)".
func Expr(clause string) Columns {
	return Columns{kind: columnsExpr, expr: clause}
}

// ColumnList selects the named columns in order. An empty list selects every
// column.
func ColumnList(names ...string) Columns {
	return Columns{kind: columnsList, names: names}
}

// String renders the column clause of a SELECT statement.
func (c Columns) String() string {
	switch c.kind {
	case columnsExpr:
		return c.expr
	case columnsList:
		if len(c.names) == 0 {
			return "*"
		}
		return strings.Join(c.names, ", ")
	default:
		return "*"
	}
}
