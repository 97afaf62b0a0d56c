package litedb

import (
	"context"
	"fmt"
)

// ColumnInfo describes a column as reported by the engine.
type ColumnInfo struct {
	Name string
	Type string
}

// TableNames lists the user tables of the database ordered by name.
func (db *Database) TableNames(ctx context.Context) ([]string, error) {
	res, err := db.GetData(
		ctx, "sqlite_master", 0, ColumnList("name"),
		"type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	names := make([]string, 0, res.Len())
	for _, row := range res.All() {
		names = append(names, fmt.Sprint(row[0]))
	}
	return names, nil
}

// TableColumns lists the columns of table in declaration order. A table that
// does not exist has no columns.
func (db *Database) TableColumns(ctx context.Context, table string) ([]ColumnInfo, error) {
	res, err := db.GetData(
		ctx, fmt.Sprintf("pragma_table_info(%s)", Quote(table)), 0,
		ColumnList("name", "type"), "1 = 1 ORDER BY cid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns of %s: %w", table, err)
	}

	columns := make([]ColumnInfo, 0, res.Len())
	for _, row := range res.All() {
		columns = append(columns, ColumnInfo{
			Name: fmt.Sprint(row[0]),
			Type: fmt.Sprint(row[1]),
		})
	}
	return columns, nil
}

// Count returns the number of rows of table matching filter. An empty
// filter counts every row.
func (db *Database) Count(ctx context.Context, table, filter string) (int64, error) {
	res, err := db.GetData(ctx, table, 1, Expr("COUNT(*)"), filter)
	if err != nil {
		return 0, err
	}

	row := res.One()
	if row == nil {
		return 0, nil
	}

	n, ok := row[0].(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected count value %v (%T)", row[0], row[0])
	}
	return n, nil
}
