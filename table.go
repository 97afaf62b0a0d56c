package litedb

import "context"

// Table is a handle bound to one table of a Database. Every method forwards
// to the Database method of the same name with the table name prefilled.
//
// The Database must outlive the Table.
type Table struct {
	db   *Database
	name string
}

// Name returns the bound table name.
func (t *Table) Name() string {
	return t.name
}

// AppendMany forwards to Database.AppendManyData.
func (t *Table) AppendMany(ctx context.Context, rows ...[]any) error {
	return t.db.AppendManyData(ctx, t.name, rows...)
}

// Append forwards to Database.AppendData.
func (t *Table) Append(ctx context.Context, values ...any) error {
	return t.db.AppendData(ctx, t.name, values...)
}

// Update forwards to Database.UpdateData.
func (t *Table) Update(ctx context.Context, column string, newValue any, filter string) error {
	return t.db.UpdateData(ctx, t.name, column, newValue, filter)
}

// Delete forwards to Database.DeleteData.
func (t *Table) Delete(ctx context.Context, filter string) error {
	return t.db.DeleteData(ctx, t.name, filter)
}

// Get forwards to Database.GetData.
func (t *Table) Get(ctx context.Context, number int, columns Columns, filter string) (Result, error) {
	return t.db.GetData(ctx, t.name, number, columns, filter)
}

// Count forwards to Database.Count.
func (t *Table) Count(ctx context.Context, filter string) (int64, error) {
	return t.db.Count(ctx, t.name, filter)
}

// Columns forwards to Database.TableColumns.
func (t *Table) Columns(ctx context.Context) ([]ColumnInfo, error) {
	return t.db.TableColumns(ctx, t.name)
}
