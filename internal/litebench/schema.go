package litebench

import (
	"context"
	"slices"

	"github.com/nsqlite/litedb"
)

const usersTable = "users"

var usersColumns = litedb.ColumnDefs{
	{Name: "id", Definition: "INTEGER PRIMARY KEY NOT NULL"},
	{Name: "created", Definition: "INTEGER NOT NULL"},
	{Name: "email", Definition: "TEXT NOT NULL"},
	{Name: "active", Definition: "INTEGER NOT NULL"},
}

// recreateSchema leaves an empty users table, creating it when missing.
func recreateSchema(ctx context.Context, db *litedb.Database) error {
	tables, err := db.TableNames(ctx)
	if err != nil {
		return err
	}

	if slices.Contains(tables, usersTable) {
		return db.DeleteData(ctx, usersTable, "")
	}

	_, err = db.CreateTable(ctx, usersTable, usersColumns)
	return err
}
