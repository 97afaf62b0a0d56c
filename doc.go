// Package litedb is a thin accessor over an embedded SQLite engine.
//
// A Database owns a single connection to a database file (or an in-memory
// instance) and exposes table creation, insertion, update, deletion and
// queries built by formatting statement text. Every mutating call runs in its
// own transaction and commits before returning, so no work spans calls.
//
//	db, err := litedb.Open(ctx, litedb.Config{Name: litedb.Memory})
//	if err != nil {
//		return err
//	}
//	defer db.Close()
//
//	users, err := db.CreateTable(ctx, "users", litedb.ColumnDefs{
//		{Name: "id", Definition: "INTEGER PRIMARY KEY"},
//		{Name: "name", Definition: "TEXT NOT NULL"},
//	})
//	err = users.Append(ctx, 1, litedb.Quote("bob"))
//	res, err := users.Get(ctx, 1, litedb.AllColumns(), "id = 1")
//	row := res.One() // nil when nothing matched
//
// # Interpolation hazard
//
// Table names, column definitions, filters, and the values given to
// AppendData and UpdateData are written into the statement text verbatim.
// Nothing is escaped. Callers must pre-format literals (see Quote) and must
// never pass untrusted input. Only AppendManyData binds its values as
// parameters.
//
// # Concurrency
//
// A Database is not safe for concurrent use. Serialize calls externally or
// open independent instances.
package litedb
