package litedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/nsqlite/litedb/internal/log"
)

// Memory is the location of an ephemeral in-memory database that vanishes
// when the Database is closed.
const Memory = ":memory:"

const defaultBusyTimeout = 5 * time.Second

// Config represents the configuration for Open.
type Config struct {
	// Name is the path of the database file, or Memory. Empty means Memory.
	Name string
	// Driver is the database/sql driver to use. Empty means DriverMattn.
	Driver Driver
	// BusyTimeout is how long the engine waits on a locked database before
	// failing. Zero means 5 seconds.
	BusyTimeout time.Duration
	// Logger receives statement logs. An uninitialized Logger discards them.
	Logger log.Logger
}

// Database is an accessor over a single connection to an embedded SQLite
// database. See the package documentation for its contract.
type Database struct {
	name   string
	driver Driver
	logger log.Logger
	pool   *sql.DB
	conn   *sql.Conn
	closed atomic.Bool
	stats  statsCounters
}

// Open opens the database described by config and acquires its single
// connection.
func Open(ctx context.Context, config Config) (*Database, error) {
	if config.Name == "" {
		config.Name = Memory
	}
	if config.Driver == (Driver{}) {
		config.Driver = DriverMattn
	}
	if !Drivers.Contains(config.Driver) {
		return nil, fmt.Errorf("unknown driver %q", config.Driver.Value)
	}
	if config.BusyTimeout <= 0 {
		config.BusyTimeout = defaultBusyTimeout
	}
	if !config.Logger.IsInitialized() {
		config.Logger = log.Discard()
	}

	dsn := createDSN(config.Driver, config.Name, config.BusyTimeout)
	pool, err := sql.Open(config.Driver.Value, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	pool.SetConnMaxIdleTime(0)
	pool.SetConnMaxLifetime(0)
	pool.SetMaxIdleConns(1)
	pool.SetMaxOpenConns(1)

	conn, err := pool.Conn(ctx)
	if err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		_ = pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	config.Logger.InfoNs(log.NsDatabase, "database opened", log.KV{
		"name":   config.Name,
		"driver": config.Driver.Value,
	})

	return &Database{
		name:   config.Name,
		driver: config.Driver,
		logger: config.Logger,
		pool:   pool,
		conn:   conn,
	}, nil
}

// Close releases the connection. Closing an already closed Database is a
// no-op.
func (db *Database) Close() error {
	if !db.closed.CompareAndSwap(false, true) {
		return nil
	}

	var errs []error
	if err := db.conn.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
	}
	if err := db.pool.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close database: %w", err))
	}

	db.logger.InfoNs(log.NsDatabase, "database closed", log.KV{"name": db.name})
	return errors.Join(errs...)
}

// Name returns the location the Database was opened with.
func (db *Database) Name() string {
	return db.name
}

// Driver returns the driver backing the Database.
func (db *Database) Driver() Driver {
	return db.driver
}

// Stats returns a snapshot of the statement counters.
func (db *Database) Stats() Stats {
	return db.stats.snapshot()
}

// CreateTable creates a table with the given columns, in order, and returns
// a Table bound to it.
func (db *Database) CreateTable(
	ctx context.Context, name string, columns ColumnDefs,
) (*Table, error) {
	stmt := buildCreateTable(name, columns)
	if err := db.exec(ctx, "create table", stmt); err != nil {
		return nil, err
	}
	return db.GetTable(name), nil
}

// AppendData inserts one row. Values are written into the statement text in
// order, see formatLiteral for how each one is rendered.
func (db *Database) AppendData(ctx context.Context, table string, values ...any) error {
	return db.exec(ctx, "append data", buildInsert(table, values))
}

// AppendManyData inserts every row in a single transaction using bound
// parameters. All rows must have as many values as the first one.
func (db *Database) AppendManyData(ctx context.Context, table string, rows ...[]any) error {
	if db.closed.Load() {
		return ErrClosed
	}
	if len(rows) == 0 {
		return ErrEmptyBatch
	}

	arity := len(rows[0])
	for i, row := range rows {
		if len(row) != arity {
			return fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), arity, ErrRowArity)
		}
	}

	stmt := buildInsertPlaceholders(table, arity)
	return db.mutate(ctx, func(tx *sql.Tx) (int, error) {
		db.logStatement(stmt, log.KV{"statement": stmt, "rows": len(rows)})

		prepared, err := tx.PrepareContext(ctx, stmt)
		if err != nil {
			db.logFailure(stmt, err)
			return 0, fmt.Errorf("failed to prepare append many data: %w", err)
		}
		defer prepared.Close()

		for i, row := range rows {
			if _, err := prepared.ExecContext(ctx, row...); err != nil {
				db.logFailure(stmt, err)
				return 0, fmt.Errorf("failed to append row %d: %w", i, err)
			}
		}
		return len(rows), nil
	})
}

// UpdateData sets column to newValue on every row matching filter. An empty
// filter updates every row.
func (db *Database) UpdateData(
	ctx context.Context, table, column string, newValue any, filter string,
) error {
	return db.exec(ctx, "update data", buildUpdate(table, column, newValue, filter))
}

// DeleteData deletes every row matching filter. An empty filter deletes every
// row.
func (db *Database) DeleteData(ctx context.Context, table, filter string) error {
	return db.exec(ctx, "delete data", buildDelete(table, filter))
}

// GetData queries table and fetches rows according to number:
//
//   - 1 fetches a single row, read it with Result.One
//   - 0 or less fetches every matching row
//   - more than 1 fetches up to number rows
//
// It never commits.
func (db *Database) GetData(
	ctx context.Context, table string, number int, columns Columns, filter string,
) (Result, error) {
	if db.closed.Load() {
		return Result{}, ErrClosed
	}

	stmt := buildSelect(table, columns, filter)
	db.logStatement(stmt)

	rows, err := db.conn.QueryContext(ctx, stmt)
	if err != nil {
		db.logFailure(stmt, err)
		return Result{}, fmt.Errorf("failed to get data: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return Result{}, fmt.Errorf("failed to get columns: %w", err)
	}

	fetched, err := fetchRows(rows, len(names), number)
	if err != nil {
		db.logFailure(stmt, err)
		return Result{}, fmt.Errorf("failed to get data: %w", err)
	}

	db.stats.reads.Add(1)
	return Result{single: number == 1, columns: names, rows: fetched}, nil
}

// GetTable returns a Table bound to name. It does not check that the table
// exists.
func (db *Database) GetTable(name string) *Table {
	return &Table{db: db, name: name}
}

// fetchRows scans up to limit rows, or every row when limit is 0 or less.
func fetchRows(rows *sql.Rows, width int, limit int) ([]Row, error) {
	fetched := []Row{}
	for (limit <= 0 || len(fetched) < limit) && rows.Next() {
		row := make(Row, width)
		scans := make([]any, width)
		for i := range scans {
			scans[i] = &row[i]
		}

		if err := rows.Scan(scans...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		fetched = append(fetched, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return fetched, nil
}

// exec runs a single mutating statement and commits it.
func (db *Database) exec(ctx context.Context, action string, stmt string) error {
	if db.closed.Load() {
		return ErrClosed
	}

	return db.mutate(ctx, func(tx *sql.Tx) (int, error) {
		db.logStatement(stmt)
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			db.logFailure(stmt, err)
			return 0, fmt.Errorf("failed to %s: %w", action, err)
		}
		return 1, nil
	})
}

// mutate runs fn inside a transaction on the connection. The transaction is
// committed when fn succeeds and rolled back otherwise. fn reports how many
// statements it executed, they are counted once the commit succeeds.
func (db *Database) mutate(ctx context.Context, fn func(tx *sql.Tx) (int, error)) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		db.stats.recordFailure(err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	executed, err := fn(tx)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		db.stats.recordFailure(err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	db.stats.mutations.Add(int64(executed))
	db.stats.commits.Add(1)
	return nil
}

func (db *Database) logStatement(stmt string, keyVals ...log.KV) {
	kv := log.KV{"statement": stmt}
	if len(keyVals) > 0 {
		kv = keyVals[0]
	}
	db.logger.DebugNs(log.NsDatabase, "executing statement", kv)
}

func (db *Database) logFailure(stmt string, err error) {
	db.stats.recordFailure(err)
	db.logger.DebugNs(log.NsDatabase, "statement failed", log.KV{
		"statement": stmt,
		"error":     err.Error(),
		"class":     Classify(err).Value,
	})
}
