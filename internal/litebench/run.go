package litebench

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nsqlite/litedb"
	"github.com/nsqlite/litedb/internal/log"
	"github.com/nsqlite/litedb/internal/util/numutil"
	"github.com/nsqlite/litedb/internal/version"
)

// benchmarkResult stores the outcome of a benchmark.
type benchmarkResult struct {
	Name        string
	Duration    time.Duration
	TotalReads  uint64
	TotalWrites uint64
}

// Run executes the benchmarks for every SQLite driver and prints the results.
func Run(ctx context.Context) error {
	fmt.Println(version.BenchVersion())

	tmpDir, err := os.MkdirTemp("", "litedbbench_*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	logger := log.NewLogger(os.Stderr, false)

	for _, driver := range litedb.Drivers.Members() {
		db, err := openDatabase(ctx, tmpDir, driver, logger)
		if err != nil {
			return fmt.Errorf("error opening %s db: %w", driver.Value, err)
		}

		fmt.Printf("\n--- Benchmarks for %s ---\n", driver.Value)
		results, err := runBenchmark(ctx, db, getConfig(driver))
		_ = db.Close()
		if err != nil {
			return fmt.Errorf("error benchmarking %s: %w", driver.Value, err)
		}
		printResults(results)
	}

	return nil
}

func openDatabase(
	ctx context.Context, dir string, driver litedb.Driver, logger log.Logger,
) (*litedb.Database, error) {
	dbPath := filepath.Join(dir, driver.Value, "bench.db")
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}
	fmt.Printf("%s db path: %s\n", driver.Value, dbPath)

	return litedb.Open(ctx, litedb.Config{
		Name:   dbPath,
		Driver: driver,
		Logger: logger,
	})
}

func printResults(results []benchmarkResult) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Color.Header = text.Colors{text.FgCyan, text.Bold}
	tw.AppendHeader(table.Row{"Name", "Reads", "Writes", "Duration"})

	for _, r := range results {
		tw.AppendRow(table.Row{
			r.Name,
			numutil.IntWithCommas(r.TotalReads),
			numutil.IntWithCommas(r.TotalWrites),
			r.Duration,
		})
	}

	fmt.Println(tw.Render())
}

// runBenchmark executes all benchmarks, and returns results.
//
// It recreates the schema before each benchmark.
func runBenchmark(
	ctx context.Context, db *litedb.Database, cfg benchmarksConfig,
) ([]benchmarkResult, error) {
	benchs := []func(context.Context, *litedb.Database, benchmarksConfig) (benchmarkResult, error){
		runBenchmarkSingle,
		runBenchmarkBatch,
		runBenchmarkTable,
	}

	var results []benchmarkResult

	for _, bench := range benchs {
		if err := recreateSchema(ctx, db); err != nil {
			return nil, err
		}

		res, err := bench(ctx, db, cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

func newEmail() string {
	return litedb.Quote(uuid.NewString() + "@example.com")
}
