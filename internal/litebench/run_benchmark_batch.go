package litebench

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nsqlite/litedb"
)

type benchmarkBatchConfig struct {
	appendXUsers int
}

// runBenchmarkBatch appends X users in a single transaction and then reads
// them back.
func runBenchmarkBatch(
	ctx context.Context, db *litedb.Database, fullConfig benchmarksConfig,
) (benchmarkResult, error) {
	conf := fullConfig.benchmarkBatchConfig
	start := time.Now()

	rows := make([][]any, 0, conf.appendXUsers)
	for idx := range conf.appendXUsers {
		rows = append(rows, []any{
			idx + 1, time.Now().Unix(), uuid.NewString() + "@example.com", 1,
		})
	}

	bar := fullConfig.newBar(fmt.Sprintf("Appending %d users in one batch", len(rows)), 1)
	if err := db.AppendManyData(ctx, usersTable, rows...); err != nil {
		return benchmarkResult{}, fmt.Errorf("error when appending: %w", err)
	}
	bar.Inc()
	bar.Finish()

	bar = fullConfig.newBar("Reading users", 1)
	res, err := db.GetData(ctx, usersTable, 0, litedb.ColumnList("id", "email"), "")
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error when reading: %w", err)
	}
	bar.Inc()
	bar.Finish()

	return benchmarkResult{
		Name:        "Batch",
		Duration:    time.Since(start),
		TotalReads:  uint64(res.Len()),
		TotalWrites: uint64(len(rows)),
	}, nil
}
