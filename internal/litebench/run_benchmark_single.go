package litebench

import (
	"context"
	"fmt"
	"time"

	"github.com/nsqlite/litedb"
)

type benchmarkSingleConfig struct {
	appendXUsers int
}

// runBenchmarkSingle appends X users one statement at a time, each one in its
// own commit, and then reads all of them at once.
func runBenchmarkSingle(
	ctx context.Context, db *litedb.Database, fullConfig benchmarksConfig,
) (benchmarkResult, error) {
	conf := fullConfig.benchmarkSingleConfig
	start := time.Now()
	var totalWrites uint64

	bar := fullConfig.newBar(
		fmt.Sprintf("Appending %d users", conf.appendXUsers), conf.appendXUsers,
	)
	for idx := range conf.appendXUsers {
		err := db.AppendData(ctx, usersTable, idx+1, time.Now().Unix(), newEmail(), true)
		if err != nil {
			return benchmarkResult{}, fmt.Errorf("error when appending: %w", err)
		}
		bar.Inc()
		totalWrites++
	}
	bar.Finish()

	bar = fullConfig.newBar("Reading users", 1)
	res, err := db.GetData(ctx, usersTable, 0, litedb.AllColumns(), "")
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error when reading: %w", err)
	}
	bar.Inc()
	bar.Finish()

	return benchmarkResult{
		Name:        "Single",
		Duration:    time.Since(start),
		TotalReads:  uint64(res.Len()),
		TotalWrites: totalWrites,
	}, nil
}
