package litebench

import (
	"context"
	"fmt"
	"time"

	"github.com/nsqlite/litedb"
)

type benchmarkTableConfig struct {
	appendXUsers     int
	updateYUsers     int
	queryUsersZTimes int
}

// runBenchmarkTable drives a Table handle: it appends X users, deactivates Y
// of them one by one, touches every row once, deletes the inactive ones and
// then queries the first user Z times.
func runBenchmarkTable(
	ctx context.Context, db *litedb.Database, fullConfig benchmarksConfig,
) (benchmarkResult, error) {
	conf := fullConfig.benchmarkTableConfig
	start := time.Now()
	var totalReads, totalWrites uint64
	users := db.GetTable(usersTable)

	bar := fullConfig.newBar(
		fmt.Sprintf("Appending %d users", conf.appendXUsers), conf.appendXUsers,
	)
	for idx := range conf.appendXUsers {
		if err := users.Append(ctx, idx+1, time.Now().Unix(), newEmail(), true); err != nil {
			return benchmarkResult{}, fmt.Errorf("error when appending: %w", err)
		}
		bar.Inc()
		totalWrites++
	}
	bar.Finish()

	bar = fullConfig.newBar(
		fmt.Sprintf("Deactivating %d users", conf.updateYUsers), conf.updateYUsers,
	)
	for idx := range conf.updateYUsers {
		if err := users.Update(ctx, "active", false, fmt.Sprintf("id = %d", idx+1)); err != nil {
			return benchmarkResult{}, fmt.Errorf("error when updating: %w", err)
		}
		bar.Inc()
		totalWrites++
	}
	bar.Finish()

	if err := users.Update(ctx, "created", time.Now().Unix(), ""); err != nil {
		return benchmarkResult{}, fmt.Errorf("error when updating all: %w", err)
	}
	if err := users.Delete(ctx, "active = 0"); err != nil {
		return benchmarkResult{}, fmt.Errorf("error when deleting: %w", err)
	}
	totalWrites += 2

	bar = fullConfig.newBar(
		fmt.Sprintf("Querying the first user %d times", conf.queryUsersZTimes),
		conf.queryUsersZTimes,
	)
	for range conf.queryUsersZTimes {
		res, err := users.Get(ctx, 1, litedb.ColumnList("id", "email"), "active = 1 ORDER BY id")
		if err != nil {
			return benchmarkResult{}, fmt.Errorf("error when querying: %w", err)
		}
		if res.One() != nil {
			totalReads++
		}
		bar.Inc()
	}
	bar.Finish()

	return benchmarkResult{
		Name:        "Table",
		Duration:    time.Since(start),
		TotalReads:  totalReads,
		TotalWrites: totalWrites,
	}, nil
}
