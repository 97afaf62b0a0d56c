package litebench

import (
	"github.com/nsqlite/litedb"
	"github.com/nsqlite/litedb/internal/litebench/benchbar"
)

// benchmarksConfig holds all parameters for each benchmark.
type benchmarksConfig struct {
	benchmarkSingleConfig
	benchmarkBatchConfig
	benchmarkTableConfig

	// silent disables the progress bars.
	silent bool
}

func (c benchmarksConfig) newBar(description string, maxItems int) *benchbar.ProgressBar {
	if c.silent {
		return benchbar.NewSilentBar(description, maxItems)
	}
	return benchbar.NewBar(description, maxItems)
}

func getMattnConfig() benchmarksConfig {
	return benchmarksConfig{
		benchmarkSingleConfig: benchmarkSingleConfig{
			appendXUsers: 10_000,
		},

		benchmarkBatchConfig: benchmarkBatchConfig{
			appendXUsers: 200_000,
		},

		benchmarkTableConfig: benchmarkTableConfig{
			appendXUsers:     5_000,
			updateYUsers:     2_500,
			queryUsersZTimes: 100,
		},
	}
}

// getModerncConfig halves the batch, the pure Go engine is slower at bulk
// inserts.
func getModerncConfig() benchmarksConfig {
	conf := getMattnConfig()
	conf.benchmarkBatchConfig.appendXUsers = 100_000
	return conf
}

func getConfig(driver litedb.Driver) benchmarksConfig {
	if driver == litedb.DriverModernc {
		return getModerncConfig()
	}
	return getMattnConfig()
}
