package litedb

import (
	"sync/atomic"
	"time"

	"github.com/nsqlite/litedb/internal/util/syncutil"
)

// Stats holds counters about the statements a Database has run.
type Stats struct {
	// Reads is the number of successful queries.
	Reads int64 `json:"reads"`
	// Mutations is the number of committed mutating statements. A batch
	// append counts one per row.
	Mutations int64 `json:"mutations"`
	// Commits is the number of committed transactions.
	Commits int64 `json:"commits"`
	// Failures is the number of failed statements, transaction begins and
	// commits.
	Failures int64 `json:"failures"`
	// LastFailure is the message of the most recent failure, empty if none.
	LastFailure string `json:"lastFailure"`
	// LastFailureAt is when the most recent failure happened.
	LastFailureAt time.Time `json:"lastFailureAt"`
}

type statsCounters struct {
	reads         atomic.Int64
	mutations     atomic.Int64
	commits       atomic.Int64
	failures      atomic.Int64
	lastFailure   syncutil.Atomic[string]
	lastFailureAt syncutil.Atomic[time.Time]
}

func (s *statsCounters) recordFailure(err error) {
	s.failures.Add(1)
	s.lastFailure.Store(err.Error())
	s.lastFailureAt.Store(time.Now().UTC())
}

func (s *statsCounters) snapshot() Stats {
	return Stats{
		Reads:         s.reads.Load(),
		Mutations:     s.mutations.Load(),
		Commits:       s.commits.Load(),
		Failures:      s.failures.Load(),
		LastFailure:   s.lastFailure.Load(),
		LastFailureAt: s.lastFailureAt.Load(),
	}
}
