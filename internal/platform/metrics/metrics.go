package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	totalDurationMs uint64
	syncRuns        uint64
	syncFailures    uint64
	syncRecords     uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordSync(records int, failed bool) {
	atomic.AddUint64(&c.syncRuns, 1)
	if failed {
		atomic.AddUint64(&c.syncFailures, 1)
		return
	}
	atomic.AddUint64(&c.syncRecords, uint64(records))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":      total,
		"errorsTotal":        errs,
		"avgDurationMs":      avg,
		"totalDurationMs":    totalMs,
		"mirrorSyncRuns":     atomic.LoadUint64(&c.syncRuns),
		"mirrorSyncFailures": atomic.LoadUint64(&c.syncFailures),
		"mirrorSyncRecords":  atomic.LoadUint64(&c.syncRecords),
	}
}
