package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"hrms/internal/platform/metrics"
)

const (
	CollectionUsers      = "users"
	CollectionAttendance = "attendance"
	CollectionLeaves     = "leaves"
)

var Collections = []string{CollectionUsers, CollectionAttendance, CollectionLeaves}

// Result reports one SyncAll pass: per-collection record counts on success,
// the last failure message otherwise.
type Result struct {
	Success bool           `json:"success"`
	Counts  map[string]int `json:"counts,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Engine maintains the flat-file mirror of the users, attendance and leaves
// collections. Each collection has its own mutex (two syncs of the same
// collection never interleave; different collections may run concurrently)
// and a capacity-1 trigger channel: a burst of triggers while a sync runs
// collapses into at most one follow-up pass.
type Engine struct {
	reader      Reader
	dir         string
	interval    time.Duration
	readTimeout time.Duration
	metrics     *metrics.Collector

	locks  map[string]*sync.Mutex
	notify map[string]chan struct{}

	startMu sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewEngine(reader Reader, dir string, interval, readTimeout time.Duration, collector *metrics.Collector) *Engine {
	e := &Engine{
		reader:      reader,
		dir:         dir,
		interval:    interval,
		readTimeout: readTimeout,
		metrics:     collector,
		locks:       make(map[string]*sync.Mutex, len(Collections)),
		notify:      make(map[string]chan struct{}, len(Collections)),
	}
	for _, name := range Collections {
		e.locks[name] = &sync.Mutex{}
		e.notify[name] = make(chan struct{}, 1)
	}
	return e
}

// FilePath returns the stable mirror file path for a collection.
func (e *Engine) FilePath(collection string) string {
	return filepath.Join(e.dir, collection+".json")
}

// Start launches the periodic ticker and the per-collection trigger workers.
// Safe to call once per engine; Stop tears everything down.
func (e *Engine) Start(ctx context.Context) {
	e.startMu.Lock()
	defer e.startMu.Unlock()
	if e.cancel != nil {
		return
	}
	ctx, e.cancel = context.WithCancel(ctx)

	for _, name := range Collections {
		collection := name
		e.wg.Add(1)
		go e.runCollection(ctx, collection)
	}

	e.wg.Add(1)
	go e.runTicker(ctx)
}

func (e *Engine) Stop() {
	e.startMu.Lock()
	cancel := e.cancel
	e.cancel = nil
	e.startMu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	e.wg.Wait()
}

// Trigger requests an asynchronous sync of one collection, typically right
// after a mutation. It never blocks and never reports an error to the
// caller; failures surface in the log and metrics only.
func (e *Engine) Trigger(collection string) {
	ch, ok := e.notify[collection]
	if !ok {
		slog.Warn("mirror trigger for unknown collection", "collection", collection)
		return
	}
	select {
	case ch <- struct{}{}:
	default:
		// A sync is already pending; this trigger coalesces into it.
	}
}

// SyncAll synchronously rebuilds every collection's mirror file. Failed
// collections keep their previous snapshot.
func (e *Engine) SyncAll(ctx context.Context) Result {
	counts := make(map[string]int, len(Collections))
	var lastErr error
	for _, name := range Collections {
		count, err := e.syncCollection(ctx, name)
		if err != nil {
			lastErr = err
			continue
		}
		counts[name] = count
	}
	if lastErr != nil {
		return Result{Success: false, Counts: counts, Error: lastErr.Error()}
	}
	return Result{Success: true, Counts: counts}
}

// SyncCollection rebuilds one collection's mirror file.
func (e *Engine) SyncCollection(ctx context.Context, collection string) bool {
	if _, err := e.syncCollection(ctx, collection); err != nil {
		slog.Warn("mirror sync failed", "collection", collection, "err", err)
		return false
	}
	return true
}

func (e *Engine) runCollection(ctx context.Context, collection string) {
	defer e.wg.Done()
	ch := e.notify[collection]
	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			if _, err := e.syncCollection(ctx, collection); err != nil {
				slog.Warn("mirror sync failed", "collection", collection, "err", err)
			}
		}
	}
}

func (e *Engine) runTicker(ctx context.Context) {
	defer e.wg.Done()
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Periodic passes go through the same coalescing path as
			// post-mutation triggers.
			for _, name := range Collections {
				e.Trigger(name)
			}
		}
	}
}

func (e *Engine) syncCollection(ctx context.Context, collection string) (count int, err error) {
	lock, ok := e.locks[collection]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	lock.Lock()
	defer lock.Unlock()

	defer func() {
		if e.metrics != nil {
			e.metrics.RecordSync(count, err != nil)
		}
	}()

	readCtx, cancel := context.WithTimeout(ctx, e.readTimeout)
	defer cancel()

	var payload any
	switch collection {
	case CollectionUsers:
		rows, readErr := e.reader.UserRows(readCtx)
		if readErr != nil {
			return 0, fmt.Errorf("read users: %w", readErr)
		}
		payload, count = rows, len(rows)
	case CollectionAttendance:
		rows, readErr := e.reader.AttendanceRows(readCtx)
		if readErr != nil {
			return 0, fmt.Errorf("read attendance: %w", readErr)
		}
		payload, count = rows, len(rows)
	case CollectionLeaves:
		rows, readErr := e.reader.LeaveRows(readCtx)
		if readErr != nil {
			return 0, fmt.Errorf("read leaves: %w", readErr)
		}
		payload, count = rows, len(rows)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshal %s: %w", collection, err)
	}

	if err := e.writeAtomic(collection, data); err != nil {
		return 0, err
	}
	return count, nil
}

// writeAtomic replaces the collection file via temp-file-plus-rename so an
// external reader never observes a partial write.
func (e *Engine) writeAtomic(collection string, data []byte) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("mirror dir: %w", err)
	}
	tmp, err := os.CreateTemp(e.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", collection, err)
	}
	if err := os.Rename(tmpPath, e.FilePath(collection)); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", collection, err)
	}
	return nil
}
