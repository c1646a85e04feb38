package prof

import (
	"sync"
	"sync/atomic"
	"time"
)

// Entry is one recorded sampling call.
type Entry struct {
	Label    string
	Dur      time.Duration
	Attempts uint64
}

var (
	enabled atomic.Bool
	mu      sync.Mutex
	record  []Entry
)

// Enable turns recording on or off. Recording is off by default.
func Enable(on bool) { enabled.Store(on) }

// Enabled reports whether recording is on.
func Enabled() bool { return enabled.Load() }

// Track records the duration since start under name.
func Track(start time.Time, name string) {
	if !enabled.Load() {
		return
	}
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: name, Dur: elapsed})
	mu.Unlock()
}

// RecordAttempts records how many draws a sampling call needed.
func RecordAttempts(name string, attempts uint64) {
	if !enabled.Load() {
		return
	}
	mu.Lock()
	record = append(record, Entry{Label: name, Attempts: attempts})
	mu.Unlock()
}

// SnapshotAndReset returns the collected entries and clears them.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// Summary aggregates entries by label.
type Summary struct {
	Calls    int
	Total    time.Duration
	Attempts uint64
}

// Summarize folds entries into per-label totals.
func Summarize(entries []Entry) map[string]Summary {
	out := make(map[string]Summary)
	for _, e := range entries {
		s := out[e.Label]
		if e.Attempts > 0 {
			s.Attempts += e.Attempts
		} else {
			s.Calls++
			s.Total += e.Dur
		}
		out[e.Label] = s
	}
	return out
}
