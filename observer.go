package taglog

import "time"

// Entry is an immutable snapshot of an emitted log call, delivered to
// Observers after the sink write. Suppressed calls produce no Entry.
type Entry struct {
	At    time.Time
	Level Level
	Label string
	Tags  []string
	Parts []string
}

// Observer is notified for each emitted entry (Observer pattern).
// Implementations MUST be concurrency-safe.
type Observer interface {
	OnLog(entry Entry)
}

// ObserverFunc adapter.
type ObserverFunc func(Entry)

func (f ObserverFunc) OnLog(e Entry) { f(e) }
