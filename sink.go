package taglog

import "time"

// Sink is the output backend Strategy (console, zerolog, zap, ...).
// Write receives the severity stream the caller picked, the single
// authoritative timestamp from the Logger, and the rendered parts.
// A styled render arrives as one pre-joined part; an unstyled render
// arrives as individual parts (label first, then messages, with the
// call-site annotation at its configured position).
type Sink interface {
	Write(level Level, at time.Time, parts []string)
}

// NopSink discards everything. Useful for silencing a logger in tests or
// benchmarks without touching call sites.
type NopSink struct{}

func (NopSink) Write(Level, time.Time, []string) {}
