// Package zerolog routes taglog output through rs/zerolog.
package zerolog

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/taglog"
)

// Sink bridges taglog to rs/zerolog.
//
// The engine renders the line (label, messages, optional call site) and
// the sink forwards it as the zerolog message at the mapped level, with
// the engine's single authoritative timestamp as "ts".
type Sink struct {
	l zerolog.Logger
}

func New(l zerolog.Logger) *Sink {
	return &Sink{l: l}
}

// Write emits one entry.
// Fast pre-check via GetLevel() avoids allocating a zerolog.Event when the
// backend level is disabled.
func (s *Sink) Write(level taglog.Level, at time.Time, parts []string) {
	zlvl := mapLevel(level)
	if zlvl < s.l.GetLevel() {
		return
	}

	ev := s.l.WithLevel(zlvl)

	// Ensure RFC3339Nano precision regardless of zerolog.TimeFieldFormat defaults.
	ev.Str("ts", at.UTC().Format(time.RFC3339Nano))

	ev.Msg(strings.Join(parts, " "))
}

// mapLevel converts taglog.Level to zerolog.Level.
func mapLevel(l taglog.Level) zerolog.Level {
	switch {
	case l <= taglog.LevelInfo:
		return zerolog.InfoLevel
	case l <= taglog.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
