// Package zap routes taglog output through go.uber.org/zap.
package zap

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/taglog"
)

// Sink bridges taglog to go.uber.org/zap.
//
// The engine renders the line (label, messages, optional call site) and
// the sink forwards it as the zap message at the mapped level. The
// engine's authoritative timestamp is written as a "ts" string field with
// RFC3339Nano precision.
type Sink struct {
	l *zap.Logger
}

func New(l *zap.Logger) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	return &Sink{l: l}
}

// Write emits one entry.
// Uses Logger.Check to avoid building fields when the level is disabled.
func (s *Sink) Write(level taglog.Level, at time.Time, parts []string) {
	ce := s.l.Check(mapLevel(level), strings.Join(parts, " "))
	if ce == nil {
		return
	}
	ce.Write(zap.String("ts", at.UTC().Format(time.RFC3339Nano)))
}

// mapLevel converts taglog.Level to zapcore.Level.
func mapLevel(l taglog.Level) zapcore.Level {
	switch {
	case l <= taglog.LevelInfo:
		return zapcore.InfoLevel
	case l <= taglog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
