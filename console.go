package taglog

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// ConsoleSink writes rendered parts as one line per call: info to the
// standard stream, warn and error to the error stream. The default
// writers come from fatih/color so ANSI styling survives on Windows.
type ConsoleSink struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
}

// NewConsoleSink returns a sink writing to the process's standard streams.
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{out: color.Output, err: color.Error}
}

// NewConsoleSinkWriters returns a sink writing to the given streams.
func NewConsoleSinkWriters(out, err io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out, err: err}
}

func (s *ConsoleSink) Write(level Level, _ time.Time, parts []string) {
	w := s.out
	if level >= LevelWarn {
		w = s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(w, strings.Join(parts, " "))
}
