package taglog

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/trickstertwo/xclock"
)

// Logger filters, labels, and routes tag-carrying log calls to a Sink.
//
// The installed Pattern is held behind an atomic pointer: Patterns are
// immutable after construction, so installing a new one is a single
// pointer swap and evaluators never observe a half-constructed tree.
type Logger struct {
	sink    Sink
	pattern atomic.Pointer[Pattern]

	// Observers: lock-free reads via atomic.Value; synchronized updates via obsMu.
	// Stored value is []Observer and MUST be treated as immutable by readers.
	observers atomic.Value // holds []Observer
	obsMu     sync.Mutex
}

// Factory: internal constructor.
func newLogger(cfg Config) *Logger {
	l := &Logger{sink: cfg.Sink}
	if len(cfg.Observers) > 0 {
		obs := make([]Observer, len(cfg.Observers))
		copy(obs, cfg.Observers)
		l.observers.Store(obs)
	} else {
		l.observers.Store(([]Observer)(nil))
	}
	return l
}

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Logger]

// SetGlobal sets the global Logger (Singleton setter).
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger, lazily installing the console default the
// first time it is needed. A diagnostic facility must never crash its
// host, so an unconfigured facade degrades to console output instead of
// panicking.
func L() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	global.CompareAndSwap(nil, Default())
	return global.Load()
}

// SetPattern compiles expr and installs it as this logger's filter.
// A blank expr clears filtering (every tag set passes). On a compilation
// error the previously installed pattern is left untouched.
func (l *Logger) SetPattern(expr string) error {
	if strings.TrimSpace(expr) == "" {
		l.pattern.Store(nil)
		return nil
	}
	p, err := Compile(expr)
	if err != nil {
		return err
	}
	l.pattern.Store(p)
	return nil
}

// PatternString returns the installed pattern's source expression, or ""
// when filtering is cleared.
func (l *Logger) PatternString() string {
	if p := l.pattern.Load(); p != nil {
		return p.String()
	}
	return ""
}

// Level entry points. Routing is static: the caller picked the stream.

func (l *Logger) Log(s Settings, args ...any)   { l.emit(LevelInfo, s, args) }
func (l *Logger) Warn(s Settings, args ...any)  { l.emit(LevelWarn, s, args) }
func (l *Logger) Error(s Settings, args ...any) { l.emit(LevelError, s, args) }

func (l *Logger) AddObserver(o Observer) {
	l.obsMu.Lock()
	defer l.obsMu.Unlock()
	cur := l.snapshotObservers()
	cur = append(cur, o)
	l.observers.Store(cur)
}

func (l *Logger) snapshotObservers() []Observer {
	v := l.observers.Load()
	if v == nil {
		return nil
	}
	cur := v.([]Observer)
	if len(cur) == 0 {
		return nil
	}
	out := make([]Observer, len(cur))
	copy(out, cur)
	return out
}

func (l *Logger) emit(level Level, s Settings, args []any) {
	tags := normalizeTags(s.Tags)

	p := l.pattern.Load()
	if p != nil && !p.Match(tags) {
		return
	}

	// Single authoritative timestamp from xclock
	at := xclock.Now()

	label := displayLabel(p, tags)

	var site string
	if s.IncludeSource {
		site, _ = captureCallSite(s.SourceDepth)
	}

	parts := render(label, site, s, args)

	if l.sink != nil {
		l.sink.Write(level, at, parts)
	}

	v := l.observers.Load()
	if v == nil {
		return
	}
	obs := v.([]Observer)
	if len(obs) == 0 {
		return
	}

	entry := Entry{
		At:    at,
		Level: level,
		Label: label,
		Tags:  tags,
		Parts: parts,
	}
	for _, o := range obs {
		o.OnLog(entry)
	}
}

// displayLabel computes the human-readable tag label for an emitted call.
// With no pattern installed it is all tags joined by "|". With a pattern,
// it lists (in insertion order) only the tags that individually satisfy
// the pattern; when none do — combination-only patterns like "a&b" — it
// falls back to the full list rather than printing a blank label.
func displayLabel(p *Pattern, tags []string) string {
	if len(tags) == 0 {
		return "untagged"
	}
	if p == nil {
		return strings.Join(tags, "|")
	}
	matched := make([]string, 0, len(tags))
	for _, t := range tags {
		if p.matchOne(t) {
			matched = append(matched, t)
		}
	}
	if len(matched) == 0 {
		matched = tags
	}
	return strings.Join(matched, "|")
}
