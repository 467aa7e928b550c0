package taglog

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xclock/adapter/frozen"
)

// stubSink is a minimal Sink for tests. It records every write.
type stubSink struct {
	mu     sync.Mutex
	writes []stubWrite
}

type stubWrite struct {
	At    time.Time
	Level Level
	Parts []string
}

func (s *stubSink) Write(level Level, at time.Time, parts []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]string, len(parts))
	copy(cp, parts)
	s.writes = append(s.writes, stubWrite{At: at, Level: level, Parts: cp})
}

func (s *stubSink) snapshot() []stubWrite {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]stubWrite, len(s.writes))
	copy(out, s.writes)
	return out
}

// plain returns unstyled Settings for the given tags so tests can assert
// on individual parts.
func plain(tags ...string) Settings {
	return Settings{Tags: tags}
}

func newTestLogger(t *testing.T) (*Logger, *stubSink) {
	t.Helper()
	sink := &stubSink{}
	logger, err := NewBuilder().WithSink(sink).Build()
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}
	return logger, sink
}

func TestUnsetPatternEmitsEverything(t *testing.T) {
	t.Parallel()

	logger, sink := newTestLogger(t)

	logger.Log(plain("net"), "one")
	logger.Log(plain(), "two")
	logger.Log(plain("a", "b"), "three")

	writes := sink.snapshot()
	if len(writes) != 3 {
		t.Fatalf("expected 3 writes, got %d", len(writes))
	}
	if writes[0].Parts[0] != "net" {
		t.Errorf("label = %q, want %q", writes[0].Parts[0], "net")
	}
	if writes[1].Parts[0] != "untagged" {
		t.Errorf("empty tag set label = %q, want %q", writes[1].Parts[0], "untagged")
	}
	if writes[2].Parts[0] != "a|b" {
		t.Errorf("label = %q, want %q", writes[2].Parts[0], "a|b")
	}
}

func TestPatternFiltering(t *testing.T) {
	t.Parallel()

	logger, sink := newTestLogger(t)
	if err := logger.SetPattern("net-verbose"); err != nil {
		t.Fatalf("set pattern: %v", err)
	}

	logger.Log(plain("net"), "kept")
	logger.Log(plain("net", "verbose"), "suppressed")
	logger.Log(plain("ui"), "suppressed")
	logger.Log(plain(), "suppressed: empty set cannot satisfy net-verbose")

	writes := sink.snapshot()
	if len(writes) != 1 {
		t.Fatalf("expected 1 write, got %d: %+v", len(writes), writes)
	}
	if got := strings.Join(writes[0].Parts, " "); got != "net kept" {
		t.Errorf("write = %q, want %q", got, "net kept")
	}
}

func TestNegationPatternMatchesEmptySet(t *testing.T) {
	t.Parallel()

	logger, sink := newTestLogger(t)
	if err := logger.SetPattern("!verbose"); err != nil {
		t.Fatalf("set pattern: %v", err)
	}

	logger.Log(plain(), "vacuously kept")
	logger.Log(plain("verbose"), "suppressed")

	writes := sink.snapshot()
	if len(writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(writes))
	}
	if writes[0].Parts[0] != "untagged" {
		t.Errorf("label = %q, want %q", writes[0].Parts[0], "untagged")
	}
}

func TestLabelListsIndividuallyMatchingTags(t *testing.T) {
	t.Parallel()

	logger, sink := newTestLogger(t)
	if err := logger.SetPattern("a+b"); err != nil {
		t.Fatalf("set pattern: %v", err)
	}

	// c does not individually satisfy a+b, so it is excluded from the label.
	logger.Log(plain("c", "a"), "msg")

	writes := sink.snapshot()
	if len(writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(writes))
	}
	if writes[0].Parts[0] != "a" {
		t.Errorf("label = %q, want %q", writes[0].Parts[0], "a")
	}
}

func TestLabelFallbackForCombinationPatterns(t *testing.T) {
	t.Parallel()

	logger, sink := newTestLogger(t)
	if err := logger.SetPattern("a&b"); err != nil {
		t.Fatalf("set pattern: %v", err)
	}

	// Neither a nor b alone satisfies a&b; the label falls back to the
	// full tag list rather than printing blank.
	logger.Log(plain("a", "b"), "msg")

	writes := sink.snapshot()
	if len(writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(writes))
	}
	if writes[0].Parts[0] != "a|b" {
		t.Errorf("label = %q, want %q", writes[0].Parts[0], "a|b")
	}
}

func TestSetPatternFailureKeepsPrevious(t *testing.T) {
	t.Parallel()

	logger, sink := newTestLogger(t)
	if err := logger.SetPattern("net"); err != nil {
		t.Fatalf("set pattern: %v", err)
	}

	for _, bad := range []string{"(", ")", "&", "a&"} {
		if err := logger.SetPattern(bad); err == nil {
			t.Errorf("expected compilation error for %q", bad)
		}
	}
	if got := logger.PatternString(); got != "net" {
		t.Fatalf("pattern after failed compiles = %q, want %q", got, "net")
	}

	logger.Log(plain("net"), "kept")
	logger.Log(plain("ui"), "suppressed")
	if writes := sink.snapshot(); len(writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(writes))
	}
}

func TestClearPatternRestoresAlwaysMatch(t *testing.T) {
	t.Parallel()

	logger, sink := newTestLogger(t)
	if err := logger.SetPattern("net"); err != nil {
		t.Fatalf("set pattern: %v", err)
	}
	logger.Log(plain("ui"), "suppressed")

	if err := logger.SetPattern("  "); err != nil {
		t.Fatalf("clear pattern: %v", err)
	}
	if got := logger.PatternString(); got != "" {
		t.Fatalf("pattern after clear = %q, want empty", got)
	}

	logger.Log(plain("ui"), "kept")
	logger.Log(plain(), "kept")

	if writes := sink.snapshot(); len(writes) != 2 {
		t.Fatalf("expected 2 writes after clear, got %d", len(writes))
	}
}

func TestMalformedSettingsStillEmit(t *testing.T) {
	t.Parallel()

	logger, sink := newTestLogger(t)

	s := CoerceSettings(42) // bare number instead of a record
	s.Color1, s.Color2 = "", ""
	logger.Log(s, "still here")

	writes := sink.snapshot()
	if len(writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(writes))
	}
	if writes[0].Parts[0] != "untagged" {
		t.Errorf("label = %q, want %q", writes[0].Parts[0], "untagged")
	}
}

func TestLevelRouting(t *testing.T) {
	t.Parallel()

	logger, sink := newTestLogger(t)

	logger.Log(plain("a"), "info")
	logger.Warn(plain("a"), "warn")
	logger.Error(plain("a"), "error")

	writes := sink.snapshot()
	if len(writes) != 3 {
		t.Fatalf("expected 3 writes, got %d", len(writes))
	}
	want := []Level{LevelInfo, LevelWarn, LevelError}
	for i, w := range writes {
		if w.Level != want[i] {
			t.Errorf("write %d level = %v, want %v", i, w.Level, want[i])
		}
	}
}

func TestUnstyledPartsArePassedIndividually(t *testing.T) {
	t.Parallel()

	logger, sink := newTestLogger(t)
	logger.Log(plain("net"), "status", 200)

	writes := sink.snapshot()
	if len(writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(writes))
	}
	got := writes[0].Parts
	want := []string{"net", "status", "200"}
	if len(got) != len(want) {
		t.Fatalf("parts = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("part %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStyledRenderIsOnePart(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	logger, sink := newTestLogger(t)
	logger.Log(Tags("net").WithColors("cyan", "gray"), "status", 200)

	writes := sink.snapshot()
	if len(writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(writes))
	}
	if len(writes[0].Parts) != 1 {
		t.Fatalf("styled render must be a single part, got %v", writes[0].Parts)
	}
	if got := writes[0].Parts[0]; got != "net status 200" {
		t.Errorf("styled part = %q, want %q", got, "net status 200")
	}
}

func TestCallSitePosition(t *testing.T) {
	t.Parallel()

	logger, sink := newTestLogger(t)

	end := plain("net")
	end.IncludeSource = true
	logger.Log(end, "msg")

	start := plain("net")
	start.IncludeSource = true
	start.SourcePosition = SourceStart
	logger.Log(start, "msg")

	writes := sink.snapshot()
	if len(writes) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(writes))
	}

	last := writes[0].Parts[len(writes[0].Parts)-1]
	if !strings.HasPrefix(last, "(source: ") || !strings.Contains(last, "logger_test.go:") {
		t.Errorf("trailing call site = %q", last)
	}
	first := writes[1].Parts[0]
	if !strings.HasPrefix(first, "(source: ") {
		t.Errorf("leading call site = %q", first)
	}
}

func TestObserverReceivesEntries(t *testing.T) {
	// Freeze time for determinism
	old := xclock.Default()
	defer xclock.SetDefault(old)
	ft := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	xclock.SetDefault(frozen.New(ft))

	logger, _ := newTestLogger(t)
	var got []Entry
	logger.AddObserver(ObserverFunc(func(e Entry) { got = append(got, e) }))

	if err := logger.SetPattern("net"); err != nil {
		t.Fatalf("set pattern: %v", err)
	}
	logger.Warn(plain("net", "http"), "slow")
	logger.Log(plain("ui"), "suppressed, no entry")

	if len(got) != 1 {
		t.Fatalf("expected 1 observer entry, got %d", len(got))
	}
	e := got[0]
	if !e.At.Equal(ft) {
		t.Errorf("entry ts = %s, want %s", e.At, ft)
	}
	if e.Level != LevelWarn || e.Label != "net" {
		t.Errorf("entry mismatch: %+v", e)
	}
	if len(e.Tags) != 2 || e.Tags[0] != "net" || e.Tags[1] != "http" {
		t.Errorf("entry tags = %v", e.Tags)
	}
}

func TestGlobalFacade(t *testing.T) {
	sink := &stubSink{}
	UseSink(sink)
	defer SetGlobal(Default())

	if err := SetPattern("api"); err != nil {
		t.Fatalf("set pattern: %v", err)
	}
	Log(plain("api"), "kept")
	Warn(plain("db"), "suppressed")
	ClearPattern()
	Error(plain("db"), "kept again")

	writes := sink.snapshot()
	if len(writes) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(writes))
	}
	if writes[0].Level != LevelInfo || writes[1].Level != LevelError {
		t.Errorf("levels = %v, %v", writes[0].Level, writes[1].Level)
	}
}
