package zerolog

import (
	"bytes"
	"strings"
	"testing"

	zl "github.com/rs/zerolog"
	"github.com/trickstertwo/taglog"
)

func TestSinkWritesThroughZerolog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := taglog.NewBuilder().
		WithSink(New(zl.New(&buf))).
		WithPattern("net-verbose").
		Build()
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}

	logger.Warn(taglog.Settings{Tags: []string{"net"}}, "upstream slow")
	logger.Log(taglog.Settings{Tags: []string{"verbose", "net"}}, "suppressed")

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], `"level":"warn"`) {
		t.Errorf("missing warn level: %q", lines[0])
	}
	if !strings.Contains(lines[0], `"message":"net upstream slow"`) {
		t.Errorf("missing rendered message: %q", lines[0])
	}
	if !strings.Contains(lines[0], `"ts":"`) {
		t.Errorf("missing ts field: %q", lines[0])
	}
}

func TestMapLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   taglog.Level
		want zl.Level
	}{
		{taglog.LevelInfo, zl.InfoLevel},
		{taglog.LevelWarn, zl.WarnLevel},
		{taglog.LevelError, zl.ErrorLevel},
	}
	for _, tt := range tests {
		if got := mapLevel(tt.in); got != tt.want {
			t.Errorf("mapLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUseInstallsGlobal(t *testing.T) {
	var buf bytes.Buffer
	l, err := Use(Config{Writer: &buf, Pattern: "api"})
	if err != nil {
		t.Fatalf("use: %v", err)
	}
	defer taglog.SetGlobal(taglog.Default())

	if l != taglog.L() {
		t.Fatal("Use did not install the global logger")
	}

	if _, err := Use(Config{Writer: &buf, Pattern: "(("}); err == nil {
		t.Fatal("expected pattern compilation error")
	}
}
