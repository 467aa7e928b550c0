package taglog

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// enginePath is the import path of this package. Frames belonging to the
// emission routine itself are stripped before selecting the call-site
// frame; everything else, including sink adapters in subpackages, counts
// as an external caller.
const enginePath = "github.com/trickstertwo/taglog"

// captureCallSite resolves the annotated call site for an emission.
// It walks the current stack, skips the engine's own frames, and selects
// the frame at ordinal depth counting from the first external frame. When
// the requested depth is unavailable it falls back to the first external
// frame, then to the first frame of any kind. It never panics; ok is
// false only when no usable frame exists at all.
//
// Go frames carry file and line but no column, so the annotation renders
// as "(source: path:line)".
func captureCallSite(depth int) (annotation string, ok bool) {
	defer func() {
		if recover() != nil {
			annotation, ok = "", false
		}
	}()

	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return "", false
	}

	var stack []runtime.Frame
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if f.PC != 0 {
			stack = append(stack, f)
		}
		if !more {
			break
		}
	}
	if len(stack) == 0 {
		return "", false
	}

	first := -1
	for i := range stack {
		if !isEmitterFrame(stack[i].Function) {
			first = i
			break
		}
	}

	var idx int
	switch {
	case first >= 0 && depth >= 0 && first+depth < len(stack):
		idx = first + depth
	case first >= 0:
		idx = first
	default:
		idx = 0
	}

	f := stack[idx]
	if f.File == "" {
		return "", false
	}
	return fmt.Sprintf("(source: %s:%d)", rebasePath(f.File), f.Line), true
}

// isEmitterFrame reports whether a function is part of the engine's own
// emission path. Matching exact symbols rather than the whole package
// keeps callers that merely live alongside the engine visible.
func isEmitterFrame(fn string) bool {
	if fn == "" {
		return true
	}
	rest, found := strings.CutPrefix(fn, enginePath+".")
	if !found {
		return false
	}
	switch rest {
	case "Log", "Warn", "Error", "captureCallSite",
		"(*Logger).Log", "(*Logger).Warn", "(*Logger).Error", "(*Logger).emit":
		return true
	}
	return false
}

// rebasePath renders the frame's file path relative to the working
// directory when the file lies under it, otherwise relative to a /src/
// marker, otherwise absolute.
func rebasePath(file string) string {
	if cwd, err := os.Getwd(); err == nil && cwd != "" {
		if rel, err := filepath.Rel(cwd, file); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
	}
	if i := strings.LastIndex(file, "/src/"); i >= 0 {
		return file[i+len("/src/"):]
	}
	return file
}
