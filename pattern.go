package taglog

import (
	"fmt"
	"strings"
)

// Pattern is a compiled boolean tag expression. It is immutable after
// construction, so a single Pattern may be shared freely across
// goroutines and swapped atomically into a Logger.
type Pattern struct {
	source string
	root   node
}

// Compile parses a tag expression and returns the compiled Pattern.
// Compilation either succeeds fully or returns an error wrapping
// ErrMalformedPattern — never a partially usable predicate.
func Compile(expr string) (*Pattern, error) {
	src := strings.TrimSpace(expr)
	if src == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrMalformedPattern)
	}
	root, err := parsePattern(src)
	if err != nil {
		return nil, err
	}
	return &Pattern{source: src, root: root}, nil
}

// String returns the trimmed source expression the Pattern was compiled from.
func (p *Pattern) String() string { return p.source }

// Match reports whether the given tag set satisfies the pattern.
// Tags are matched case-sensitively; order and duplicates are irrelevant.
func (p *Pattern) Match(tags []string) bool {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return eval(p.root, set)
}

// matchOne reports whether a singleton set of just this tag satisfies the
// pattern. Used for display-label computation.
func (p *Pattern) matchOne(tag string) bool {
	return eval(p.root, map[string]struct{}{tag: {}})
}

// eval evaluates the AST against a tag set by structural recursion.
func eval(n node, set map[string]struct{}) bool {
	switch e := n.(type) {
	case tagExpr:
		_, ok := set[e.name]
		return ok
	case notExpr:
		return !eval(e.expr, set)
	case binaryExpr:
		switch e.op {
		case opAnd:
			return eval(e.left, set) && eval(e.right, set)
		case opOr:
			return eval(e.left, set) || eval(e.right, set)
		case opAndNot:
			return eval(e.left, set) && !eval(e.right, set)
		}
	}
	return false
}
