package taglog

import (
	"sort"
	"strings"
)

// SourcePosition selects where the call-site annotation is placed in the
// rendered output.
type SourcePosition uint8

const (
	SourceEnd SourcePosition = iota // default
	SourceStart
)

// Settings is the per-call record driving one log emission. It is
// constructed fresh for every call and discarded after the call returns;
// the Logger never stores it.
//
// Tags carries the call's tag set; every element may itself be a
// pipe-delimited list ("net|http"). Color1 styles the display label,
// Color2 styles the message parts. When either color is empty the call is
// rendered unstyled, with each part passed individually to the sink.
type Settings struct {
	Tags           []string
	Color1         string
	Color2         string
	IncludeSource  bool
	SourceDepth    int
	SourcePosition SourcePosition
}

// Tags constructs Settings with the default colors. Each argument may be a
// single tag or a pipe-delimited list.
func Tags(tags ...string) Settings {
	return Settings{
		Tags:   normalizeTags(tags),
		Color1: DefaultColor,
		Color2: DefaultColor,
	}
}

// WithColors returns a copy with the label and message colors replaced.
func (s Settings) WithColors(label, message string) Settings {
	s.Color1 = label
	s.Color2 = message
	return s
}

// WithSource returns a copy that annotates the call site. depth selects
// the frame ordinal counting from the first frame outside this package;
// pos places the annotation at the start or end of the rendered line.
func (s Settings) WithSource(depth int, pos SourcePosition) Settings {
	s.IncludeSource = true
	s.SourceDepth = depth
	s.SourcePosition = pos
	return s
}

// CoerceSettings up-converts legacy settings shapes into the typed record.
// Recognized shapes: Settings, *Settings, a pipe-delimited string, a slice
// of tag names, and set-shaped maps. Any other value yields an untagged
// record so that a malformed caller loses filtering for that call but
// never crashes the logger.
func CoerceSettings(v any) Settings {
	switch t := v.(type) {
	case Settings:
		t.Tags = normalizeTags(t.Tags)
		return t
	case *Settings:
		if t == nil {
			return untagged()
		}
		c := *t
		c.Tags = normalizeTags(c.Tags)
		return c
	case string:
		return Tags(t)
	case []string:
		return Tags(t...)
	case map[string]struct{}:
		return Tags(sortedKeys(t)...)
	case map[string]bool:
		keys := make([]string, 0, len(t))
		for k, on := range t {
			if on {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		return Tags(keys...)
	default:
		return untagged()
	}
}

func untagged() Settings {
	return Settings{Color1: DefaultColor, Color2: DefaultColor}
}

// sortedKeys returns map keys in lexical order. Map-shaped tag sets carry
// no insertion order, so sorting keeps the display label deterministic.
func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// normalizeTags splits pipe-delimited entries, trims each piece, discards
// empties, and dedupes while preserving first-seen order.
func normalizeTags(values []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		for _, piece := range strings.Split(v, "|") {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			if _, dup := seen[piece]; dup {
				continue
			}
			seen[piece] = struct{}{}
			out = append(out, piece)
		}
	}
	return out
}
