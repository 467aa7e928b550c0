package taglog

import (
	"fmt"
	"strings"
)

// render turns a label, optional call-site annotation, and message values
// into sink parts. With both colors present it produces one styled string:
// label in Color1, each message value in Color2, annotation at its
// configured position. With either color absent it produces unstyled
// individual parts instead.
func render(label, site string, s Settings, args []any) []string {
	if s.Color1 != "" && s.Color2 != "" {
		return []string{renderStyled(label, site, s, args)}
	}

	parts := make([]string, 0, len(args)+2)
	if site != "" && s.SourcePosition == SourceStart {
		parts = append(parts, site)
	}
	parts = append(parts, label)
	for _, a := range args {
		parts = append(parts, fmt.Sprint(a))
	}
	if site != "" && s.SourcePosition == SourceEnd {
		parts = append(parts, site)
	}
	return parts
}

func renderStyled(label, site string, s Settings, args []any) string {
	labelColor := resolveColor(s.Color1)
	messageColor := resolveColor(s.Color2)

	var b strings.Builder
	if site != "" && s.SourcePosition == SourceStart {
		b.WriteString(site)
		b.WriteByte(' ')
	}
	b.WriteString(labelColor.Sprint(label))
	for _, a := range args {
		b.WriteByte(' ')
		b.WriteString(messageColor.Sprint(a))
	}
	if site != "" && s.SourcePosition == SourceEnd {
		b.WriteByte(' ')
		b.WriteString(site)
	}
	return b.String()
}
