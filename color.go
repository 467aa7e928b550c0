package taglog

import (
	"strings"

	"github.com/fatih/color"
)

// DefaultColor is the neutral hue used when a color name is missing or
// unrecognized.
const DefaultColor = "white"

// colorAttrs maps logical color names to terminal attributes. Lookup is
// case-insensitive and a small set of synonyms maps to canonical hues.
var colorAttrs = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
	"gray":    color.FgHiBlack,

	// synonyms
	"grey":    color.FgHiBlack,
	"purple":  color.FgMagenta,
	"violet":  color.FgMagenta,
	"aqua":    color.FgCyan,
	"teal":    color.FgCyan,
	"orange":  color.FgYellow,
	"gold":    color.FgYellow,
	"crimson": color.FgRed,
	"scarlet": color.FgRed,
	"lime":    color.FgHiGreen,
	"navy":    color.FgBlue,
	"azure":   color.FgHiBlue,
	"pink":    color.FgHiMagenta,
	"silver":  color.FgHiWhite,
}

// resolveColor maps a logical color name to a renderer. Unrecognized names
// resolve to the neutral default rather than failing; whether escape codes
// are actually emitted follows the fatih/color global NoColor policy.
func resolveColor(name string) *color.Color {
	attr, ok := colorAttrs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		attr = colorAttrs[DefaultColor]
	}
	return color.New(attr)
}
