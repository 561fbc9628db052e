package style

import (
	"io"

	"golang.org/x/term"
)

// ANSI color codes
const (
	ColorCodeReset   = "\033[0m"
	ColorCodeBold    = "\033[1m"
	ColorCodeRed     = "\033[31m"
	ColorCodeGreen   = "\033[32m"
	ColorCodeYellow  = "\033[33m"
	ColorCodeCyan    = "\033[36m"
	ColorCodeBgRed   = "\033[41m"
	ColorCodeBgGreen = "\033[42m"
)

// Color adds color to a string
func Color(color string, text string) string {
	return color + text + ColorCodeReset
}

// ColorBold adds color and bold to a string
func ColorBold(color string, text string) string {
	return color + ColorCodeBold + text + ColorCodeReset
}

// Enabled reports whether w is a terminal and colour has not been disabled.
func Enabled(w io.Writer, disabled bool) bool {
	if disabled {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// Painter applies colors only when enabled, so callers can format output
// the same way for terminals and pipes.
type Painter struct {
	enabled bool
}

// NewPainter creates a painter.
func NewPainter(enabled bool) Painter {
	return Painter{enabled: enabled}
}

// Color colors text when the painter is enabled.
func (p Painter) Color(color, text string) string {
	if !p.enabled {
		return text
	}
	return Color(color, text)
}

// Bold colors and emboldens text when the painter is enabled.
func (p Painter) Bold(color, text string) string {
	if !p.enabled {
		return text
	}
	return ColorBold(color, text)
}

func (p Painter) Red(text string) string    { return p.Color(ColorCodeRed, text) }
func (p Painter) Green(text string) string  { return p.Color(ColorCodeGreen, text) }
func (p Painter) Yellow(text string) string { return p.Color(ColorCodeYellow, text) }
func (p Painter) Cyan(text string) string   { return p.Color(ColorCodeCyan, text) }

// Removed marks deleted text; without color it is wrapped in [-...-].
func (p Painter) Removed(text string) string {
	if !p.enabled {
		return "[-" + text + "-]"
	}
	return Color(ColorCodeBgRed, text)
}

// Added marks inserted text; without color it is wrapped in {+...+}.
func (p Painter) Added(text string) string {
	if !p.enabled {
		return "{+" + text + "+}"
	}
	return Color(ColorCodeBgGreen, text)
}
