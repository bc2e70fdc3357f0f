package ui

import (
	"os"
	"strings"

	"github.com/fatih/color"

	"form-palette/internal/palette"
)

// Theme provides styled color functions for consistent CLI output
// Respects NO_COLOR and FORCE_COLOR environment variables

var (
	// Check color support
	noColor    = os.Getenv("NO_COLOR") != ""
	forceColor = isForceColor()
)

func init() {
	if forceColor && !noColor {
		color.NoColor = false
	}
}

func isForceColor() bool {
	fc := strings.TrimSpace(os.Getenv("FORCE_COLOR"))
	return fc != "" && fc != "0"
}

// IsRich returns true if the terminal supports rich output (colors)
func IsRich() bool {
	if noColor && !forceColor {
		return false
	}
	return !color.NoColor
}

// SetRich overrides terminal detection, mainly for --no-color and tests
func SetRich(rich bool) {
	color.NoColor = !rich
	noColor = !rich
	forceColor = rich
}

// rgb builds a truecolor foreground from a palette color
func rgb(c palette.Color) *color.Color {
	return color.RGB(int(c.R), int(c.G), int(c.B))
}

// Paint renders text in the given palette color
func Paint(c palette.Color, format string, a ...interface{}) string {
	return rgb(c).Sprintf(format, a...)
}

// Swatch returns a block of width cells filled with c.
// Without color support the block is drawn with a shade glyph instead.
func Swatch(c palette.Color, width int) string {
	if width <= 0 {
		return ""
	}
	if !IsRich() {
		return PlainSwatch(c, width)
	}
	return color.BgRGB(int(c.R), int(c.G), int(c.B)).Sprint(spaces(width))
}

// PlainSwatch draws a swatch without escape codes, for terminals without
// color and for non-terminal output
func PlainSwatch(_ palette.Color, width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("▓", width)
}

// Accent returns primary brand-colored text
func Accent(format string, a ...interface{}) string {
	return rgb(CLI_PALETTE.Accent).Sprintf(format, a...)
}

// AccentDim returns muted accent text
func AccentDim(format string, a ...interface{}) string {
	return rgb(CLI_PALETTE.AccentDim).Sprintf(format, a...)
}

// Info returns informational styled text
func Info(format string, a ...interface{}) string {
	return rgb(CLI_PALETTE.Info).Sprintf(format, a...)
}

// Success returns success-styled text
func Success(format string, a ...interface{}) string {
	return color.New(color.FgGreen).Sprintf(format, a...)
}

// Warn returns warning-styled text
func Warn(format string, a ...interface{}) string {
	return color.New(color.FgYellow).Sprintf(format, a...)
}

// Error returns error-styled text
func Error(format string, a ...interface{}) string {
	return color.New(color.FgRed).Sprintf(format, a...)
}

// Muted returns secondary/hint text
func Muted(format string, a ...interface{}) string {
	return rgb(CLI_PALETTE.Muted).Sprintf(format, a...)
}

// Heading returns bold accent text for section headers
func Heading(format string, a ...interface{}) string {
	return rgb(CLI_PALETTE.Accent).Add(color.Bold).Sprintf(format, a...)
}

// Subtle returns subtle white text
func Subtle(format string, a ...interface{}) string {
	return color.New(color.FgWhite).Sprintf(format, a...)
}
