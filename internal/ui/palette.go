package ui

import "form-palette/internal/palette"

// CLI_PALETTE maps terminal roles onto the application palette
var CLI_PALETTE = struct {
	// Primary accent colors
	Accent    palette.Color // border purple - headings, badges
	AccentDim palette.Color // deep pink purple - taglines
	Info      palette.Color // default tint blue

	// Neutral
	Muted palette.Color // placeholder gray - secondary text, hints, borders
}{
	Accent:    palette.BorderPurple(),
	AccentDim: palette.DeepPinkPurple(),
	Info:      palette.DefaultAppleBlue(),
	Muted:     palette.DefaultAppleGray(),
}
