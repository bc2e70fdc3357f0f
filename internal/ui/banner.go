package ui

import (
	"fmt"
	"os"
	"strings"

	"form-palette/internal/palette"
)

const bannerWidth = 60

var bannerEmitted = false

// FormatBanner returns the boxed header: product badge, version, tagline and
// a strip with one swatch per palette color.
func FormatBanner(version, tagline string) string {
	var strip strings.Builder
	for _, e := range palette.All() {
		strip.WriteString(Swatch(e.Color, 4))
		strip.WriteString(" ")
	}

	badge := Heading("%s", "◆ PALETTE")

	line := func(content string) string {
		return fmt.Sprintf("%s  %s%s",
			Muted(boxVertical),
			PadRight(content, bannerWidth-2),
			Muted(boxVertical))
	}

	lines := []string{
		Muted("%s", boxTopLeft+strings.Repeat(boxHorizontal, bannerWidth)+boxTopRight),
		line(badge + " " + Muted("%s", version)),
		line(AccentDim("%s", tagline)),
		line(strings.TrimRight(strip.String(), " ")),
		Muted("%s", boxBottomLeft+strings.Repeat(boxHorizontal, bannerWidth)+boxBottomRight),
	}
	return strings.Join(lines, "\n")
}

// EmitBanner displays the banner once, only on a terminal
func EmitBanner(version, tagline string) {
	if bannerEmitted || !isTTY() {
		return
	}
	emit(LevelInfo, "\n%s\n\n", FormatBanner(version, tagline))
	bannerEmitted = true
}

// isTTY checks if stdout is a terminal
func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// ResetBanner allows banner to be shown again (for testing)
func ResetBanner() {
	bannerEmitted = false
}
