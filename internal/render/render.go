// Package render encodes palette entries for terminals, stylesheets and
// machine consumers.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"form-palette/internal/palette"
	"form-palette/internal/ui"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects an encoding
type Format string

const (
	FormatText   Format = "text"
	FormatJSON   Format = "json"
	FormatCSS    Format = "css"
	FormatHex    Format = "hex"
	FormatSwatch Format = "swatch"
)

// Formats lists every supported format
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatCSS, FormatHex, FormatSwatch}
}

// ParseFormat resolves a case-insensitive format name
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the HTTP media type for f
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatCSS:
		return "text/css; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// swatchFunc draws a color block of the given width
type swatchFunc func(palette.Color, int) string

// Write encodes entries to w in format f. The text and swatch formats follow
// the terminal's color support.
func Write(w io.Writer, f Format, entries []palette.Entry) error {
	return write(w, f, entries, ui.Swatch, false)
}

// WritePlain is Write for non-terminal sinks such as HTTP bodies and files:
// the output never contains escape codes.
func WritePlain(w io.Writer, f Format, entries []palette.Entry) error {
	return write(w, f, entries, ui.PlainSwatch, true)
}

func write(w io.Writer, f Format, entries []palette.Entry, swatch swatchFunc, plain bool) error {
	var text string
	switch f {
	case FormatJSON:
		return WriteJSON(w, entries)
	case FormatCSS:
		text = CSS(entries)
	case FormatHex:
		text = Hex(entries)
	case FormatText:
		text = table(entries, swatch)
	case FormatSwatch:
		text = swatches(entries, swatch)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	if plain {
		text = ui.StripAnsi(text)
	}
	_, err := io.WriteString(w, text)
	return err
}

// Document is the JSON shape of an exported palette
type Document struct {
	Colors []ColorDoc `json:"colors"`
}

// ColorDoc is the JSON shape of one entry
type ColorDoc struct {
	Name       string     `json:"name"`
	Accessor   string     `json:"accessor"`
	Hex        string     `json:"hex"`
	RGBA       [4]uint8   `json:"rgba"`
	Components Components `json:"components"`
	HSL        HSL        `json:"hsl"`
	CSS        string     `json:"css"`
}

// Components are normalized to [0,1]
type Components struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// HSL holds hue in degrees and saturation/lightness in [0,1]
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// NewColorDoc builds the JSON view of one entry
func NewColorDoc(e palette.Entry) ColorDoc {
	c := e.Color
	r, g, b, a := c.Components()
	h, s, l := c.HSL()
	return ColorDoc{
		Name:       e.Name.String(),
		Accessor:   e.Name.Accessor(),
		Hex:        c.HexA(),
		RGBA:       [4]uint8{c.R, c.G, c.B, c.A},
		Components: Components{R: r, G: g, B: b, A: a},
		HSL:        HSL{H: h, S: s, L: l},
		CSS:        c.CSS(),
	}
}

// WriteJSON writes an indented Document
func WriteJSON(w io.Writer, entries []palette.Entry) error {
	doc := Document{Colors: make([]ColorDoc, 0, len(entries))}
	for _, e := range entries {
		doc.Colors = append(doc.Colors, NewColorDoc(e))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// CSS renders a :root block of custom properties
func CSS(entries []palette.Entry) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "  --%s: %s;\n", e.Name, e.Color.CSS())
	}
	b.WriteString("}\n")
	return b.String()
}

// Hex renders "name #rrggbbaa" lines
func Hex(entries []palette.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s\n", e.Name, e.Color.HexA())
	}
	return b.String()
}

// Table renders a bordered table with a swatch column
func Table(entries []palette.Entry) string {
	return table(entries, ui.Swatch)
}

func table(entries []palette.Entry, swatch swatchFunc) string {
	rows := make([]map[string]string, 0, len(entries))
	for _, e := range entries {
		r, g, b, a := e.Color.Components()
		rows = append(rows, map[string]string{
			"name":   e.Name.String(),
			"hex":    e.Color.HexA(),
			"rgba":   fmt.Sprintf("%.3f %.3f %.3f %.3f", r, g, b, a),
			"swatch": swatch(e.Color, 6),
		})
	}
	return ui.RenderTable(ui.RenderTableOptions{
		Columns: []ui.TableColumn{
			{Key: "name", Header: "Name"},
			{Key: "hex", Header: "Hex"},
			{Key: "rgba", Header: "R G B A", Align: ui.AlignRight},
			{Key: "swatch", Header: "Swatch", Align: ui.AlignCenter},
		},
		Rows:   rows,
		Border: ui.BorderUnicode,
	})
}

// Swatches renders one colored block per entry
func Swatches(entries []palette.Entry) string {
	return swatches(entries, ui.Swatch)
}

func swatches(entries []palette.Entry, swatch swatchFunc) string {
	width := 0
	for _, e := range entries {
		if n := len(e.Name.String()); n > width {
			width = n
		}
	}
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			swatch(e.Color, 8),
			ui.PadRight(ui.Paint(e.Color, "%s", e.Name), width),
			ui.Muted("%s", e.Color.HexA()))
	}
	return b.String()
}
