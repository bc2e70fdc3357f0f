package ui

import (
	"strings"
)

// Align type for table column alignment
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// TableColumn defines a column in a table
type TableColumn struct {
	Key      string
	Header   string
	Align    Align
	MinWidth int
}

// TableBorder style for tables
type TableBorder int

const (
	BorderUnicode TableBorder = iota
	BorderASCII
	BorderNone
)

// RenderTableOptions configures table rendering
type RenderTableOptions struct {
	Columns []TableColumn
	Rows    []map[string]string
	Border  TableBorder
	Padding int
}

// Box drawing characters
type boxChars struct {
	tl, tr, bl, br  string // corners
	h, v            string // horizontal, vertical
	t, ml, m, mr, b string // tees and crosses
}

var (
	unicodeBox = boxChars{
		tl: "╭", tr: "╮", bl: "╰", br: "╯",
		h: "─", v: "│",
		t: "┬", ml: "├", m: "┼", mr: "┤", b: "┴",
	}
	asciiBox = boxChars{
		tl: "+", tr: "+", bl: "+", br: "+",
		h: "-", v: "|",
		t: "+", ml: "+", m: "+", mr: "+", b: "+",
	}
	noBox = boxChars{v: " "}
)

// columnWidths measures every column including padding on both sides
func columnWidths(opts RenderTableOptions) []int {
	widths := make([]int, len(opts.Columns))
	for i, col := range opts.Columns {
		w := VisibleWidth(col.Header)
		for _, row := range opts.Rows {
			if cw := VisibleWidth(row[col.Key]); cw > w {
				w = cw
			}
		}
		w += opts.Padding * 2
		if w < col.MinWidth {
			w = col.MinWidth
		}
		widths[i] = w
	}
	return widths
}

func alignCell(text string, width int, align Align) string {
	pad := width - VisibleWidth(text)
	if pad <= 0 {
		return text
	}
	switch align {
	case AlignRight:
		return spaces(pad) + text
	case AlignCenter:
		left := pad / 2
		return spaces(left) + text + spaces(pad-left)
	default:
		return text + spaces(pad)
	}
}

// RenderTable renders a formatted table. Borders are drawn muted and the
// header row in the heading style; cell content is written as given, so
// pre-colored cells (swatches) keep their escape codes.
func RenderTable(opts RenderTableOptions) string {
	if opts.Padding == 0 {
		opts.Padding = 1
	}

	box := unicodeBox
	switch opts.Border {
	case BorderASCII:
		box = asciiBox
	case BorderNone:
		box = noBox
	}
	widths := columnWidths(opts)
	pad := spaces(opts.Padding)

	rule := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat(box.h, w)
		}
		return Muted("%s", left+strings.Join(parts, mid)+right)
	}

	row := func(values []string, style func(string, ...interface{}) string) string {
		sep := Muted("%s", box.v)
		parts := make([]string, len(opts.Columns))
		for i, col := range opts.Columns {
			v := values[i]
			if style != nil {
				v = style("%s", v)
			}
			parts[i] = pad + alignCell(v, widths[i]-opts.Padding*2, col.Align) + pad
		}
		return sep + strings.Join(parts, sep) + sep
	}

	var lines []string
	if opts.Border != BorderNone {
		lines = append(lines, rule(box.tl, box.t, box.tr))
	}

	headers := make([]string, len(opts.Columns))
	for i, col := range opts.Columns {
		headers[i] = col.Header
	}
	lines = append(lines, row(headers, Heading))

	if opts.Border != BorderNone {
		lines = append(lines, rule(box.ml, box.m, box.mr))
	}

	for _, r := range opts.Rows {
		values := make([]string, len(opts.Columns))
		for i, col := range opts.Columns {
			values[i] = r[col.Key]
		}
		lines = append(lines, row(values, nil))
	}

	if opts.Border != BorderNone {
		lines = append(lines, rule(box.bl, box.b, box.br))
	}

	return strings.Join(lines, "\n") + "\n"
}
