// Package palette holds the application's fixed set of named UI colors.
//
// The set is closed. Every accessor returns the same value on every call and
// is safe for concurrent use; the backing table is never written after
// package initialization.
package palette

import "fmt"

var table = [nameCount]Color{
	NameDefaultAppleGray:  systemPlaceholderGray,
	NameDefaultAppleBlue:  systemTintBlue,
	NamePlaceholderPurple: {R: 0x99, G: 0x33, B: 0xcc, A: 0xff}, // 0.6, 0.2, 0.8
	NameBorderPurple:      {R: 0x66, G: 0x33, B: 0x99, A: 0xff},
	NameDeepPinkPurple:    {R: 0xb0, G: 0x1e, B: 0x8a, A: 0xff},
	NameShadowPurple:      {R: 0x33, G: 0x00, B: 0x4d, A: 0x80},
}

// Entry pairs a palette name with its color
type Entry struct {
	Name  Name
	Color Color
}

// DefaultAppleGray is the platform placeholder gray, for hint text
func DefaultAppleGray() Color { return table[NameDefaultAppleGray] }

// DefaultAppleBlue is the platform tint blue, for interactive controls
func DefaultAppleBlue() Color { return table[NameDefaultAppleBlue] }

// PlaceholderPurple colors placeholder text in themed form fields
func PlaceholderPurple() Color { return table[NamePlaceholderPurple] }

// BorderPurple outlines themed form fields
func BorderPurple() Color { return table[NameBorderPurple] }

// DeepPinkPurple is the strong accent, e.g. for focused or selected fields
func DeepPinkPurple() Color { return table[NameDeepPinkPurple] }

// ShadowPurple is translucent (alpha ~0.5) for use as a drop shadow
func ShadowPurple() Color { return table[NameShadowPurple] }

// Lookup returns the color for n. ok is false for names outside the palette.
func Lookup(n Name) (c Color, ok bool) {
	if !n.Valid() {
		return Color{}, false
	}
	return table[n], true
}

// MustLookup is Lookup for names known at compile time
func MustLookup(n Name) Color {
	c, ok := Lookup(n)
	if !ok {
		panic(fmt.Sprintf("palette: %v is not a palette name", n))
	}
	return c
}

// All returns a fresh copy of every entry in declaration order
func All() []Entry {
	entries := make([]Entry, 0, nameCount)
	for _, n := range Names() {
		entries = append(entries, Entry{Name: n, Color: table[n]})
	}
	return entries
}
