package palette

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownName is returned when a string does not name a palette entry
var ErrUnknownName = errors.New("unknown palette color")

// Name identifies one entry of the palette. The set is closed: only the
// constants below are valid.
type Name int

const (
	NameDefaultAppleGray Name = iota
	NameDefaultAppleBlue
	NamePlaceholderPurple
	NameBorderPurple
	NameDeepPinkPurple
	NameShadowPurple

	nameCount
)

type nameInfo struct {
	ident    string // kebab-case, used in CSS, JSON and URLs
	accessor string // camelCase
}

var nameTable = [nameCount]nameInfo{
	NameDefaultAppleGray:  {"default-apple-gray", "defaultAppleGray"},
	NameDefaultAppleBlue:  {"default-apple-blue", "defaultAppleBlue"},
	NamePlaceholderPurple: {"placeholder-purple", "placeholderPurple"},
	NameBorderPurple:      {"border-purple", "borderPurple"},
	NameDeepPinkPurple:    {"deep-pink-purple", "deepPinkPurple"},
	NameShadowPurple:      {"shadow-purple", "shadowPurple"},
}

// Valid reports whether n is one of the palette names
func (n Name) Valid() bool {
	return n >= 0 && n < nameCount
}

// String returns the kebab-case identifier
func (n Name) String() string {
	if !n.Valid() {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return nameTable[n].ident
}

// Accessor returns the camelCase identifier
func (n Name) Accessor() string {
	if !n.Valid() {
		return ""
	}
	return nameTable[n].accessor
}

// Names returns every palette name in declaration order
func Names() []Name {
	names := make([]Name, 0, nameCount)
	for n := Name(0); n < nameCount; n++ {
		names = append(names, n)
	}
	return names
}

// ParseName accepts either the kebab-case or camelCase spelling,
// case-insensitively. Underscores and spaces are treated as dashes.
func ParseName(s string) (Name, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	for n := Name(0); n < nameCount; n++ {
		info := nameTable[n]
		if key == info.ident || key == strings.ToLower(info.accessor) {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownName, s)
}
