package udfc

import (
	"fmt"
	"strings"
)

// FontFormat selects which engine font an archive replaces.
type FontFormat int

const (
	// ConsoleFont is the console and chat font.
	ConsoleFont FontFormat = iota + 1

	// SmallFont is the default small font used by menus and messages.
	SmallFont

	// BigFont is the large title font.
	BigFont

	// BigUpper is the upper case only big font.
	BigUpper
)

var fontFormats = []struct {
	f       FontFormat
	name    string
	dirName string
	short   string
}{
	{ConsoleFont, "Console Font", "consolefont", "console"},
	{SmallFont, "Small Font", "defsmallfont", "small"},
	{BigFont, "Big Font", "bigfont", "big"},
	{BigUpper, "Big Upper", "bigupper", "bigupper"},
}

// FontFormats returns the supported formats.
func FontFormats() []FontFormat {
	out := make([]FontFormat, len(fontFormats))
	for i, e := range fontFormats {
		out[i] = e.f
	}
	return out
}

// DirName returns the archive directory of the format.
// Unknown formats return a *ConfigError.
func (f FontFormat) DirName() (string, error) {
	for _, e := range fontFormats {
		if e.f == f {
			return e.dirName, nil
		}
	}
	return "", &ConfigError{Field: "font format", Value: int(f), Reason: "unknown format"}
}

// String returns the display name of the format.
func (f FontFormat) String() string {
	for _, e := range fontFormats {
		if e.f == f {
			return e.name
		}
	}
	return fmt.Sprintf("FontFormat(%d)", int(f))
}

// ParseFontFormat accepts the display name ("Big Font"), the directory
// name ("bigfont") or the short name ("big"), case-insensitively.
func ParseFontFormat(s string) (FontFormat, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	for _, e := range fontFormats {
		if key == e.dirName || key == e.short || key == strings.ToLower(strings.ReplaceAll(e.name, " ", "")) {
			return e.f, nil
		}
	}
	return 0, &ConfigError{Field: "font format", Value: s, Reason: "want console, small, big or bigupper"}
}
