// Package taxonomy holds the fixed category table that destination paths are
// classified against, and composes it under a concrete base directory.
package taxonomy

import (
	"fmt"
	"strings"
)

// Kind is the top-level folder a category lives under.
type Kind int

const (
	Unknown Kind = iota
	Organized
	Cleanup
)

// String returns the folder name for the kind ("Organized", "Cleanup").
func (k Kind) String() string {
	switch k {
	case Organized:
		return "Organized"
	case Cleanup:
		return "Cleanup"
	default:
		return "Unknown"
	}
}

// MarshalText lets kinds appear by name in JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name, ignoring case.
func (k *Kind) UnmarshalText(text []byte) error {
	for _, candidate := range []Kind{Unknown, Organized, Cleanup} {
		if strings.EqualFold(string(text), candidate.String()) {
			*k = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", text)
}

// Entry is one canonical category. Rel is always of the form "Seg/Seg/":
// no leading slash and exactly one trailing slash.
type Entry struct {
	Rel  string `json:"rel"`
	Kind Kind   `json:"kind"`
}

// Order matters: classification walks the table front to back and takes the
// first hit, so an entry must come before any entry whose key it contains.
var defaultTable = []Entry{
	{"Documents/PDF/", Organized},
	{"Documents/Word/", Organized},
	{"Documents/Spreadsheets/", Organized},
	{"Documents/Presentations/", Organized},
	{"Documents/Text/", Organized},
	{"Documents/Ebooks/", Organized},
	{"Media/Images/Photos/", Organized},
	{"Media/Images/Screenshots/", Organized},
	{"Media/Images/Graphics/", Organized},
	{"Media/Music/", Organized},
	{"Media/Videos/", Organized},
	{"Media/Podcasts/", Organized},
	{"Development/Code/{extension}/", Organized},
	{"Development/Projects/", Organized},
	{"Development/Databases/", Organized},
	{"Archives/Compressed/", Organized},
	{"Archives/DiskImages/", Organized},
	{"Applications/Installers/", Organized},
	{"Applications/Packages/", Organized},
	{"Fonts/", Organized},
	{"System/Config/", Organized},
	{"Other/{extension}/", Organized},

	{"Duplicates/Music/", Cleanup},
	{"Duplicates/Images/", Cleanup},
	{"Duplicates/Documents/", Cleanup},
	{"Temporary/", Cleanup},
	{"Logs/", Cleanup},
	{"EmptyFiles/", Cleanup},
	{"Unknown/{extension}/", Cleanup},
}

// Default returns a copy of the built-in category table.
func Default() []Entry {
	out := make([]Entry, len(defaultTable))
	copy(out, defaultTable)
	return out
}

// IsPlaceholder reports whether a path segment carries an unresolved
// template token such as "{extension}".
func IsPlaceholder(segment string) bool {
	open := strings.IndexByte(segment, '{')
	return open >= 0 && strings.IndexByte(segment[open:], '}') > 0
}

// HasPlaceholder reports whether any part of p carries a template token.
func HasPlaceholder(p string) bool {
	return IsPlaceholder(p)
}

// Key returns the entry's relative path with surrounding slashes trimmed.
func (e Entry) Key() string {
	return strings.Trim(e.Rel, "/")
}

// Segments returns the non-empty segments of the relative path.
func (e Entry) Segments() []string {
	return Split(e.Rel)
}

// Literal reports whether the entry contains no placeholder segment.
func (e Entry) Literal() bool {
	return !HasPlaceholder(e.Rel)
}

// Prefix returns the category name portion of the entry: every segment
// before the first placeholder segment, joined with "/".
func (e Entry) Prefix() string {
	segs := e.Segments()
	for i, seg := range segs {
		if IsPlaceholder(seg) {
			return strings.Join(segs[:i], "/")
		}
	}
	return strings.Join(segs, "/")
}

// Split breaks a slash-separated path into its non-empty segments.
func Split(p string) []string {
	parts := strings.Split(p, "/")
	out := parts[:0]
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
