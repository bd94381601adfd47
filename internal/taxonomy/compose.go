package taxonomy

import "strings"

// ResolvedEntry is a category entry joined under a concrete base directory.
type ResolvedEntry struct {
	Entry
	Abs string `json:"abs"`
}

// Resolved is the category table composed under one base directory. It is
// built fresh for each rewrite or analysis pass and never shared.
type Resolved struct {
	Base    string
	Entries []ResolvedEntry

	// anchors are lookup-only keys ("Organized", "/Cleanup/", ...). They
	// are never returned as rewrite targets.
	anchors map[string]string
	byRel   map[string]int
}

// Compose joins every entry under base as {base}/{kind}/{rel}. Trailing
// separators on base are dropped first, so composing an already-stripped
// base gives identical results.
func Compose(base string, table []Entry) *Resolved {
	base = StripBase(base)
	r := &Resolved{
		Base:    base,
		Entries: make([]ResolvedEntry, 0, len(table)),
		byRel:   make(map[string]int, len(table)),
		anchors: map[string]string{
			Organized.String():             base + "/" + Organized.String(),
			Cleanup.String():               base + "/" + Cleanup.String(),
			"/" + Organized.String() + "/": "/" + Organized.String() + "/",
			"/" + Cleanup.String() + "/":   "/" + Cleanup.String() + "/",
		},
	}
	for _, e := range table {
		if _, dup := r.byRel[e.Rel]; dup {
			continue
		}
		r.byRel[e.Rel] = len(r.Entries)
		r.Entries = append(r.Entries, ResolvedEntry{
			Entry: e,
			Abs:   base + "/" + e.Kind.String() + "/" + e.Rel,
		})
	}
	return r
}

// ComposeDefault composes the built-in table under base.
func ComposeDefault(base string) *Resolved {
	return Compose(base, defaultTable)
}

// StripBase removes trailing separators. A bare "/" becomes "".
func StripBase(base string) string {
	return strings.TrimRight(base, "/")
}

// Lookup returns the absolute path registered under key. Keys are category
// relative paths or one of the anchors.
func (r *Resolved) Lookup(key string) (string, bool) {
	if i, ok := r.byRel[key]; ok {
		return r.Entries[i].Abs, true
	}
	abs, ok := r.anchors[key]
	return abs, ok
}

// IsAnchor reports whether key is a lookup-only anchor.
func (r *Resolved) IsAnchor(key string) bool {
	_, ok := r.anchors[key]
	return ok
}

// Len returns the number of category entries, anchors excluded.
func (r *Resolved) Len() int {
	return len(r.Entries)
}
