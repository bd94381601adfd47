// Package classify maps arbitrary destination strings onto the category
// taxonomy and rewrites them under a new base directory.
//
// Classification runs an ordered list of tiers; the first tier that yields a
// result wins. Every input produces some path under the base, so a bulk
// rewrite never aborts on an unrecognised destination; it only degrades to a
// more general category.
package classify

import (
	"fmt"
	"strings"

	"github.com/aidanlsb/orgmap/internal/taxonomy"
)

// Tier identifies which stage of classification produced a result.
type Tier int

const (
	TierNone Tier = iota
	TierPlaceholder
	TierExact
	TierComponent
	TierFallback
)

func (t Tier) String() string {
	switch t {
	case TierPlaceholder:
		return "placeholder"
	case TierExact:
		return "exact"
	case TierComponent:
		return "component"
	case TierFallback:
		return "fallback"
	default:
		return "none"
	}
}

// MarshalText lets tiers appear by name in JSON output.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a tier name as written by MarshalText.
func (t *Tier) UnmarshalText(text []byte) error {
	for candidate := TierNone; candidate <= TierFallback; candidate++ {
		if string(text) == candidate.String() {
			*t = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown tier %q", text)
}

// Result is the outcome of classifying one destination string.
type Result struct {
	// Matched is true when a taxonomy entry was selected.
	Matched bool          `json:"matched"`
	Path    string        `json:"path"`
	Kind    taxonomy.Kind `json:"kind"`
	Tier    Tier          `json:"tier"`
	// Rel is the matched entry's relative path, empty for fallbacks.
	Rel string `json:"rel,omitempty"`
}

// input carries the derived views of one path so matchers stay cheap.
type input struct {
	old    string
	lower  string
	prefix string // text before the first placeholder segment
	base   string
	t      *taxonomy.Resolved
}

// matcher is a pure predicate over the input path and one entry.
type matcher func(in *input, e taxonomy.ResolvedEntry) bool

// picker selects an entry using a matcher.
type picker func(in *input, match matcher) (taxonomy.ResolvedEntry, bool)

// resolver turns the picked entry (if any) into a result. It returns false
// to pass the input on to the next tier.
type resolver func(in *input, e taxonomy.ResolvedEntry, found bool) (Result, bool)

type tier struct {
	name    Tier
	applies func(in *input) bool
	match   matcher
	pick    picker
	resolve resolver
}

var tiers = []tier{
	{TierPlaceholder, hasPlaceholder, prefixContained, longestPrefix, resolvePlaceholder},
	{TierExact, always, keyContained, firstHit, resolveEntry(TierExact)},
	{TierComponent, always, segmentContained, firstHit, resolveEntry(TierComponent)},
	{TierFallback, always, nil, nil, resolveFallback},
}

// Path classifies oldPath against t and returns the rewritten destination
// under base. It never fails.
//
// A path that already lives under base is matched on the text after base
// only, so words inside the base directory itself ("~/Documents",
// "/srv/logs") never pick a category.
func Path(oldPath, base string, t *taxonomy.Resolved) Result {
	base = taxonomy.StripBase(base)
	if t == nil {
		t = taxonomy.Compose(base, nil)
	}
	text := oldPath
	if rel, ok := relativeToBase(oldPath, base); ok {
		text = rel
	}
	in := &input{
		old:    text,
		lower:  strings.ToLower(text),
		prefix: placeholderPrefix(text),
		base:   base,
		t:      t,
	}
	for _, tr := range tiers {
		if !tr.applies(in) {
			continue
		}
		var hit taxonomy.ResolvedEntry
		var found bool
		if tr.pick != nil {
			hit, found = tr.pick(in, tr.match)
		}
		if res, ok := tr.resolve(in, hit, found); ok {
			return res
		}
	}
	// resolveFallback always answers; this is unreachable.
	return Result{Path: in.base + "/" + taxonomy.Organized.String() + "/Other/", Kind: taxonomy.Organized, Tier: TierFallback}
}

// relativeToBase returns the part of p after base, keeping its leading
// "/", when p lives under base.
func relativeToBase(p, base string) (string, bool) {
	if base == "" || !strings.HasPrefix(p, base+"/") {
		return "", false
	}
	return p[len(base):], true
}

// Rewrite is Path without the classification details.
func Rewrite(oldPath, base string, t *taxonomy.Resolved) string {
	return Path(oldPath, base, t).Path
}

func always(*input) bool { return true }

func hasPlaceholder(in *input) bool { return taxonomy.HasPlaceholder(in.old) }

func firstHit(in *input, match matcher) (taxonomy.ResolvedEntry, bool) {
	for _, e := range in.t.Entries {
		if match(in, e) {
			return e, true
		}
	}
	return taxonomy.ResolvedEntry{}, false
}

// longestPrefix keeps the first entry among those with the longest prefix.
func longestPrefix(in *input, match matcher) (taxonomy.ResolvedEntry, bool) {
	var best taxonomy.ResolvedEntry
	bestLen := -1
	for _, e := range in.t.Entries {
		if !match(in, e) {
			continue
		}
		if n := len(e.Prefix()); n > bestLen {
			best, bestLen = e, n
		}
	}
	return best, bestLen >= 0
}

func resolveEntry(name Tier) resolver {
	return func(_ *input, e taxonomy.ResolvedEntry, found bool) (Result, bool) {
		if !found {
			return Result{}, false
		}
		return entryResult(name, e, e.Abs), true
	}
}

func entryResult(name Tier, e taxonomy.ResolvedEntry, p string) Result {
	return Result{Matched: true, Path: p, Kind: e.Kind, Tier: name, Rel: e.Rel}
}

// rebuild joins segs under base, keeping a trailing slash when the original
// path had one.
func rebuild(base string, segs []string, trailingSlash bool) string {
	out := base + "/" + strings.Join(segs, "/")
	if trailingSlash && len(segs) > 0 {
		out += "/"
	}
	return out
}

func kindOfSegment(seg string) taxonomy.Kind {
	if strings.EqualFold(seg, taxonomy.Cleanup.String()) {
		return taxonomy.Cleanup
	}
	return taxonomy.Organized
}
