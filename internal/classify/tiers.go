package classify

import (
	"strings"

	"github.com/aidanlsb/orgmap/internal/taxonomy"
)

// recognizedCategories are the bare segment names the generic fallback
// re-roots on.
var recognizedCategories = map[string]bool{
	"organized":    true,
	"cleanup":      true,
	"documents":    true,
	"media":        true,
	"development":  true,
	"archives":     true,
	"applications": true,
	"fonts":        true,
	"system":       true,
	"other":        true,
}

// CleanupKeywords send an otherwise unrecognised path to the Cleanup tree.
var CleanupKeywords = []string{"cleanup", "duplicates", "temporary", "logs", "unknown"}

// placeholderPrefix returns the text of p before its first segment that
// contains a placeholder, or p itself when there is none.
func placeholderPrefix(p string) string {
	start := 0
	for i := 0; i <= len(p); i++ {
		if i < len(p) && p[i] != '/' {
			continue
		}
		if taxonomy.IsPlaceholder(p[start:i]) {
			return p[:start]
		}
		start = i + 1
	}
	return p
}

func prefixContained(in *input, e taxonomy.ResolvedEntry) bool {
	prefix := e.Prefix()
	return prefix != "" && strings.Contains(in.prefix, prefix)
}

func keyContained(in *input, e taxonomy.ResolvedEntry) bool {
	return e.Literal() && strings.Contains(in.old, e.Key())
}

func segmentContained(in *input, e taxonomy.ResolvedEntry) bool {
	if !e.Literal() {
		return false
	}
	for _, seg := range e.Segments() {
		if strings.Contains(in.lower, strings.ToLower(seg)) {
			return true
		}
	}
	return false
}

func resolvePlaceholder(in *input, e taxonomy.ResolvedEntry, found bool) (Result, bool) {
	segs := taxonomy.Split(in.old)
	trailingSlash := strings.HasSuffix(in.old, "/")

	if found {
		last := segs[len(segs)-1]
		if !taxonomy.IsPlaceholder(last) {
			return entryResult(TierPlaceholder, e, e.Abs), true
		}
		dir := strings.TrimSuffix(e.Abs, "/")
		if cut := strings.LastIndexByte(dir, '/'); cut >= 0 && taxonomy.IsPlaceholder(dir[cut+1:]) {
			dir = dir[:cut]
		}
		p := dir + "/" + last
		if trailingSlash {
			p += "/"
		}
		return entryResult(TierPlaceholder, e, p), true
	}

	for i, seg := range segs {
		switch {
		case strings.HasPrefix(seg, "{"):
			return Result{Path: rebuild(in.base, segs[i:], trailingSlash), Kind: taxonomy.Unknown, Tier: TierPlaceholder}, true
		case in.t.IsAnchor(seg):
			return Result{Path: rebuild(in.base, segs[i:], trailingSlash), Kind: kindOfSegment(seg), Tier: TierPlaceholder}, true
		}
	}
	return Result{}, false
}

func resolveFallback(in *input, _ taxonomy.ResolvedEntry, _ bool) (Result, bool) {
	segs := taxonomy.Split(in.old)
	for i, seg := range segs {
		if recognizedCategories[strings.ToLower(seg)] {
			return Result{
				Path: rebuild(in.base, segs[i:], strings.HasSuffix(in.old, "/")),
				Kind: kindOfSegment(seg),
				Tier: TierFallback,
			}, true
		}
	}

	name := basename(in.old)
	for _, kw := range CleanupKeywords {
		if strings.Contains(in.lower, kw) {
			root, _ := in.t.Lookup(taxonomy.Cleanup.String())
			return Result{Path: root + "/" + name, Kind: taxonomy.Cleanup, Tier: TierFallback}, true
		}
	}
	root, _ := in.t.Lookup(taxonomy.Organized.String())
	return Result{Path: root + "/Other/" + name, Kind: taxonomy.Organized, Tier: TierFallback}, true
}

// basename returns the last non-empty segment of p, or "" for an empty or
// root path.
func basename(p string) string {
	segs := taxonomy.Split(p)
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}
