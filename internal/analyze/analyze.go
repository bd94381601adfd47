// Package analyze summarises a ruleset's destinations without changing it.
package analyze

import (
	"regexp"
	"strings"

	"github.com/aidanlsb/orgmap/internal/classify"
	"github.com/aidanlsb/orgmap/internal/ruleset"
	"github.com/aidanlsb/orgmap/internal/taxonomy"
)

// BucketNames is the fixed report order. A destination lands in the first
// bucket whose keywords it contains.
var BucketNames = []string{
	"Documents",
	"Media",
	"Development",
	"Archives",
	"Applications",
	"Fonts",
	"System",
	"Other",
	"Cleanup",
}

const otherBucket = "Other"

var bucketKeywords = map[string][]string{
	"Cleanup": classify.CleanupKeywords,
}

var baseMarker = regexp.MustCompile(`(?i)^(.*?)/(?:organized|cleanup)/`)

// Bucket groups destinations under one category name.
type Bucket struct {
	Name  string   `json:"name"`
	Paths []string `json:"paths"`
}

// KindCounts tallies destinations by classified kind.
type KindCounts struct {
	Organized int `json:"organized"`
	Cleanup   int `json:"cleanup"`
	Unknown   int `json:"unknown"`
}

// Report is the read-only summary of a ruleset.
type Report struct {
	Rules        int        `json:"rules"`
	MoveActions  int        `json:"move_actions"`
	Destinations []string   `json:"destinations"`
	Sources      []string   `json:"sources"`
	Buckets      []Bucket   `json:"buckets"`
	BaseDir      string     `json:"base_dir"`
	Kinds        KindCounts `json:"kinds"`
}

// Analyze walks doc and builds a Report.
func Analyze(doc *ruleset.Document) *Report {
	r := &Report{
		Rules:        len(doc.Rules),
		Destinations: []string{},
		Sources:      []string{},
	}

	seen := make(map[string]bool)
	for _, m := range doc.MoveTargets() {
		r.MoveActions++
		if d := m.Dest(); !seen[d] {
			seen[d] = true
			r.Destinations = append(r.Destinations, d)
		}
	}
	seenSrc := make(map[string]bool)
	for _, loc := range doc.Locations() {
		if p := loc.Path(); !seenSrc[p] {
			seenSrc[p] = true
			r.Sources = append(r.Sources, p)
		}
	}

	r.Buckets = Group(r.Destinations)
	r.BaseDir = InferBaseDir(r.Destinations)

	t := taxonomy.ComposeDefault(r.BaseDir)
	for _, d := range r.Destinations {
		switch classify.Path(d, r.BaseDir, t).Kind {
		case taxonomy.Organized:
			r.Kinds.Organized++
		case taxonomy.Cleanup:
			r.Kinds.Cleanup++
		default:
			r.Kinds.Unknown++
		}
	}
	return r
}

// BucketFor returns the bucket a destination belongs to.
func BucketFor(p string) string {
	lower := strings.ToLower(p)
	for _, name := range BucketNames {
		keywords, ok := bucketKeywords[name]
		if !ok {
			keywords = []string{strings.ToLower(name)}
		}
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return name
			}
		}
	}
	return otherBucket
}

// Group sorts destinations into every bucket, in BucketNames order. Empty
// buckets are kept so reports have a stable shape.
func Group(dests []string) []Bucket {
	index := make(map[string]int, len(BucketNames))
	out := make([]Bucket, len(BucketNames))
	for i, name := range BucketNames {
		out[i] = Bucket{Name: name, Paths: []string{}}
		index[name] = i
	}
	for _, d := range dests {
		b := &out[index[BucketFor(d)]]
		b.Paths = append(b.Paths, d)
	}
	return out
}

// Bucket returns the paths grouped under name.
func (r *Report) Bucket(name string) []string {
	for _, b := range r.Buckets {
		if b.Name == name {
			return b.Paths
		}
	}
	return nil
}

// InferBaseDir finds the directory the destinations share. The text before
// "/Organized/" or "/Cleanup/" wins when present, most frequent first and
// earliest on ties; otherwise the longest common segment prefix is used.
func InferBaseDir(dests []string) string {
	counts := make(map[string]int)
	var order []string
	for _, d := range dests {
		m := baseMarker.FindStringSubmatch(d)
		if m == nil {
			continue
		}
		if counts[m[1]] == 0 {
			order = append(order, m[1])
		}
		counts[m[1]]++
	}
	if len(order) > 0 {
		best := order[0]
		for _, candidate := range order[1:] {
			if counts[candidate] > counts[best] {
				best = candidate
			}
		}
		return best
	}
	return commonPrefix(dests)
}

func commonPrefix(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	common := strings.Split(paths[0], "/")
	for _, p := range paths[1:] {
		segs := strings.Split(p, "/")
		n := len(common)
		if len(segs) < n {
			n = len(segs)
		}
		i := 0
		for i < n && common[i] == segs[i] {
			i++
		}
		common = common[:i]
	}
	if len(common) == 1 && common[0] == "" {
		return "/"
	}
	return strings.Join(common, "/")
}
