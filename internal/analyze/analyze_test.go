package analyze

import (
	"reflect"
	"strings"
	"testing"

	"github.com/aidanlsb/orgmap/internal/ruleset"
)

func parse(t *testing.T, src string) *ruleset.Document {
	t.Helper()
	doc, err := ruleset.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	return doc
}

func TestAnalyzeTwoDestinations(t *testing.T) {
	doc := parse(t, `rules:
  - locations: ~/Downloads
    actions:
      - move: /b/Organized/Media/x.jpg
  - locations: [~/Downloads, ~/Desktop]
    actions:
      - move:
          dest: /b/Cleanup/Logs/y.log
      - move: /b/Organized/Media/x.jpg
`)

	r := Analyze(doc)
	if r.BaseDir != "/b" {
		t.Fatalf("BaseDir = %q, want /b", r.BaseDir)
	}
	if got := r.Bucket("Media"); len(got) != 1 || got[0] != "/b/Organized/Media/x.jpg" {
		t.Fatalf("Media bucket = %v", got)
	}
	if got := r.Bucket("Cleanup"); len(got) != 1 || got[0] != "/b/Cleanup/Logs/y.log" {
		t.Fatalf("Cleanup bucket = %v", got)
	}
	total := 0
	for _, b := range r.Buckets {
		total += len(b.Paths)
	}
	if total != 2 {
		t.Fatalf("paths counted %d times, want 2", total)
	}
	if r.MoveActions != 3 || len(r.Destinations) != 2 || r.Rules != 2 {
		t.Fatalf("unexpected totals: %+v", r)
	}
	if !reflect.DeepEqual(r.Sources, []string{"~/Downloads", "~/Desktop"}) {
		t.Fatalf("Sources = %v", r.Sources)
	}
	if r.Kinds.Organized != 1 || r.Kinds.Cleanup != 1 {
		t.Fatalf("Kinds = %+v", r.Kinds)
	}
}

func TestBucketForOrder(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/b/Organized/Documents/PDF/", "Documents"},
		{"/b/Cleanup/Duplicates/Documents/", "Documents"},
		{"/b/Organized/Media/Music/", "Media"},
		{"/b/Organized/DEVELOPMENT/Code/", "Development"},
		{"/b/Organized/Fonts/", "Fonts"},
		{"/b/Organized/Other/x", "Other"},
		{"/b/Cleanup/Temporary/", "Cleanup"},
		{"/b/tmp/duplicates", "Cleanup"},
		{"~/Desktop/stuff", "Other"},
	}
	for _, tc := range tests {
		if got := BucketFor(tc.in); got != tc.want {
			t.Fatalf("BucketFor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGroupKeepsEveryBucket(t *testing.T) {
	buckets := Group(nil)
	if len(buckets) != len(BucketNames) {
		t.Fatalf("got %d buckets", len(buckets))
	}
	for i, b := range buckets {
		if b.Name != BucketNames[i] || len(b.Paths) != 0 {
			t.Fatalf("bucket %d = %+v", i, b)
		}
	}
}

func TestInferBaseDir(t *testing.T) {
	tests := []struct {
		name  string
		dests []string
		want  string
	}{
		{"marker", []string{"/b/Organized/Media/x.jpg"}, "/b"},
		{"case-insensitive marker", []string{"/srv/files/cleanup/tmp/"}, "/srv/files"},
		{"first marker occurrence", []string{"/a/Organized/x/Cleanup/y"}, "/a"},
		{"most frequent wins", []string{"/one/Organized/a", "/two/Organized/b", "/two/Cleanup/c"}, "/two"},
		{"tie keeps first seen", []string{"/one/Organized/a", "/two/Organized/b"}, "/one"},
		{"markers beat common prefix", []string{"/x/y/z", "/q/Organized/a"}, "/q"},
		{"common prefix", []string{"/data/sorted/a/x", "/data/sorted/b/y"}, "/data/sorted"},
		{"common prefix bounded by shortest", []string{"/data/sorted/a/b/c", "/data/sorted"}, "/data/sorted"},
		{"only root in common", []string{"/a/x", "/b/y"}, "/"},
		{"nothing in common", []string{"~/a", "/b"}, ""},
		{"no destinations", nil, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InferBaseDir(tc.dests); got != tc.want {
				t.Fatalf("InferBaseDir(%v) = %q, want %q", tc.dests, got, tc.want)
			}
		})
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	src := `rules:
  - locations: ~/a
    actions:
      - move: /b/Organized/Documents/PDF/
      - move: ~/Downloads/whatever
      - move: /c/Cleanup/Logs/
`
	first := Analyze(parse(t, src))
	for i := 0; i < 10; i++ {
		if again := Analyze(parse(t, src)); !reflect.DeepEqual(first, again) {
			t.Fatalf("reports differ:\n%+v\n%+v", first, again)
		}
	}
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	r := Analyze(parse(t, ""))
	if r.BaseDir != "" || len(r.Destinations) != 0 || len(r.Buckets) != len(BucketNames) {
		t.Fatalf("unexpected report: %+v", r)
	}
}

func TestMarkdown(t *testing.T) {
	r := Analyze(parse(t, `rules:
  - locations: ~/Downloads
    actions:
      - move: /b/Organized/Media/a.jpg
      - move: /b/Organized/Media/b.jpg
      - move: /b/Organized/Media/c.jpg
      - move: /b/Cleanup/Logs/
`))
	md := r.Markdown(2)
	for _, want := range []string{
		"# Ruleset analysis",
		"**Base directory:** `/b`",
		"## Media (3)",
		"`/b/Organized/Media/a.jpg`",
		"and 1 more",
		"## Cleanup (1)",
		"## Sources",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected markdown to contain %q, got:\n%s", want, md)
		}
	}
	if strings.Contains(md, "## Documents") {
		t.Fatal("empty buckets should not be rendered")
	}
	if strings.Contains(md, "c.jpg") {
		t.Fatal("examples should be capped")
	}
}
