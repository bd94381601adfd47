package classify

import (
	"testing"

	"github.com/aidanlsb/orgmap/internal/taxonomy"
)

const newBase = "/new/base"

func resolved() *taxonomy.Resolved {
	return taxonomy.ComposeDefault(newBase)
}

func TestPathExamples(t *testing.T) {
	tests := []struct {
		name string
		old  string
		want string
		tier Tier
		kind taxonomy.Kind
	}{
		{"no keyword falls back to Other", "~/Downloads/foo.jpg", "/new/base/Organized/Other/foo.jpg", TierFallback, taxonomy.Organized},
		{"exact containment", "/old/Organized/Documents/PDF/report.pdf", "/new/base/Organized/Documents/PDF/", TierExact, taxonomy.Organized},
		{"cleanup exact containment", "/old/Cleanup/Duplicates/Music/song_1.mp3", "/new/base/Cleanup/Duplicates/Music/", TierExact, taxonomy.Cleanup},
		{"component match", "~/Sorted/my documents/", "/new/base/Organized/Documents/PDF/", TierComponent, taxonomy.Organized},
		{"component match is case-insensitive", "/x/PHOTOS", "/new/base/Organized/Media/Images/Photos/", TierComponent, taxonomy.Organized},
		{"generic fallback re-roots at category segment", "/old/Organized/Misc/stuff/", "/new/base/Organized/Misc/stuff/", TierFallback, taxonomy.Organized},
		{"generic fallback cleanup segment", "/old/cleanup/misc", "/new/base/cleanup/misc", TierFallback, taxonomy.Cleanup},
		{"cleanup keyword", "~/Downloads/unknown-stuff.bin", "/new/base/Cleanup/unknown-stuff.bin", TierFallback, taxonomy.Cleanup},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Path(tc.old, newBase, resolved())
			if got.Path != tc.want {
				t.Fatalf("Path(%q) = %q, want %q", tc.old, got.Path, tc.want)
			}
			if got.Tier != tc.tier {
				t.Fatalf("Path(%q) tier = %v, want %v", tc.old, got.Tier, tc.tier)
			}
			if got.Kind != tc.kind {
				t.Fatalf("Path(%q) kind = %v, want %v", tc.old, got.Kind, tc.kind)
			}
		})
	}
}

func TestPathPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		old  string
		want string
	}{
		{
			"templated entry keeps trailing placeholder",
			"~/Organized/Development/Code/{extension}/",
			"/new/base/Organized/Development/Code/{extension}/",
		},
		{
			"literal entry gains trailing placeholder",
			"/old/Organized/Media/Images/Photos/{created.year}/",
			"/new/base/Organized/Media/Images/Photos/{created.year}/",
		},
		{
			"no trailing slash is preserved",
			"/old/Organized/Other/{extension}",
			"/new/base/Organized/Other/{extension}",
		},
		{
			"resolved trailing segment returns entry verbatim",
			"/old/Organized/Other/{extension}/misc",
			"/new/base/Organized/Other/{extension}/",
		},
		{
			"unmatched prefix re-roots at placeholder segment",
			"~/Pictures/{created.year}/",
			"/new/base/{created.year}/",
		},
		{
			"unmatched prefix re-roots at Organized segment",
			"/old/Organized/Stuff/{extension}/",
			"/new/base/Organized/Stuff/{extension}/",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Path(tc.old, newBase, resolved())
			if got.Path != tc.want {
				t.Fatalf("Path(%q) = %q, want %q", tc.old, got.Path, tc.want)
			}
			if got.Tier != TierPlaceholder {
				t.Fatalf("Path(%q) tier = %v, want placeholder", tc.old, got.Tier)
			}
		})
	}
}

func TestPlaceholderPrefersLongestPrefix(t *testing.T) {
	table := []taxonomy.Entry{
		{Rel: "Media/{extension}/", Kind: taxonomy.Organized},
		{Rel: "Media/Images/{extension}/", Kind: taxonomy.Organized},
	}
	r := taxonomy.Compose(newBase, table)
	got := Path("/old/Media/Images/{extension}/", newBase, r)
	if got.Rel != "Media/Images/{extension}/" {
		t.Fatalf("matched %q, want the longer prefix", got.Rel)
	}
}

func TestPlaceholderTieKeepsEarliestEntry(t *testing.T) {
	table := []taxonomy.Entry{
		{Rel: "Media/{extension}/", Kind: taxonomy.Organized},
		{Rel: "Media/{year}/", Kind: taxonomy.Cleanup},
	}
	r := taxonomy.Compose(newBase, table)
	got := Path("/old/Media/{name}/", newBase, r)
	if got.Rel != "Media/{extension}/" || got.Kind != taxonomy.Organized {
		t.Fatalf("matched %q (%v), want the first registered entry", got.Rel, got.Kind)
	}
}

func TestUnmatchedPlaceholderFallsThrough(t *testing.T) {
	got := Path("/x/IMG_{year}/logs", newBase, resolved())
	if got.Tier != TierComponent || got.Rel != "Logs/" {
		t.Fatalf("got %+v, want component match on Logs/", got)
	}
}

func TestComponentMatchKeepsShortSubstringBehaviour(t *testing.T) {
	// "text" from Documents/Text/ matches inside "context".
	got := Path("/srv/context/", newBase, resolved())
	if got.Rel != "Documents/Text/" {
		t.Fatalf("got %+v", got)
	}
}

func TestExactTierIgnoresTemplatedEntries(t *testing.T) {
	got := Path("/old/Organized/Other/thing.txt", newBase, resolved())
	if got.Tier != TierFallback {
		t.Fatalf("literal path must not resolve to a templated entry, got %+v", got)
	}
	if got.Path != "/new/base/Organized/Other/thing.txt" {
		t.Fatalf("got %q", got.Path)
	}
}

func TestIdempotence(t *testing.T) {
	inputs := []string{
		"~/Downloads/foo.jpg",
		"~/Downloads/",
		"/old/Organized/Documents/PDF/report.pdf",
		"/old/Cleanup/Duplicates/Music/song_1.mp3",
		"~/Sorted/my documents/",
		"/old/Organized/Misc/stuff/",
		"~/Downloads/unknown-stuff.bin",
		"~/tmp/old.duplicates",
		"~/Organized/Development/Code/{extension}/",
		"/old/Organized/Media/Images/Photos/{created.year}/",
		"/old/Organized/Other/{extension}/misc",
		"~/Pictures/{created.year}/",
		"/old/Organized/Stuff/{extension}",
		"",
	}
	r := resolved()
	for _, in := range inputs {
		first := Rewrite(in, newBase, r)
		second := Rewrite(first, newBase, r)
		if first != second {
			t.Fatalf("not idempotent for %q: %q then %q", in, first, second)
		}
		if first == "" {
			t.Fatalf("empty result for %q", in)
		}
	}
}

func TestIdempotenceWhenBaseNamesACategory(t *testing.T) {
	bases := []string{"/home/me/Documents", "/srv/logs", "/Users/me/Media/Sorted", "/data/Photos/Organized"}
	inputs := []string{
		"~/Downloads/foo.jpg",
		"/old/Organized/Misc/stuff/",
		"~/Downloads/unknown.bin",
		"/old/Organized/Media/Music/",
		"/old/Cleanup/Logs/",
		"~/Pictures/{created.year}/",
		"/old/Organized/Development/Code/{extension}/",
		"",
	}
	for _, base := range bases {
		r := taxonomy.ComposeDefault(base)
		for _, in := range inputs {
			first := Path(in, base, r)
			second := Path(first.Path, base, r)
			if first.Path != second.Path {
				t.Fatalf("base %q: not idempotent for %q: %q (%v) then %q (%v)",
					base, in, first.Path, first.Tier, second.Path, second.Tier)
			}
		}
	}
}

func TestBaseWordsDoNotPickCategory(t *testing.T) {
	base := "/home/me/Documents"
	got := Path(base+"/Organized/Other/foo.jpg", base, taxonomy.ComposeDefault(base))
	if got.Tier != TierFallback || got.Path != base+"/Organized/Other/foo.jpg" {
		t.Fatalf("got %+v", got)
	}
}

func TestComponentTierSkipsTemplatedOther(t *testing.T) {
	// "other" inside "another" does not reach Other/{extension}/.
	got := Path("/x/another/thing", newBase, resolved())
	if got.Tier != TierFallback || got.Rel != "" || got.Path != "/new/base/Organized/Other/thing" {
		t.Fatalf("got %+v", got)
	}
}

func TestIdempotenceAcrossBases(t *testing.T) {
	first := Path("/old/Organized/Documents/PDF/report.pdf", newBase, resolved())
	moved := Path(first.Path, "/other", taxonomy.ComposeDefault("/other"))
	if moved.Rel != first.Rel {
		t.Fatalf("category changed from %q to %q", first.Rel, moved.Rel)
	}
	if moved.Path != "/other/Organized/Documents/PDF/" {
		t.Fatalf("got %q", moved.Path)
	}
}

func TestDeterminism(t *testing.T) {
	r := resolved()
	for i := 0; i < 20; i++ {
		a := Path("/old/Organized/Media/Music/x.mp3", newBase, r)
		b := Path("/old/Organized/Media/Music/x.mp3", newBase, taxonomy.ComposeDefault(newBase))
		if a != b {
			t.Fatalf("results differ: %+v vs %+v", a, b)
		}
	}
}

func TestEmptyInputStillProducesPath(t *testing.T) {
	got := Path("", newBase, resolved())
	if got.Path != "/new/base/Organized/Other/" {
		t.Fatalf("got %q", got.Path)
	}
}

func TestNilTaxonomyDegradesToFallback(t *testing.T) {
	got := Path("/old/Organized/Documents/PDF/report.pdf", newBase, nil)
	if got.Tier != TierFallback || got.Path != "/new/base/Organized/Documents/PDF/report.pdf" {
		t.Fatalf("got %+v", got)
	}
}

func TestBaseTrailingSlashIgnored(t *testing.T) {
	a := Rewrite("~/Downloads/foo.jpg", "/new/base/", resolved())
	if a != "/new/base/Organized/Other/foo.jpg" {
		t.Fatalf("got %q", a)
	}
}

func TestPlaceholderPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/a/b/{x}/c", "/a/b/"},
		{"/a/b_{x}/c", "/a/"},
		{"{x}", ""},
		{"/a/b", "/a/b"},
	}
	for _, tc := range tests {
		if got := placeholderPrefix(tc.in); got != tc.want {
			t.Fatalf("placeholderPrefix(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTierTextRoundTrip(t *testing.T) {
	for tier := TierNone; tier <= TierFallback; tier++ {
		text, err := tier.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Tier
		if err := back.UnmarshalText(text); err != nil || back != tier {
			t.Fatalf("round trip of %s gave %v, %v", tier, back, err)
		}
	}
	var bad Tier
	if err := bad.UnmarshalText([]byte("Exact")); err == nil {
		t.Fatal("expected error for unknown tier")
	}
}
