package taxonomy

import (
	"strings"
	"testing"
)

func TestDefaultTableInvariants(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Default() {
		if seen[e.Rel] {
			t.Fatalf("duplicate relative path %q", e.Rel)
		}
		seen[e.Rel] = true
		if strings.HasPrefix(e.Rel, "/") || !strings.HasSuffix(e.Rel, "/") || strings.Contains(e.Rel, "//") {
			t.Fatalf("relative path %q must look like Seg/Seg/", e.Rel)
		}
		if e.Kind != Organized && e.Kind != Cleanup {
			t.Fatalf("entry %q has kind %v", e.Rel, e.Kind)
		}
	}
}

func TestDefaultTableOrderPutsSpecificFirst(t *testing.T) {
	table := Default()
	for i, later := range table {
		for _, earlier := range table[:i] {
			if !earlier.Literal() || !later.Literal() {
				continue
			}
			if strings.Contains(later.Key(), earlier.Key()) {
				t.Fatalf("%q would shadow the more specific %q", earlier.Rel, later.Rel)
			}
		}
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	a := Default()
	a[0].Rel = "Changed/"
	if Default()[0].Rel == "Changed/" {
		t.Fatal("Default() must not expose the shared table")
	}
}

func TestEntryPrefix(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"Documents/PDF/", "Documents/PDF"},
		{"Development/Code/{extension}/", "Development/Code"},
		{"Other/{extension}/", "Other"},
		{"{extension}/", ""},
	}
	for _, tc := range tests {
		if got := (Entry{Rel: tc.rel}).Prefix(); got != tc.want {
			t.Fatalf("Prefix(%q) = %q, want %q", tc.rel, got, tc.want)
		}
	}
}

func TestIsPlaceholder(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"{extension}", true},
		{"IMG_{created.year}.jpg", true},
		{"{unterminated", false},
		{"plain", false},
		{"}{", false},
	}
	for _, tc := range tests {
		if got := IsPlaceholder(tc.in); got != tc.want {
			t.Fatalf("IsPlaceholder(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestComposeExactness(t *testing.T) {
	for _, base := range []string{"/new/base", "~/Sorted", ""} {
		r := ComposeDefault(base)
		for _, e := range Default() {
			want := base + "/" + e.Kind.String() + "/" + e.Rel
			got, ok := r.Lookup(e.Rel)
			if !ok || got != want {
				t.Fatalf("Compose(%q)[%q] = %q (ok=%v), want %q", base, e.Rel, got, ok, want)
			}
			if strings.Contains(got[1:], "//") {
				t.Fatalf("double slash in %q", got)
			}
		}
	}
}

func TestComposeStripsTrailingSeparators(t *testing.T) {
	a := ComposeDefault("/new/base///")
	b := ComposeDefault(StripBase("/new/base///"))
	if a.Base != "/new/base" || b.Base != a.Base {
		t.Fatalf("bases differ: %q vs %q", a.Base, b.Base)
	}
	if len(a.Entries) != len(b.Entries) {
		t.Fatalf("entry counts differ: %d vs %d", len(a.Entries), len(b.Entries))
	}
	for i := range a.Entries {
		if a.Entries[i] != b.Entries[i] {
			t.Fatalf("entry %d differs: %+v vs %+v", i, a.Entries[i], b.Entries[i])
		}
	}
}

func TestComposeRootBase(t *testing.T) {
	r := ComposeDefault("/")
	got, _ := r.Lookup("Documents/PDF/")
	if got != "/Organized/Documents/PDF/" {
		t.Fatalf("got %q", got)
	}
}

func TestComposeAnchors(t *testing.T) {
	r := ComposeDefault("/b")
	if abs, ok := r.Lookup("Organized"); !ok || abs != "/b/Organized" {
		t.Fatalf("Organized anchor = %q, %v", abs, ok)
	}
	if abs, ok := r.Lookup("Cleanup"); !ok || abs != "/b/Cleanup" {
		t.Fatalf("Cleanup anchor = %q, %v", abs, ok)
	}
	for _, key := range []string{"/Organized/", "/Cleanup/"} {
		if !r.IsAnchor(key) {
			t.Fatalf("%q should be an anchor", key)
		}
	}
	for _, e := range r.Entries {
		if r.IsAnchor(e.Rel) {
			t.Fatalf("category %q must not be an anchor", e.Rel)
		}
	}
	if r.Len() != len(Default()) {
		t.Fatalf("Len() = %d, want %d", r.Len(), len(Default()))
	}
}

func TestKindString(t *testing.T) {
	if Organized.String() != "Organized" || Cleanup.String() != "Cleanup" || Unknown.String() != "Unknown" {
		t.Fatal("unexpected kind names")
	}
}

func TestKindTextRoundTrip(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("cleanup")); err != nil || k != Cleanup {
		t.Fatalf("UnmarshalText(cleanup) = %v, %v", k, err)
	}
	if err := k.UnmarshalText([]byte("Elsewhere")); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
