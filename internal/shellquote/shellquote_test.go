package shellquote

import "testing"

func TestQuoteIfNeeded(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/home/me/Sorted", "/home/me/Sorted"},
		{"~/Downloads", "~/Downloads"},
		{"/Volumes/My Drive", "'/Volumes/My Drive'"},
		{"it's", `'it'\''s'`},
		{"$HOME/x", "'$HOME/x'"},
		{"", "''"},
	}
	for _, tc := range tests {
		if got := QuoteIfNeeded(tc.in); got != tc.want {
			t.Fatalf("QuoteIfNeeded(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestJoin(t *testing.T) {
	got := Join("orgmap", "remap", "--source", "/a b")
	if want := "orgmap remap --source '/a b'"; got != want {
		t.Fatalf("Join = %q, want %q", got, want)
	}
}
