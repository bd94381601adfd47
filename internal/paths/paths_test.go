package paths

import (
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/Downloads", filepath.Join(home, "Downloads")},
		{"~/a/b/", filepath.Join(home, "a/b")},
		{"/abs/path", "/abs/path"},
		{"relative/dir", "relative/dir"},
		{"~other/x", "~other/x"},
		{"", ""},
	}
	for _, tc := range tests {
		got, err := ExpandHome(tc.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ExpandHome(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestContractHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{home, "~"},
		{filepath.Join(home, "Organized"), "~/Organized"},
		{home + "x/y", home + "x/y"},
		{"/elsewhere", "/elsewhere"},
	}
	for _, tc := range tests {
		if got := ContractHome(tc.in); got != tc.want {
			t.Fatalf("ContractHome(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  ", ""},
		{"/", "/"},
		{"///", "/"},
		{"/new/base/", "/new/base"},
		{"~/Organized/", filepath.Join(home, "Organized")},
	}
	for _, tc := range tests {
		got, err := NormalizeDir(tc.in)
		if err != nil {
			t.Fatalf("NormalizeDir(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeDir(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolveFile("~/organize.yaml")
	if err != nil {
		t.Fatalf("ResolveFile returned error: %v", err)
	}
	if got != filepath.Join(home, "organize.yaml") {
		t.Fatalf("got %q", got)
	}
	if _, err := ResolveFile(" "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
