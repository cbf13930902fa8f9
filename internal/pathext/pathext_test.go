package pathext

import (
	"reflect"
	"testing"
)

var componentsTests = []struct {
	name         string
	path         string
	want         []string
	wantAbsolute bool
}{
	{"Splits a relative path", "a/b/c", []string{"a", "b", "c"}, false},
	{"Splits an absolute path", "/a/b", []string{"a", "b"}, true},
	{"Collapses dot segments", "./a/./b", []string{"a", "b"}, false},
	{"Drops empty segments", "a//b/", []string{"a", "b"}, false},
	{"Handles the bare root", "/", []string{}, true},
	{"Handles the empty path", "", []string{}, false},
}

func TestComponents(t *testing.T) {
	for _, tt := range componentsTests {
		t.Run(tt.name, func(t *testing.T) {
			components, absolute := Components(tt.path)

			if !reflect.DeepEqual(components, tt.want) {
				t.Errorf("Components() = %v, want %v", components, tt.want)
			}

			if absolute != tt.wantAbsolute {
				t.Errorf("Components() absolute = %v, want %v", absolute, tt.wantAbsolute)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]string{"a", "b", "c"}); got != "a/b/c" {
		t.Errorf("Join() = %v, want %v", got, "a/b/c")
	}

	if got := Join(nil); got != "" {
		t.Errorf("Join(nil) = %v, want empty", got)
	}
}

func TestIsRoot(t *testing.T) {
	for path, want := range map[string]bool{
		"":     true,
		".":    true,
		"/":    true,
		"./":   true,
		"a":    false,
		"/a/b": false,
	} {
		if got := IsRoot(path, false); got != want {
			t.Errorf("IsRoot(%q) = %v, want %v", path, got, want)
		}
	}

	if !IsRoot("   ", true) {
		t.Error("IsRoot() with trimming = false, want true for all-whitespace path")
	}
}
