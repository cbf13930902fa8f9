package pathext

import "strings"

func IsRoot(path string, trim bool) bool {
	if trim && len(strings.TrimSpace(path)) == 0 {
		return true
	}

	return path == "" || path == "." || path == "/" || path == "./"
}

// Components splits a path into its non-empty slash-delimited components,
// collapsing "." segments, and reports whether the path was absolute.
func Components(path string) ([]string, bool) {
	absolute := strings.HasPrefix(path, "/")

	components := []string{}
	for _, component := range strings.Split(path, "/") {
		if component == "" || component == "." {
			continue
		}

		components = append(components, component)
	}

	return components, absolute
}

// Join reassembles components into a path with "/" separators.
func Join(components []string) string {
	return strings.Join(components, "/")
}
