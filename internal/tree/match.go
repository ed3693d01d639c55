package tree

import (
	"path"
	"strings"
)

// Matches reports whether id matches any of the patterns. A pattern ending
// in "/" matches any path segment; other patterns are matched against the
// last segment, and patterns containing "/" also against the whole id.
func Matches(id string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.HasSuffix(pattern, "/") {
			dirPattern := strings.TrimSuffix(pattern, "/")
			for _, part := range strings.Split(id, Separator) {
				if part == dirPattern {
					return true
				}
				if matched, _ := path.Match(dirPattern, part); matched {
					return true
				}
			}
			continue
		}

		if matched, err := path.Match(pattern, path.Base(id)); err == nil && matched {
			return true
		}
		if strings.Contains(pattern, "/") {
			if matched, err := path.Match(pattern, id); err == nil && matched {
				return true
			}
		}
	}
	return false
}

// Match returns the top-most nodes whose id matches one of the patterns.
// Descendants of a match are not reported.
func (f *Forest) Match(patterns []string) []*Node {
	var out []*Node
	if len(patterns) == 0 {
		return out
	}
	f.Walk(func(n *Node) bool {
		if Matches(n.id, patterns) {
			out = append(out, n)
			return false
		}
		return true
	})
	return out
}

// UncheckMatching unchecks every node returned by Match and reports how many
// were changed.
func (f *Forest) UncheckMatching(patterns []string) int {
	changed := 0
	for _, n := range f.Match(patterns) {
		if n.checked {
			f.SetChecked(n, false)
			changed++
		}
	}
	return changed
}
