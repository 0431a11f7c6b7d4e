package engine

import (
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// ignoredPathFragments are substrings of a root-relative path that prune a
// branch. Matching is substring-based rather than segment-based: a partial
// name hit is an accepted tradeoff for cheap comparisons. Order is fixed so
// log output is stable.
var ignoredPathFragments = []string{
	"/.git/",
	"/cache/",
	"/node_modules/",
	"/vendor/",
	"/plugins/",
	"/themes/",
	"/uploads/",
	"/languages/",
}

// relForMatch normalizes a path for fragment matching: root-relative,
// forward slashes, lowercased, with exactly one separator on both ends.
func relForMatch(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return "/"
	}
	return strings.ToLower("/" + filepath.ToSlash(rel) + "/")
}

// matchIgnored returns the first fragment contained in the normalized
// relative path, or "" when none match.
func matchIgnored(rel string) string {
	for _, frag := range ignoredPathFragments {
		if strings.Contains(rel, frag) {
			return frag
		}
	}
	return ""
}

// excludedByGlobs applies user-supplied comma-separated doublestar globs
// against the root-relative path (no leading separator).
func excludedByGlobs(rel string, globs string) bool {
	if globs == "" {
		return false
	}
	trimmed := strings.Trim(rel, "/")
	for _, g := range strings.Split(globs, ",") {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if ok, err := doublestar.Match(g, trimmed); err == nil && ok {
			return true
		}
	}
	return false
}
