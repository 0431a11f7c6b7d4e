package marker

import (
	"regexp"
	"strings"

	semver "github.com/blang/semver/v4"
)

const (
	// Dir is the directory whose presence signals an installation root.
	Dir = "wp-includes"
	// File is the file inside Dir that carries the version assignment.
	File = "version.php"
)

// versionRe matches the $wp_version assignment as plain text. The marker
// file is PHP belonging to another system; it is never evaluated here, only
// scanned. Single or double quotes, optional whitespace around '='.
var versionRe = regexp.MustCompile(`\$wp_version\s*=\s*['"]([^'"]*)['"]`)

// ExtractVersion returns the version string from marker file contents, or
// "" when no assignment is present. Pure; no I/O.
func ExtractVersion(contents string) string {
	m := versionRe.FindStringSubmatch(contents)
	if m == nil {
		return ""
	}
	return m[1]
}

// ParseVersion parses an extracted version tolerantly ("4.8" and
// "4.8-alpha" both parse). Returns an error for empty or unparseable input.
func ParseVersion(v string) (semver.Version, error) {
	v = strings.TrimSpace(strings.TrimPrefix(v, "v"))
	if sv, err := semver.ParseTolerant(v); err == nil {
		return sv, nil
	}
	// short forms carrying pre-release metadata ("4.8-alpha") need the
	// numeric head padded before strict parsing
	head, tail := v, ""
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		head, tail = v[:i], v[i:]
	}
	for strings.Count(head, ".") < 2 {
		head += ".0"
	}
	return semver.Parse(head + tail)
}

// AtLeast reports whether version v parses and is >= min. Unparseable
// versions never satisfy a minimum.
func AtLeast(v string, min semver.Version) bool {
	parsed, err := ParseVersion(v)
	if err != nil {
		return false
	}
	return parsed.GTE(min)
}
