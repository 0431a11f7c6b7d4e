// Package gitinfo answers one question about a discovered install: does it
// live inside a git work tree. Administrators use this to separate managed
// deployments from stray copies.
package gitinfo

import (
	git "github.com/go-git/go-git/v5"
)

// InWorkTree reports whether dir or any of its parents is a git work tree.
// Best-effort: any open failure reads as "not managed".
func InWorkTree(dir string) bool {
	_, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}
