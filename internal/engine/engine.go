package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wpscout/wpscout/internal/cache"
	"github.com/wpscout/wpscout/internal/gitinfo"
	"github.com/wpscout/wpscout/internal/trace"
	"github.com/wpscout/wpscout/internal/types"
)

// Config controls one traversal. It is read-only once the scan starts.
type Config struct {
	// Root is the path to scan. It is resolved (absolute, symlinks
	// evaluated) before the walk begins.
	Root string
	// SkipIgnorePaths disables the built-in ignore-fragment pruning.
	SkipIgnorePaths bool
	// MaxDepth is the inclusive descent bound; negative means unlimited.
	MaxDepth int
	// ExcludeGlobs holds comma-separated doublestar patterns pruned in
	// addition to the built-in fragments.
	ExcludeGlobs string
	// NoCache disables the marker-content cache.
	NoCache bool
	// DetectGit annotates installs whose root is inside a git work tree.
	DetectGit bool
	// Log receives walk events; nil means discard.
	Log trace.Logger
}

// Result carries the ordered installs plus walk statistics.
type Result struct {
	Installs    []types.Install
	DirsVisited int
	Duration    time.Duration
}

// Scan runs a traversal and returns only the installs.
func Scan(cfg Config) ([]types.Install, error) {
	res, err := ScanWithStats(cfg)
	if err != nil {
		return nil, err
	}
	return res.Installs, nil
}

// ScanWithStats validates the root, walks the tree depth-first, and returns
// whatever was found. Only an unresolvable root is fatal; every in-walk
// failure costs at most its own branch.
func ScanWithStats(cfg Config) (Result, error) {
	var result Result

	root, err := resolveRoot(cfg.Root)
	if err != nil {
		return result, err
	}
	cfg.Root = root

	log := cfg.Log
	if log == nil {
		log = trace.Nop()
	}

	var db cache.DB
	if !cfg.NoCache {
		db, _ = cache.Load(cfg.Root)
	} else {
		db.Entries = map[string]string{}
	}

	w := &walker{
		cfg:     cfg,
		log:     log,
		results: NewResultSet(),
		db:      db,
		updated: map[string]string{},
	}

	start := time.Now()
	log.Logf("scanning %s", cfg.Root)
	w.traverse(cfg.Root, 0)
	result.Duration = time.Since(start)
	result.DirsVisited = w.dirsVisited
	result.Installs = w.results.Installs()

	if !cfg.NoCache && len(w.updated) > 0 {
		db.Entries = w.updated
		_ = cache.Save(cfg.Root, db)
	}

	if cfg.DetectGit {
		for i := range result.Installs {
			installRoot := filepath.Dir(filepath.Dir(result.Installs[i].VersionPath))
			result.Installs[i].Managed = gitinfo.InWorkTree(installRoot)
		}
	}

	log.Logf("scan finished: %d install(s), %d dir(s) visited", len(result.Installs), result.DirsVisited)
	return result, nil
}

// resolveRoot makes the root absolute and symlink-free, failing fast when
// it does not name an existing directory.
func resolveRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("invalid root %q: %w", root, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("root does not exist: %s", abs)
	}
	st, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("root does not exist: %s", resolved)
	}
	if !st.IsDir() {
		return "", fmt.Errorf("root is not a directory: %s", resolved)
	}
	return resolved, nil
}
