package engine

import (
	"os"
	"path/filepath"

	"github.com/wpscout/wpscout/internal/cache"
	"github.com/wpscout/wpscout/internal/marker"
	"github.com/wpscout/wpscout/internal/trace"
	"github.com/wpscout/wpscout/internal/types"
)

// ResultSet holds installs in discovery order, keyed by marker-file path.
// A duplicate path overwrites in place and keeps its original position.
type ResultSet struct {
	installs []types.Install
	byPath   map[string]int
}

// NewResultSet returns an empty set.
func NewResultSet() *ResultSet {
	return &ResultSet{byPath: map[string]int{}}
}

// Add records an install, overwriting any earlier record at the same
// marker path.
func (rs *ResultSet) Add(in types.Install) {
	if i, ok := rs.byPath[in.VersionPath]; ok {
		rs.installs[i] = in
		return
	}
	rs.byPath[in.VersionPath] = len(rs.installs)
	rs.installs = append(rs.installs, in)
}

// Installs returns the records in discovery order.
func (rs *ResultSet) Installs() []types.Install { return rs.installs }

// Len returns the number of records.
func (rs *ResultSet) Len() int { return len(rs.installs) }

// walker carries one traversal's shared state. Depth is passed explicitly
// through traverse rather than kept as a mutable counter, so it balances by
// construction across branches.
type walker struct {
	cfg         Config
	log         trace.Logger
	results     *ResultSet
	db          cache.DB
	updated     map[string]string
	dirsVisited int
}

// traverse applies the node algorithm to path at the given depth: symlink
// guard, ignore pruning, marker detection, depth limit, then recursion into
// child directories. Every failure is a dead branch, never a fatal error.
func (w *walker) traverse(path string, depth int) {
	fi, err := os.Lstat(path)
	if err != nil {
		w.log.Logf("cannot stat %s, skipping branch: %v", path, err)
		return
	}
	// Symlinks are never followed; the real target is visited (or already
	// was) at its canonical location. Avoids cycles and double counting.
	if fi.Mode()&os.ModeSymlink != 0 {
		w.log.Logf("symlink %s, skipping branch", path)
		return
	}
	w.dirsVisited++

	rel := relForMatch(w.cfg.Root, path)
	if !w.cfg.SkipIgnorePaths {
		if frag := matchIgnored(rel); frag != "" {
			w.log.Logf("ignored path %s (matched %s), skipping branch", path, frag)
			return
		}
	}
	if excludedByGlobs(rel, w.cfg.ExcludeGlobs) {
		w.log.Logf("excluded by glob: %s, skipping branch", path)
		return
	}

	if filepath.Base(path) == marker.Dir {
		markerPath := filepath.Join(path, marker.File)
		if st, err := os.Stat(markerPath); err == nil && st.Mode().IsRegular() {
			w.record(markerPath, depth)
			// A marker directory is a leaf: its own children are never
			// descended into once the install is identified.
			return
		}
	}

	if w.cfg.MaxDepth >= 0 && depth > w.cfg.MaxDepth {
		w.log.Logf("depth %d exceeds limit %d at %s, skipping branch", depth, w.cfg.MaxDepth, path)
		return
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		w.log.Logf("cannot list %s, skipping branch: %v", path, err)
		return
	}
	w.log.Logf("scanning %s (depth %d)", path, depth)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		w.traverse(filepath.Join(path, e.Name()), depth+1)
	}
}

// record reads the marker file, extracts the version (through the content
// cache when warm), and appends the install. A read failure drops only this
// find. Recorded depth is one less than the recursion counter: the marker
// directory sits one level below the installation root.
func (w *walker) record(markerPath string, depth int) {
	b, err := os.ReadFile(markerPath)
	if err != nil {
		w.log.Logf("cannot read %s, skipping find: %v", markerPath, err)
		return
	}
	version, key := w.db.Lookup(markerPath, b)
	if key != "" {
		w.updated[markerPath] = key
	} else {
		version = marker.ExtractVersion(string(b))
		w.updated[markerPath] = cache.Key(b, version)
	}
	in := types.Install{VersionPath: markerPath, Version: version, Depth: depth - 1}
	w.results.Add(in)
	if version == "" {
		w.log.Logf("found install at %s (version unknown, depth %d)", markerPath, in.Depth)
		return
	}
	w.log.Logf("found install at %s (version %s, depth %d)", markerPath, version, in.Depth)
}
