// Package engine implements the depth-first traversal that locates
// WordPress installations under a root path. Each directory passes a chain
// of cheap rejection tests (symlink guard, ignore fragments, marker
// detection, depth limit) before its children are visited. Results are
// collected in discovery order; inaccessible branches are logged and
// skipped rather than failing the scan.
package engine
