package types

// Install describes one discovered WordPress installation, identified by the
// version marker file inside its wp-includes directory.
type Install struct {
	// VersionPath is the absolute path to the version.php marker file.
	VersionPath string `json:"version_path" yaml:"version_path"`
	// Version is the string extracted from the marker file. Empty when the
	// file exists but carries no recognizable assignment.
	Version string `json:"version" yaml:"version"`
	// Depth is the number of directory descents from the scan root to the
	// installation root (one level above wp-includes).
	Depth int `json:"depth" yaml:"depth"`
	// Managed is true when the installation root sits inside a git work
	// tree. Best-effort; only populated when git detection is enabled.
	Managed bool `json:"managed,omitempty" yaml:"managed,omitempty"`
}
