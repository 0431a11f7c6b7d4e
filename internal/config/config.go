package config

import (
	"errors"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for wpscout. Pointer
// fields distinguish "unset" from zero values so CLI flags can win.
type FileConfig struct {
	SkipIgnorePaths *bool   `yaml:"skip_ignore_paths"`
	MaxDepth        *int    `yaml:"max_depth"`
	Exclude         *string `yaml:"exclude"`
	MinVersion      *string `yaml:"min_version"`
	NoColor         *bool   `yaml:"no_color"`
	NoCache         *bool   `yaml:"no_cache"`
	NoGit           *bool   `yaml:"no_git"`
	Verbose         *bool   `yaml:"verbose"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches the scan root for a local config file. It supports
// .wpscout.yml/.yaml and wpscout.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".wpscout.yml", ".wpscout.yaml", "wpscout.yml", "wpscout.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "wpscout", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
