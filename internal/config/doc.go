// Package config loads wpscout's optional YAML configuration. Resolution
// order is CLI flag, then a config file in the scan root, then the global
// file under the XDG config directory.
package config
