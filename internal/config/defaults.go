package config

import (
	_ "embed"
)

//go:embed defaults/tusk.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file, e.g. for
// writing a starter config.
func DefaultYAML() []byte {
	return defaultYAML
}
