// Package formats provides pluggable level pack file parsers.
package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLPack represents the YAML structure for a level pack file.
type YAMLPack struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Author string      `yaml:"author,omitempty"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents one level inside a pack.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Par      int               `yaml:"par,omitempty"` // known best move count
	Layout   string            `yaml:"layout"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Pack is a parsed pack. Layouts are kept as text; turning them into
// worlds is the puzzle package's job.
type Pack struct {
	ID     string
	Name   string
	Author string
	Levels []Level
}

// Level is one parsed pack entry.
type Level struct {
	ID       string
	Name     string
	Par      int
	Layout   string
	Metadata map[string]string
}

// ParseYAML parses a YAML level pack.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yp.ID == "" {
		return Pack{}, fmt.Errorf("pack has no id")
	}
	if len(yp.Levels) == 0 {
		return Pack{}, fmt.Errorf("pack %s has no levels", yp.ID)
	}

	pack := Pack{
		ID:     yp.ID,
		Name:   yp.Name,
		Author: yp.Author,
		Levels: make([]Level, 0, len(yp.Levels)),
	}
	if pack.Name == "" {
		pack.Name = pack.ID
	}

	seen := make(map[string]bool, len(yp.Levels))
	for i, yl := range yp.Levels {
		if yl.ID == "" {
			return Pack{}, fmt.Errorf("pack %s: level %d has no id", yp.ID, i+1)
		}
		if seen[yl.ID] {
			return Pack{}, fmt.Errorf("pack %s: duplicate level id %s", yp.ID, yl.ID)
		}
		seen[yl.ID] = true

		if strings.TrimSpace(yl.Layout) == "" {
			return Pack{}, fmt.Errorf("pack %s: level %s has no layout", yp.ID, yl.ID)
		}

		name := yl.Name
		if name == "" {
			name = yl.ID
		}
		pack.Levels = append(pack.Levels, Level{
			ID:       yl.ID,
			Name:     name,
			Par:      max(yl.Par, 0),
			Layout:   yl.Layout,
			Metadata: yl.Metadata,
		})
	}

	return pack, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
