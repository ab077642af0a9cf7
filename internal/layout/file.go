package layout

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadFile reads and validates a layout descriptor from a TOML file.
func LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout file %s: %w", path, err)
	}
	var l Layout
	if err := toml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("parse layout file %s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("layout file %s: %w", path, err)
	}
	return l, nil
}

// Marshal renders a layout as TOML for inspection or as a starting point
// for a user-provided layout file.
func Marshal(l Layout) (string, error) {
	data, err := toml.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("marshal layout: %w", err)
	}
	return string(data), nil
}
