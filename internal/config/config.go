// Package config loads the benchmark run configuration.
//
// Configuration lives in a TOML file (recbench.toml by default) and
// covers run shape only: collection sizes, repeat counts, transport
// capacity, and which layouts to include. The record shape itself is
// fixed and not configurable.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/stevedwards/record-layout-benchmarks/internal/layout"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "recbench.toml"

// Config holds the run parameters for all benchmark commands.
type Config struct {
	// Sizes are the collection sizes measured by the time command.
	Sizes []int `toml:"sizes"`

	// MemSize is the collection size used for memory measurement.
	MemSize int `toml:"mem_size"`

	// Repeats is how many timed repeats feed each mean ± stddev.
	Repeats int `toml:"repeats"`

	// QueueSize is the transport capacity for the stream command.
	QueueSize int `toml:"queue_size"`

	// Layouts restricts the run to a subset of the registry.
	// Empty means all layouts in canonical order.
	Layouts []string `toml:"layouts"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Sizes:     []int{100_000, 1_000_000},
		MemSize:   1_000_000,
		Repeats:   5,
		QueueSize: 1024,
	}
}

// Load reads the TOML file at path, falling back to Default when the
// file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and layout names.
func (c *Config) Validate() error {
	if c.Repeats < 1 {
		return fmt.Errorf("config: repeats must be >= 1, got %d", c.Repeats)
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("config: queue_size must be >= 1, got %d", c.QueueSize)
	}
	if c.MemSize < 0 {
		return fmt.Errorf("config: mem_size must be >= 0, got %d", c.MemSize)
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return fmt.Errorf("config: sizes must be >= 0, got %d", n)
		}
	}
	for _, name := range c.Layouts {
		if _, ok := layout.ByName(name); !ok {
			return fmt.Errorf("config: unknown layout %q (known: %v)", name, layout.Names())
		}
	}
	return nil
}

// SelectedLayouts returns fresh instances of the configured layouts,
// or the whole registry when none are named.
func (c *Config) SelectedLayouts() []layout.Layout {
	if len(c.Layouts) == 0 {
		return layout.All()
	}
	selected := make([]layout.Layout, 0, len(c.Layouts))
	for _, name := range c.Layouts {
		if l, ok := layout.ByName(name); ok {
			selected = append(selected, l)
		}
	}
	return selected
}
