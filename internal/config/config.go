// Package config loads the cellplex CLI settings from a TOML file.
//
// A missing file is not an error: Load returns DefaultConfig. Keys:
//
//	log_level = "info"       # debug | info | warn | error
//	format    = "text"       # text | json
//	order     = "canonical"  # canonical | symmetric
//	validate  = true         # run topology.Validate on every input
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/cellplex/complexio"
	"github.com/katalvlaran/cellplex/topology"
)

// Order names accepted in the order key.
const (
	OrderCanonical = "canonical"
	OrderSymmetric = "symmetric"
)

// Config holds the settings shared by every cellplex command.
type Config struct {
	LogLevel string `toml:"log_level"`
	Format   string `toml:"format"`
	Order    string `toml:"order"`
	Validate bool   `toml:"validate"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Format:   complexio.FormatText.String(),
		Order:    OrderCanonical,
		Validate: true,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/cellplex/config.toml, falling back to
// ~/.config/cellplex/config.toml. It returns "" when no home is known.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "cellplex", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "cellplex", "config.toml")
}

// Load reads path over DefaultConfig. Keys absent from the file keep their
// defaults. An empty path or a missing file yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config TOML: %w", err)
	}
	if err := cfg.Check(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Check rejects unknown values.
func (c Config) Check() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	if _, err := complexio.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if _, err := ParseOrder(c.Order); err != nil {
		return err
	}

	return nil
}

// Level returns the parsed log level, InfoLevel when it is invalid.
func (c Config) Level() log.Level {
	l, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}

	return l
}

// OutputFormat returns the parsed output format, FormatText when it is invalid.
func (c Config) OutputFormat() complexio.Format {
	f, err := complexio.ParseFormat(c.Format)
	if err != nil {
		return complexio.FormatText
	}

	return f
}

// Comparator returns the cell order named by c.Order.
func (c Config) Comparator() topology.Comparator {
	cmp, err := ParseOrder(c.Order)
	if err != nil {
		return topology.Compare
	}

	return cmp
}

// ParseOrder maps an order name to its comparator.
func ParseOrder(name string) (topology.Comparator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case OrderCanonical, "":
		return topology.Compare, nil
	case OrderSymmetric:
		return topology.SymmetricCompare, nil
	default:
		return nil, fmt.Errorf("order %q: want %q or %q", name, OrderCanonical, OrderSymmetric)
	}
}
