package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/swat4julia/swatfreight/src/log"
)

// DefaultFile is the overlay read when no path is given.
const DefaultFile = ".swatfreight.yml"

// ErrUnknownConfigField classifies strict parse failures caused by unknown keys.
var ErrUnknownConfigField = errors.New("unknown config field")

// Config is the top-level deployment configuration.
// It is built once by Default or Load and is read-only afterwards.
type Config struct {
	Kits   map[string]Kit `yaml:"kits" toml:"kits"`
	Roles  Roles          `yaml:"roledefs" toml:"roledefs"`
	Paths  Paths          `yaml:"paths" toml:"paths"`
	Ucc    UccConfig      `yaml:"ucc" toml:"ucc"`
	Server ServerConfig   `yaml:"server" toml:"server"`
	Dist   DistConfig     `yaml:"dist" toml:"dist"`
}

// Default returns the built-in configuration with paths.here set to root.
func Default(root string) *Config {
	cfg := defaults()
	cfg.Paths.Here = root
	cfg.resolve()
	return cfg
}

// Load reads an overlay file on top of the built-in configuration.
// If path is empty, it tries the default file.
// Returns the defaults if the file doesn't exist.
// root is used for paths.here unless the overlay sets it.
func Load(path, root string) (*Config, error) {
	logger := log.WithComponent("config")

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			logger.Debug().Str("path", path).Msg("no config file, using defaults")
			cfg.Paths.Here = root
			cfg.resolve()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := decode(path, data, cfg); err != nil {
		return nil, err
	}
	if cfg.Paths.Here == "" {
		cfg.Paths.Here = root
	}
	cfg.resolve()

	logger.Debug().
		Str("path", path).
		Str("here", cfg.Paths.Here).
		Int("kits", len(cfg.Kits)).
		Int("sections", len(cfg.Server.Settings)).
		Msg("config loaded")
	return cfg, nil
}

// decode applies an overlay to cfg. Maps merge, lists replace.
func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		// TOML overlays go through the YAML decoder so both formats merge
		// into the defaults the same way.
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if len(doc) == 0 {
			return nil
		}
		converted, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		data = converted
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		if strings.Contains(err.Error(), "not found in type") {
			return fmt.Errorf("%w: %s: %v", ErrUnknownConfigField, path, err)
		}
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: multiple documents or trailing content", path)
	}
	return nil
}

// resolve fills derived values once the overlay has been applied.
func (c *Config) resolve() {
	c.Paths.resolve()
	for i, extra := range c.Dist.Extra {
		if extra != "" && !filepath.IsAbs(extra) {
			c.Dist.Extra[i] = c.Paths.Child(extra)
		}
	}
}

// Marshal renders the effective configuration as yaml or toml.
func Marshal(cfg *Config, format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		return yaml.Marshal(cfg)
	case "toml":
		return toml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("unknown format %q (supported: yaml, toml)", format)
	}
}

func defaults() *Config {
	return &Config{
		Kits:   DefaultKits(),
		Roles:  DefaultRoles(),
		Paths:  Paths{},
		Ucc:    DefaultUccConfig(),
		Server: DefaultServerConfig(),
		Dist:   DefaultDistConfig(),
	}
}
