// Package config loads player settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skybound/input"
)

// DefaultPath is read when no --config flag is given. It may be absent.
const DefaultPath = "skybound.toml"

type Config struct {
	Window  WindowConfig        `toml:"window"`
	Keys    map[string][]string `toml:"keys"`
	Logging LoggingConfig       `toml:"logging"`
	Results ResultsConfig       `toml:"results"`
}

type WindowConfig struct {
	Scale      float64 `toml:"scale"`
	Fullscreen bool    `toml:"fullscreen"`
	TPS        int     `toml:"tps"`
}

type LoggingConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

type ResultsConfig struct {
	DBPath string `toml:"db_path"` // empty disables recording
}

// Load reads path over the defaults. A missing file at DefaultPath is not
// an error; any other missing file is.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Warn("unknown config keys ignored", "keys", undecoded)
	}
	return cfg.Validate()
}

func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Scale: 1,
			TPS:   60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func (c *Config) Validate() error {
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window.scale must be positive, got %v", c.Window.Scale)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	_, err := c.Bindings()
	return err
}

// LogLevel parses Logging.Level.
func (c *Config) LogLevel() (log.Level, error) {
	if c.Logging.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging.level: %w", err)
	}
	return lvl, nil
}

// Bindings resolves [keys] over the default layout. Each entry replaces the
// physical keys of one logical key, named by Ebitengine key name.
func (c *Config) Bindings() (input.Bindings, error) {
	b := input.DefaultBindings()
	names := make([]string, 0, len(c.Keys))
	for name := range c.Keys {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		logical, ok := logicalKey(name)
		if !ok {
			return nil, fmt.Errorf("keys: unknown action %q", name)
		}
		physical := make([]ebiten.Key, 0, len(c.Keys[name]))
		for _, keyName := range c.Keys[name] {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(keyName)); err != nil {
				return nil, fmt.Errorf("keys.%s: %w", name, err)
			}
			physical = append(physical, k)
		}
		if len(physical) == 0 {
			return nil, fmt.Errorf("keys.%s: no keys bound", name)
		}
		b[logical] = physical
	}
	return b, nil
}

func logicalKey(name string) (input.Key, bool) {
	for _, k := range []input.Key{input.KeyLeft, input.KeyRight, input.KeyJump, input.KeyAttack, input.KeyPause} {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}
