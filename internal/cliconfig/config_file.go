package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML tags. Booleans are pointers so an
// absent key is distinguishable from an explicit false.
type FileConfig struct {
	InputLen     int           `toml:"input_len"`
	Windows      int           `toml:"windows"`
	Span         int           `toml:"span"`
	WindowStride int           `toml:"window_stride"`
	Select       []int         `toml:"select"`
	JSON         *bool         `toml:"json"`
	Quiet        *bool         `toml:"quiet"`
	Stages       []StageConfig `toml:"stage"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.rfplan/config.toml if the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".rfplan", "config.toml")
	}
	return ""
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	if len(fc.Stages) > 0 && !changed["stages"] {
		cfg.Stages = fc.Stages
	}
	s.setInt("input-len", fc.InputLen, &cfg.InputLen)
	s.setInt("windows", fc.Windows, &cfg.Windows)
	s.setInt("span", fc.Span, &cfg.Span)
	s.setInt("window-stride", fc.WindowStride, &cfg.WindowStride)
	s.setInts("select", fc.Select, &cfg.Select)
	s.setBool("json", fc.JSON, &cfg.JSON)
	s.setBool("quiet", fc.Quiet, &cfg.Quiet)
}
