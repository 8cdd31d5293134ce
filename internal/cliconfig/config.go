// Package cliconfig holds the layered configuration for the rfplan tool:
// defaults, then config file, then RFPLAN_* environment variables, then
// flags, each layer overriding the one before unless a flag was set
// explicitly.
package cliconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/convlab/rfield/chain"
	"github.com/convlab/rfield/window"
)

// StageConfig is one chain stage as it appears in config files and the
// --stages flag.
type StageConfig struct {
	Kernel   int `toml:"kernel"`
	Stride   int `toml:"stride"`
	Dilation int `toml:"dilation"`
}

// Config holds CLI configuration for rfplan.
type Config struct {
	Stages []StageConfig

	InputLen int

	Windows      int
	Span         int
	WindowStride int
	Select       []int

	JSON  bool
	Watch bool
	Quiet bool
}

// DefaultConfig returns a Config with default values: a single window
// spanning one output, consecutive placement.
func DefaultConfig() Config {
	return Config{
		Windows: 1,
		Span:    1,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if len(c.Stages) == 0 {
		return fmt.Errorf("at least one stage is required (config file [[stage]] or --stages)")
	}
	if c.InputLen <= 0 {
		return fmt.Errorf("input-len must be positive")
	}
	if c.Windows < 1 {
		return fmt.Errorf("windows must be >= 1")
	}
	if c.Span < 1 {
		return fmt.Errorf("span must be >= 1")
	}
	if c.WindowStride < 0 {
		return fmt.Errorf("window-stride must be non-negative")
	}
	return nil
}

// BuildChain converts the configured stages into a chain.Chain.
func (c *Config) BuildChain() (*chain.Chain, error) {
	triples := make([][3]int, len(c.Stages))
	for i, s := range c.Stages {
		triples[i] = [3]int{s.Kernel, s.Stride, s.Dilation}
	}
	return chain.FromTriples(triples)
}

// WindowOptions converts the batching fields into window.Options.
func (c *Config) WindowOptions() window.Options {
	return window.Options{
		WindowCount: c.Windows,
		Span:        c.Span,
		Stride:      c.WindowStride,
		Select:      c.Select,
	}
}

// ParseStages parses the --stages flag format: comma-separated
// kernel:stride or kernel:stride:dilation triples, e.g. "3:1,3:2,2:1:4".
func ParseStages(s string) ([]StageConfig, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []StageConfig
	for _, part := range strings.Split(s, ",") {
		fields := strings.Split(strings.TrimSpace(part), ":")
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("stage %q: want kernel:stride or kernel:stride:dilation", part)
		}
		nums := make([]int, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("stage %q: %w", part, err)
			}
			nums[i] = n
		}
		sc := StageConfig{Kernel: nums[0], Stride: nums[1], Dilation: 1}
		if len(nums) == 3 {
			sc.Dilation = nums[2]
		}
		out = append(out, sc)
	}
	return out, nil
}

// ParseSelect parses the --select flag format: comma-separated in-window
// offsets, e.g. "0,7".
func ParseSelect(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("select %q: %w", part, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setInts sets an int-slice value if non-empty and flag not changed.
func (s *configSetter) setInts(flag string, value []int, dst *[]int) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
