package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (RFPLAN_*).
// It respects flags that have been explicitly set (changed map).
// Returns an error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	if v := os.Getenv("RFPLAN_STAGES"); v != "" && !changed["stages"] {
		stages, err := ParseStages(v)
		if err != nil {
			return err
		}
		cfg.Stages = stages
	}
	if v := os.Getenv("RFPLAN_SELECT"); v != "" && !changed["select"] {
		sel, err := ParseSelect(v)
		if err != nil {
			return err
		}
		cfg.Select = sel
	}

	s := newConfigSetter(changed)
	if err := s.setIntFromString("input-len", os.Getenv("RFPLAN_INPUT_LEN"), &cfg.InputLen); err != nil {
		return err
	}
	if err := s.setIntFromString("windows", os.Getenv("RFPLAN_WINDOWS"), &cfg.Windows); err != nil {
		return err
	}
	if err := s.setIntFromString("span", os.Getenv("RFPLAN_SPAN"), &cfg.Span); err != nil {
		return err
	}
	if err := s.setIntFromString("window-stride", os.Getenv("RFPLAN_WINDOW_STRIDE"), &cfg.WindowStride); err != nil {
		return err
	}

	s.setBoolFromString("json", os.Getenv("RFPLAN_JSON"), &cfg.JSON)
	s.setBoolFromString("quiet", os.Getenv("RFPLAN_QUIET"), &cfg.Quiet)

	return nil
}
