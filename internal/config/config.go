// Package config loads breakpoint Options from a YAML file and reloads them
// when the file changes.
//
// File format:
//
//	breakpoints:
//	  narrow: 80
//	  medium: 120
//	  wide: 160
//	default_breakpoint: medium
//	guard_ssr: false
//
// Every key is optional; unset keys fall back to breakpoint.Defaults().
package config

import (
	"errors"
	"fmt"
	"os"

	"termbreak/internal/breakpoint"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no path is given.
const EnvPath = "TERMBREAK_CONFIG"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid breakpoint config")

// Path returns flagPath, or $TERMBREAK_CONFIG when flagPath is empty.
func Path(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvPath)
}

// Load reads and validates the YAML file at path.
func Load(path string) (breakpoint.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return breakpoint.Options{}, fmt.Errorf("read config %q: %w", path, err)
	}
	opts, err := Parse(data)
	if err != nil {
		return breakpoint.Options{}, fmt.Errorf("config %q: %w", path, err)
	}
	return opts, nil
}

// Parse decodes and validates YAML config data.
func Parse(data []byte) (breakpoint.Options, error) {
	var opts breakpoint.Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return breakpoint.Options{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := Validate(opts); err != nil {
		return breakpoint.Options{}, err
	}
	return opts, nil
}

// Validate rejects labels and widths that cannot form a breakpoint table.
// A default label is only checked against an explicit mapping.
func Validate(opts breakpoint.Options) error {
	for label, w := range opts.Breakpoints {
		if label == "" {
			return fmt.Errorf("%w: empty breakpoint label", ErrInvalid)
		}
		if w <= 0 {
			return fmt.Errorf("%w: breakpoint %q has non-positive width %d", ErrInvalid, label, w)
		}
	}
	if opts.Breakpoints != nil && opts.DefaultBreakpoint != "" {
		if _, ok := opts.Breakpoints[opts.DefaultBreakpoint]; !ok {
			return fmt.Errorf("%w: default_breakpoint %q is not a configured breakpoint", ErrInvalid, opts.DefaultBreakpoint)
		}
	}
	return nil
}

// ValidateConfig checks a fully resolved Config, after defaults, presets and
// overrides have been layered. Unlike Validate it also catches a default
// label inherited from one layer that the mapping from another lacks.
func ValidateConfig(cfg breakpoint.Config) error {
	if len(cfg.Breakpoints) == 0 {
		return nil
	}
	return Validate(breakpoint.Options{
		Breakpoints:       cfg.Breakpoints,
		DefaultBreakpoint: cfg.DefaultBreakpoint,
	})
}
