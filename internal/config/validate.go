package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matthiasg/markdown-inspector/internal/markdown"
)

var (
	// ErrInvalidDepth indicates an out-of-range outline depth
	ErrInvalidDepth = errors.New("invalid outline depth")

	// ErrInvalidMode indicates an unknown extraction mode
	ErrInvalidMode = errors.New("invalid read mode")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Outline.Depth < 1 || cfg.Outline.Depth > markdown.MaxDepth {
		errs = append(errs, fmt.Errorf("%w: depth must be between 1 and %d, got %d", ErrInvalidDepth, markdown.MaxDepth, cfg.Outline.Depth))
	}

	if _, err := markdown.ParseMode(cfg.Read.Mode); err != nil {
		errs = append(errs, fmt.Errorf("%w: must be one of %s, got %q", ErrInvalidMode, strings.Join(markdown.ModeNames, ", "), cfg.Read.Mode))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
