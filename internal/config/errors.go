package config

import (
	"errors"
	"fmt"
)

// Reason classifies a configuration failure.
type Reason string

const (
	ReasonNotFound      Reason = "not_found"
	ReasonInvalidFormat Reason = "invalid_format"
)

// ConfigError reports why a configuration document could not be loaded.
type ConfigError struct {
	Reason Reason
	Path   string
	Err    error
}

func (e *ConfigError) Error() string {
	switch e.Reason {
	case ReasonNotFound:
		return fmt.Sprintf("config file %q does not exist", e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("config file %q is not a valid event document: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("config file %q is not a valid event document", e.Path)
	}
}

func (e *ConfigError) Unwrap() error { return e.Err }

func notFound(path string, err error) error {
	return &ConfigError{Reason: ReasonNotFound, Path: path, Err: err}
}

func invalidFormat(path string, err error) error {
	return &ConfigError{Reason: ReasonInvalidFormat, Path: path, Err: err}
}

// IsNotFound reports whether err indicates a missing configuration document.
func IsNotFound(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce) && ce.Reason == ReasonNotFound
}

// IsInvalidFormat reports whether err indicates an unparsable document.
func IsInvalidFormat(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce) && ce.Reason == ReasonInvalidFormat
}
