package rs01dict

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rs01dict/internal/bitarray"
)

var (
	// ErrInvalidConfig is returned when a Config cannot build a dictionary.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOutOfRange is returned when a query argument is outside its domain.
	ErrOutOfRange = errors.New("argument out of range")

	// ErrInvalidInput is returned when an input source is inconsistent with
	// the declared length.
	ErrInvalidInput = errors.New("invalid input")
)

// ConfigError indicates an invalid configuration field.
//
// It matches ErrInvalidConfig with errors.Is. The component error (if any)
// can be accessed via errors.Unwrap.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
	cause  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s=%d: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfig }

func (e *ConfigError) Unwrap() error { return e.cause }

// RangeError indicates a query argument outside [0, Limit).
//
// It matches ErrOutOfRange with errors.Is.
type RangeError struct {
	Op    string
	Arg   uint64
	Limit uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s(%d): out of range [0, %d)", e.Op, e.Arg, e.Limit)
}

func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ce *ConfigError
	if errors.As(err, &ce) {
		return err
	}
	if isConfigError(err) {
		return &ConfigError{Field: "Config", Reason: err.Error(), cause: err}
	}

	if errors.Is(err, bitarray.ErrPositionOutOfRange) || errors.Is(err, bitarray.ErrShortWords) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return err
}
