package apitype

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration    = errors.New("configuration error")
	ErrDecode           = errors.New("decode error")
	ErrInvalidParameter = errors.New("invalid parameter")
)

func NewConfigurationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// NewDecodeError wraps the decoder's own error so that both ErrDecode and
// the underlying cause can be matched with errors.Is.
func NewDecodeError(path string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrDecode, path)
	}
	return fmt.Errorf("%w: %s: %w", ErrDecode, path, cause)
}

func NewInvalidParameterError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
