package convert

import (
	"errors"
	"fmt"
)

// Mechanism names the conversion route that produced a value or an error.
type Mechanism string

const (
	// MechanismConverter is the registry-driven general converter.
	MechanismConverter Mechanism = "converter"

	// MechanismParser is the type-specific parse function.
	MechanismParser Mechanism = "parser"
)

// ErrUnknownKind is returned when no conversion is registered for a kind.
var ErrUnknownKind = errors.New("unknown kind")

// ConversionError reports text that could not be converted to the requested kind.
type ConversionError struct {
	Kind      Kind
	Input     string
	Mechanism Mechanism
	Err       error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: cannot convert %q to %s: %v", e.Mechanism, e.Input, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: cannot convert %q to %s", e.Mechanism, e.Input, e.Kind)
}

// Unwrap returns the underlying parse error.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

func newConversionError(m Mechanism, kind Kind, input string, err error) *ConversionError {
	return &ConversionError{Kind: kind, Input: input, Mechanism: m, Err: err}
}
