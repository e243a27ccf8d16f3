package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Every typed error in
// this package unwraps to one of these.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrConfigIsInvalid   = errors.New("config is invalid")
	ErrDivideByZero      = errors.New("divide by zero")
)

// sanitize renders a value for an error message, collapsing newlines so a
// multi-line input cannot break log formatting.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError indicates a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required
// value wrapping the underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value does not satisfy its invariants.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value
// wrapping the underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value falls outside its defined
// bound. Value, Min and Max are kept untyped so callers can report ints,
// floats or pre-formatted strings.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates an error for a value outside [min, max].
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates an error for a value outside
// [min, max] wrapping the underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ConfigIsInvalidError indicates a configuration object's own invariants are
// violated, e.g. a minimum bound not below its maximum.
type ConfigIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewConfigIsInvalidError creates an error for an invalid configuration.
func NewConfigIsInvalidError(paramName string) *ConfigIsInvalidError {
	return &ConfigIsInvalidError{ParamName: paramName}
}

// NewConfigIsInvalidErrorWithCause creates an error for an invalid
// configuration wrapping the underlying cause.
func NewConfigIsInvalidErrorWithCause(paramName string, cause error) *ConfigIsInvalidError {
	return &ConfigIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ConfigIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConfigIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConfigIsInvalid, e.ParamName)
}

func (e *ConfigIsInvalidError) Unwrap() error {
	return ErrConfigIsInvalid
}

// DivideByZeroError indicates an arithmetic operation against a zero
// divisor, e.g. a distance ratio with a zero denominator.
type DivideByZeroError struct {
	ParamName string
	Cause     error
}

// NewDivideByZeroError creates an error for a division against zero.
func NewDivideByZeroError(paramName string) *DivideByZeroError {
	return &DivideByZeroError{ParamName: paramName}
}

// NewDivideByZeroErrorWithCause creates an error for a division against zero
// wrapping the underlying cause.
func NewDivideByZeroErrorWithCause(paramName string, cause error) *DivideByZeroError {
	return &DivideByZeroError{ParamName: paramName, Cause: cause}
}

func (e *DivideByZeroError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrDivideByZero, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrDivideByZero, e.ParamName)
}

func (e *DivideByZeroError) Unwrap() error {
	return ErrDivideByZero
}
