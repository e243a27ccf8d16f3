// Package errs provides standardized error types for the tariff application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the validation failures this domain can produce:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value violates its invariants
//   - ValueIsOutOfRangeError: a numeric value falls outside its bound
//   - ConfigIsInvalidError: a configuration object's invariants are violated
//   - DivideByZeroError: an arithmetic operation against a zero divisor
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// All failures in this application are caller input problems surfaced
// eagerly at value object construction; this vocabulary is what the HTTP
// boundary maps to 400-class responses.
package errs
