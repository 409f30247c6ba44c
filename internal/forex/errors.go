package forex

import "fmt"

// ArgumentError reports invalid caller input. It is returned before any
// backend call is attempted.
type ArgumentError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Message)
}

// Is reports whether target is an ArgumentError for the same field and message
func (e *ArgumentError) Is(target error) bool {
	t, ok := target.(*ArgumentError)
	return ok && t.Field == e.Field && t.Message == e.Message
}

// ErrEmptySymbols matches, via errors.Is, the error List returns when
// Params.Symbols is empty. List returns a fresh copy, so changing this value
// does not change what callers receive.
var ErrEmptySymbols = newEmptySymbolsError()

func newEmptySymbolsError() *ArgumentError {
	return &ArgumentError{
		Field:   "symbols",
		Message: "symbols must not be empty",
	}
}

// EncodingError reports that params could not be turned into a form body
type EncodingError struct {
	Cause error
}

// Error implements the error interface
func (e *EncodingError) Error() string {
	return fmt.Sprintf("failed to encode params: %v", e.Cause)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *EncodingError) Unwrap() error {
	return e.Cause
}

// ProviderError is an error reported by the quote provider inside an
// otherwise successful response. List never returns it as a failure; it is
// delivered through Iter.Err alongside whatever records came back.
type ProviderError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("provider error: %s", e.Code)
	}
	return fmt.Sprintf("provider error: %s: %s", e.Code, e.Description)
}
