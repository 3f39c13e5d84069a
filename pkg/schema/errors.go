package schema

import "fmt"

// ValidationError represents a single parameter validation failure.
type ValidationError struct {
	Key    string // Parameter name
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("parameter %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("parameter %q: %s (got %T)", e.Key, e.Reason, e.Value)
}

// UnknownParameterError reports an override whose name is not recognized by
// the target item kind. Suggestion holds the closest recognized name by edit
// distance, or "" when nothing is close enough.
type UnknownParameterError struct {
	Name       string
	Kind       string
	Suggestion string
}

func (e *UnknownParameterError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("unknown parameter %q for %s items", e.Name, e.Kind)
	}
	return fmt.Sprintf("unknown parameter %q for %s items (did you mean %q?)", e.Name, e.Kind, e.Suggestion)
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes the individual failures to errors.Is/errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}
