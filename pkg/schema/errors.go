package schema

import (
	"fmt"
	"strings"
)

// ValidationError reports one user-correctable problem with authoring
// input: a customization argument, a gadget name, a state name. The UI
// surfaces Reason inline next to the offending field.
type ValidationError struct {
	Field  string
	Reason string
	Value  any // the rejected value; nil when the field was absent
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s (got %T)", e.Field, e.Reason, e.Value)
}

// AggregateError collects every failure found in one validation pass, so
// a form can show all problems at once instead of only the first.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	parts := make([]string, 0, len(e.Errors)+1)
	parts = append(parts, fmt.Sprintf("%d validation errors:", len(e.Errors)))
	for _, err := range e.Errors {
		parts = append(parts, "  "+err.Error())
	}
	return strings.Join(parts, "\n")
}

// ValidationErrors unwraps an AggregateError into its individual
// failures. Returns nil for any other error.
func ValidationErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}
