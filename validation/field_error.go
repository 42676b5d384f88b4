package validation

import (
	"fmt"
	"strings"
)

// FieldError describes a single validation failure tied to one field path.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError carries the full, ordered list of field errors for one
// payload. It is a value to inspect, not a fault: handlers map it to a 422.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fmt.Sprintf("%s: %s", strings.Join(fe.Loc, "."), fe.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
