package core

import (
	"fmt"
	"strings"
)

// ValidationErrors collects structural problems found before generation.
// All problems are reported as one batch so the caller can fix everything
// at once; generation must not proceed while HasErrors is true.
type ValidationErrors struct {
	Errors []string
}

// AddError appends a validation error message.
func (v *ValidationErrors) AddError(msg string) {
	if msg = strings.TrimSpace(msg); msg == "" {
		return
	}
	v.Errors = append(v.Errors, msg)
}

// CheckRequiredField records an error when the value is missing. Strings are
// missing when blank; slices when empty; pointers when nil.
func (v *ValidationErrors) CheckRequiredField(field string, value any) {
	if isEmptyValue(value) {
		v.AddError(fmt.Sprintf("%s is required", field))
	}
}

// CheckDisallowedField records an error when the value is set on a dialect
// that does not allow the field.
func (v *ValidationErrors) CheckDisallowedField(field string, value any, dialectName string) {
	if !isEmptyValue(value) {
		v.AddError(fmt.Sprintf("%s is not allowed on %s", field, dialectName))
	}
}

// Merge appends all errors from another collection.
func (v *ValidationErrors) Merge(other *ValidationErrors) {
	if other == nil {
		return
	}
	v.Errors = append(v.Errors, other.Errors...)
}

// HasErrors reports whether any validation error was recorded.
func (v *ValidationErrors) HasErrors() bool {
	return v != nil && len(v.Errors) > 0
}

// Error joins all recorded messages; an empty collection yields an empty string.
func (v *ValidationErrors) Error() string {
	if !v.HasErrors() {
		return ""
	}
	return strings.Join(v.Errors, "; ")
}

func isEmptyValue(value any) bool {
	switch val := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []string:
		return len(val) == 0
	case *int64:
		return val == nil
	default:
		return false
	}
}
