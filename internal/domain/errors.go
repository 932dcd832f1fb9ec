package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a requested entity does not exist or is not
// visible to the caller.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller is not allowed to act on an entity.
var ErrForbidden = errors.New("forbidden")

// ValidationErrors carries field-level validation failures, keyed by field
// name, in the shape the API serializes them.
type ValidationErrors map[string][]string

func (v ValidationErrors) Add(field, msg string) {
	v[field] = append(v[field], msg)
}

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for field, msgs := range v {
		parts = append(parts, field+": "+strings.Join(msgs, "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// AsValidationErrors unwraps err into ValidationErrors if possible.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
