package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("not found")

// ParseError reports a malformed date string or ISO week key.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

// ValidationError is raised before any persistence call when a request is
// inconsistent. Field names the offending input for inline messages.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// OverlapConflict is the expected outcome when a truck assignment intersects
// existing assignments for the same truck. It asks for a human decision and is
// not a failure.
type OverlapConflict struct {
	TruckID  string
	Count    int
	Existing []int64
}

func (e *OverlapConflict) Error() string {
	return fmt.Sprintf("truck %s has %d overlapping assignment(s)", e.TruckID, e.Count)
}

// PersistenceError wraps a failure from the storage boundary together with the
// parameters of the failed operation, so the caller can retry without
// re-deriving state.
type PersistenceError struct {
	Op     string
	Params map[string]any
	Err    error
}

func (e *PersistenceError) Error() string {
	if len(e.Params) == 0 {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	keys := make([]string, 0, len(e.Params))
	for k := range e.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, e.Params[k]))
	}
	return fmt.Sprintf("%s (%s): %v", e.Op, strings.Join(parts, ", "), e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError builds a PersistenceError. Params are copied.
func NewPersistenceError(op string, err error, params map[string]any) *PersistenceError {
	p := make(map[string]any, len(params))
	for k, v := range params {
		p[k] = v
	}
	return &PersistenceError{Op: op, Params: p, Err: err}
}

// AsOverlapConflict extracts an OverlapConflict from err.
func AsOverlapConflict(err error) (*OverlapConflict, bool) {
	var oc *OverlapConflict
	if errors.As(err, &oc) {
		return oc, true
	}
	return nil, false
}

// AsValidationError extracts a ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsParseError extracts a ParseError from err.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// AsPersistenceError extracts a PersistenceError from err.
func AsPersistenceError(err error) (*PersistenceError, bool) {
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
