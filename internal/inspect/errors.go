package inspect

import (
	"errors"
	"fmt"
)

var (
	// ErrScope is matched by every ScopeError.
	ErrScope = errors.New("scope error")
	// ErrFault is matched by every FaultError.
	ErrFault = errors.New("reflection fault")
)

// ScopeError indicates the scan scope does not contain the root marker type.
// Suggestion, if present, is a close match the user may have intended.
type ScopeError struct{ Root, Suggestion string }

func (e *ScopeError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("root type %s not found in scan scope (did you mean %q?)", e.Root, e.Suggestion)
	}
	return fmt.Sprintf("root type %s not found in scan scope", e.Root)
}

func (e *ScopeError) Is(target error) bool { return target == ErrScope }

// FaultError indicates the metadata of a single participant could not be
// read. Field is empty when the fault is not tied to one field.
type FaultError struct{ Type, Field, Reason string }

func (e *FaultError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s.%s: %s", e.Type, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Reason)
}

func (e *FaultError) Is(target error) bool { return target == ErrFault }

// NewScopeError reports root missing from the scan scope.
func NewScopeError(root, suggestion string) error {
	return &ScopeError{Root: root, Suggestion: suggestion}
}

// NewFault reports unreadable metadata on typ, or on one of its fields.
func NewFault(typ, field, reason string) error {
	return &FaultError{Type: typ, Field: field, Reason: reason}
}
