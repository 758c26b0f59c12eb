package app

import (
	"errors"
	"fmt"
)

// Reason classifies factory and dispatch failures.
type Reason string

const (
	ReasonUnknownClass   Reason = "unknown_class"
	ReasonConstruction   Reason = "construction"
	ReasonMissingHandler Reason = "missing_handler"
)

// FactoryError reports a class that could not be instantiated.
type FactoryError struct {
	Reason Reason
	Class  string
	Err    error
}

func (e *FactoryError) Error() string {
	if e.Reason == ReasonUnknownClass {
		return fmt.Sprintf("class %s doesn't exist", e.Class)
	}
	return fmt.Sprintf("class %s could not be constructed: %v", e.Class, e.Err)
}

func (e *FactoryError) Unwrap() error { return e.Err }

// DispatchError reports a binding whose observer lacks the configured method.
// It is only raised in developer mode.
type DispatchError struct {
	Reason Reason
	Event  string
	Class  string
	Method string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("method %q is not defined in %q (event %s)", e.Method, e.Class, e.Event)
}

// IsUnknownClass reports whether err indicates an unregistered class name.
func IsUnknownClass(err error) bool { return reasonOf(err) == ReasonUnknownClass }

// IsConstruction reports whether err indicates a failing constructor.
func IsConstruction(err error) bool { return reasonOf(err) == ReasonConstruction }

// IsMissingHandler reports whether err indicates a missing observer method.
func IsMissingHandler(err error) bool { return reasonOf(err) == ReasonMissingHandler }

// abortsDispatch reports whether err must stop the dispatch it surfaced in
// rather than being logged as an ordinary handler failure.
func abortsDispatch(err error) bool { return reasonOf(err) != "" }

func reasonOf(err error) Reason {
	var fe *FactoryError
	if errors.As(err, &fe) {
		return fe.Reason
	}
	var de *DispatchError
	if errors.As(err, &de) {
		return de.Reason
	}
	return ""
}
