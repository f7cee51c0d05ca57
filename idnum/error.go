package idnum

import (
	stderrors "errors"
	"fmt"
)

// Error is an id number failure. Construct it with NewLookupFailure or
// NewInvalidNumber.
type Error struct {
	kind  Kind
	value uint32
}

// ErrLookupFailure matches any lookup failure with errors.Is.
var ErrLookupFailure = NewLookupFailure()

// NewLookupFailure returns an error of KindLookupFailure.
func NewLookupFailure() *Error {
	return &Error{kind: KindLookupFailure}
}

// NewInvalidNumber returns an error of KindInvalidNumber carrying n.
func NewInvalidNumber(n uint32) *Error {
	return &Error{kind: KindInvalidNumber, value: n}
}

// Error returns the fixed message of the error's kind.
func (e *Error) Error() string {
	switch e.kind {
	case KindLookupFailure:
		return "id lookup failure"
	case KindInvalidNumber:
		return fmt.Sprintf("invalid id number (%d)", e.value)
	default:
		return "unknown id number error"
	}
}

// Kind returns the error's variant.
func (e *Error) Kind() Kind {
	if e.kind == "" {
		return KindUnknown
	}
	return e.kind
}

// Value returns the rejected value and true for kinds that carry one.
func (e *Error) Value() (uint32, bool) {
	if !e.kind.HasValue() {
		return 0, false
	}
	return e.value, true
}

// Is reports whether target is an idnum error of the same kind and value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind && e.value == t.value
}

// KindOf returns the kind of the first idnum error in err's chain.
// Returns KindUnknown if err is nil or holds no idnum error.
//
// Example:
//
//	if idnum.KindOf(err) == idnum.KindLookupFailure {
//	    // Handle missing id
//	}
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind()
	}
	return KindUnknown
}

// ValueOf returns the value carried by the first idnum error in err's chain.
func ValueOf(err error) (uint32, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Value()
	}
	return 0, false
}
