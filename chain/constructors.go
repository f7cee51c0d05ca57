package chain

import (
	"fmt"
	"reflect"
)

// New creates a chain error holding a single message and no underlying cause.
//
// Example:
//
//	return chain.New("key lookup failure")
func New(message string) error {
	return &Error{msg: message}
}

// Errorf creates a chain error from a formatted message.
// Errorf does not wrap: use From or WithContext to keep an underlying failure.
//
// Example:
//
//	return chain.Errorf("invalid id number (%d)", n)
func Errorf(format string, args ...interface{}) error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// From wraps any failure in a chain error.
//
// A chain error is returned unchanged. Any other failure becomes the innermost
// link of a new chain and keeps its own Error() text. Returns nil if err is nil.
//
// Example:
//
//	n, err := strconv.ParseUint(s, 10, 64)
//	if err != nil {
//	    return 0, chain.From(err)
//	}
func From(err error) error {
	if c := from(err); c != nil {
		return c
	}
	return nil
}

// from is From with a concrete result. The type check is direct on purpose: a
// foreign error that merely wraps a chain keeps its own text as a new link.
func from(err error) *Error {
	if IsNil(err) {
		return nil
	}
	if c, ok := err.(*Error); ok {
		return c
	}
	return &Error{source: err}
}

// IsNil reports whether err is nil or an interface holding a nil pointer.
//
// Example:
//
//	var lf *marker.LookupFailure
//	chain.IsNil(lf) // true
func IsNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
