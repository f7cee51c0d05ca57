package chain

import "fmt"

// WithContext pushes a message in front of err's chain.
//
// The message builder is only called when err is non-nil. Returns nil if err
// is nil or holds a nil pointer.
//
// Example:
//
//	_, err := fs.Open(name)
//	return chain.WithContext(err, func() string {
//	    return fmt.Sprintf("failed to open %q", name)
//	})
func WithContext(err error, message func() string) error {
	if IsNil(err) {
		return nil
	}
	return &Error{msg: message(), next: from(err)}
}

// Context pushes a constant message in front of err's chain.
// Returns nil if err is nil.
func Context(err error, message string) error {
	if IsNil(err) {
		return nil
	}
	return &Error{msg: message, next: from(err)}
}

// Contextf pushes a formatted message in front of err's chain. Formatting only
// happens when err is non-nil. Returns nil if err is nil.
func Contextf(err error, format string, args ...interface{}) error {
	if IsNil(err) {
		return nil
	}
	return &Error{msg: fmt.Sprintf(format, args...), next: from(err)}
}
