// Package chain provides an opaque, aggregating error with human-readable
// context chains.
//
// A chain error wraps any failure behind a single type and collects context
// messages as it travels up the call stack. Each layer adds exactly one link in
// front of the chain it received; links are never changed afterwards. The
// result reads like a story when rendered:
//
//	failed to load lookup table
//
//	Caused by:
//	    0: failed to read "ids.yaml"
//	    1: file does not exist
//
// # When To Use It
//
// Use chain errors in application and high-level code where the only consumer
// of the failure is a human reading a log or a terminal. Chain errors cannot be
// matched by kind: callers that need to branch on what went wrong should
// receive an idnum error instead, and hot paths that must not allocate should
// use the marker package.
//
// # Creating errors
//
//	err := chain.New("key lookup failure")
//	err := chain.Errorf("invalid id number (%d)", n)
//
// Wrapping an underlying failure is always explicit:
//
//	data, err := util.ReadFile(fs, name)
//	if err != nil {
//	    return chain.From(err)
//	}
//
// # Adding context
//
// WithContext takes a builder that is only evaluated when err is non-nil, so
// the formatting cost is never paid on the success path:
//
//	f, err := fs.Open(name)
//	if err := chain.WithContext(err, func() string {
//	    return fmt.Sprintf("failed to open %q", name)
//	}); err != nil {
//	    return err
//	}
//
// Context is the eager form for constant messages.
//
// # Standard Library Compatibility
//
// Error implements Unwrap, so errors.Is and errors.As reach the wrapped
// failure through any number of context links:
//
//	err := chain.Context(chain.From(fs.ErrNotExist), "open failed")
//	errors.Is(err, fs.ErrNotExist) // true
//
// # Formatting
//
//   - Error(), %v and %s join every link with ": " on one line.
//   - %+v and Render produce the multi-line "Caused by:" report.
//   - %q quotes the single-line form.
package chain
