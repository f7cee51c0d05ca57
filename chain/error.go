package chain

import (
	"fmt"
	"io"
	"strings"
)

// Error is an opaque error made of a chain of links.
//
// Each link is either a context message or, for the innermost link only, a
// wrapped underlying failure. Error values are immutable and may be shared.
type Error struct {
	msg    string
	source error
	next   *Error
}

// Error returns every link of the chain joined with ": ".
func (e *Error) Error() string {
	return strings.Join(e.Chain(), ": ")
}

// Message returns the text of the most recent link.
func (e *Error) Message() string {
	if e.source != nil {
		return e.source.Error()
	}
	return e.msg
}

// Chain returns the text of every link, most recent first.
func (e *Error) Chain() []string {
	var links []string
	for l := e; l != nil; l = l.next {
		links = append(links, l.Message())
	}
	return links
}

// Root returns the text of the innermost link.
func (e *Error) Root() string {
	l := e
	for l.next != nil {
		l = l.next
	}
	return l.Message()
}

// Len returns the number of links in the chain.
func (e *Error) Len() int {
	n := 0
	for l := e; l != nil; l = l.next {
		n++
	}
	return n
}

// Unwrap returns the next link, or the wrapped failure once the innermost link
// is reached.
func (e *Error) Unwrap() error {
	if e.next != nil {
		return e.next
	}
	return e.source
}

// Format implements fmt.Formatter. %+v produces the same text as Render.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.render())
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(chain.Error=%s)", verb, e.Error())
	}
}
