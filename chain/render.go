package chain

import (
	"strconv"
	"strings"
)

const causeIndent = "    "

// Render returns a human-readable report of err.
//
// The first line holds the most recent message. When there are earlier links,
// a "Caused by:" section lists them most recent first. A single cause is
// printed as is; several causes are numbered from 0.
//
// Any error may be rendered. Errors that are not chain errors render as their
// Error() text. Returns an empty string if err is nil.
func Render(err error) string {
	c := from(err)
	if c == nil {
		return ""
	}
	return c.render()
}

func (e *Error) render() string {
	var b strings.Builder
	b.WriteString(e.Message())
	if e.next == nil {
		return b.String()
	}

	causes := e.next.Chain()
	b.WriteString("\n\nCaused by:")
	for i, cause := range causes {
		b.WriteString("\n")
		b.WriteString(causeIndent)
		if len(causes) > 1 {
			b.WriteString(strconv.Itoa(i))
			b.WriteString(": ")
		}
		b.WriteString(cause)
	}
	return b.String()
}

// Messages returns the text of every link in err's chain, most recent first.
// A non-chain error yields its own text. Returns nil if err is nil.
func Messages(err error) []string {
	c := from(err)
	if c == nil {
		return nil
	}
	return c.Chain()
}
