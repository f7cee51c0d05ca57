// Package reporter renders the outcome of a run for a human or a machine at
// the outermost boundary of a program.
//
// It accepts any of the three error representations. Marker and idnum errors
// are turned into a renderable form with chain.From; chain errors keep their
// full "Caused by:" chain.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jmgilman/go/errmodel/chain"
)

// SuccessMessage is printed when a run succeeds.
const SuccessMessage = "Success!"

// Exit statuses returned by Report.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Format selects how outcomes are written.
type Format string

const (
	// FormatText writes "Success!" or "Error: " followed by the rendered chain.
	FormatText Format = "text"

	// FormatJSON writes a Result document.
	FormatJSON Format = "json"
)

// Result is the JSON document written in FormatJSON.
type Result struct {
	Success bool           `json:"success"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

// Reporter writes outcomes to an output stream.
type Reporter struct {
	out    io.Writer
	format Format
}

// New creates a Reporter writing to out in the given format.
// An empty format means FormatText.
func New(out io.Writer, format Format) *Reporter {
	if format == "" {
		format = FormatText
	}
	return &Reporter{out: out, format: format}
}

// Report writes the outcome of a run and returns the exit status.
// An error holding a nil pointer counts as success.
func (r *Reporter) Report(err error) int {
	if chain.IsNil(err) {
		err = nil
	}

	var werr error
	switch r.format {
	case FormatJSON:
		werr = r.writeJSON(err)
	default:
		werr = r.writeText(err)
	}
	if werr != nil || err != nil {
		return ExitFailure
	}
	return ExitSuccess
}

func (r *Reporter) writeText(err error) error {
	if err == nil {
		_, werr := fmt.Fprintln(r.out, SuccessMessage)
		return werr
	}
	_, werr := fmt.Fprintf(r.out, "Error: %s\n", chain.Render(err))
	return werr
}

func (r *Reporter) writeJSON(err error) error {
	res := Result{Success: err == nil, Error: ToJSON(err)}
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if werr := enc.Encode(res); werr != nil {
		return chain.Context(werr, "failed to encode result")
	}
	return nil
}

// Report writes the outcome of a run to out as text and returns the exit
// status.
func Report(out io.Writer, err error) int {
	return New(out, FormatText).Report(err)
}
