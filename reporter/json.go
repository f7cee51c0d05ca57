package reporter

import (
	stderrors "errors"

	"github.com/jmgilman/go/errmodel/chain"
	"github.com/jmgilman/go/errmodel/idnum"
	"github.com/jmgilman/go/errmodel/marker"
)

// KindUnknown is reported for errors that carry no kind.
const KindUnknown = "UNKNOWN"

// ErrorResponse is a flat, serializable view of an error.
type ErrorResponse struct {
	// Kind names the failure: an idnum kind, LOOKUP_FAILURE for marker
	// errors, or UNKNOWN.
	Kind string `json:"kind"`

	// Message is the most recent message of the chain.
	Message string `json:"message"`

	// Value is the rejected value for kinds that carry one.
	// Omitted from JSON if absent.
	Value *uint32 `json:"value,omitempty"`

	// Causes lists the earlier messages, most recent first.
	// Omitted from JSON if empty.
	Causes []string `json:"causes,omitempty"`
}

// ToJSON converts any error to an ErrorResponse.
// Returns nil if err is nil or holds a nil pointer.
func ToJSON(err error) *ErrorResponse {
	msgs := chain.Messages(err)
	if len(msgs) == 0 {
		return nil
	}

	resp := &ErrorResponse{
		Kind:    KindOf(err),
		Message: msgs[0],
	}
	if len(msgs) > 1 {
		resp.Causes = msgs[1:]
	}
	if v, ok := idnum.ValueOf(err); ok {
		resp.Value = &v
	}
	return resp
}

// KindOf names the kind of the first typed error in err's chain.
func KindOf(err error) string {
	if k := idnum.KindOf(err); k != idnum.KindUnknown {
		return k.String()
	}
	var lf *marker.LookupFailure
	if stderrors.As(err, &lf) {
		return string(idnum.KindLookupFailure)
	}
	return KindUnknown
}
