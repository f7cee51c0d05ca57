package chain

import (
	"encoding/json"
)

// jsonView is the serialized form of a chain error.
type jsonView struct {
	// Message is the most recent link.
	Message string `json:"message"`

	// Causes lists the earlier links, most recent first.
	// Omitted from JSON if empty.
	Causes []string `json:"causes,omitempty"`
}

// MarshalJSON implements json.Marshaler for Error.
//
// Example:
//
//	err := chain.Context(chain.New("file does not exist"), "failed to open")
//	data, _ := json.Marshal(err)
//	// Output: {"message":"failed to open","causes":["file does not exist"]}
func (e *Error) MarshalJSON() ([]byte, error) {
	view := jsonView{Message: e.Message()}
	if e.next != nil {
		view.Causes = e.next.Chain()
	}
	return json.Marshal(view)
}
