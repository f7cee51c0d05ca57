package idnum

// Kind identifies the variant of an Error.
// Kinds are string-based for debuggability and natural JSON serialization.
type Kind string

const (
	// KindUnknown is reported for errors that are not idnum errors and for
	// kinds this release does not know about. An empty Kind reads as unknown.
	KindUnknown Kind = "UNKNOWN"

	// KindLookupFailure indicates the requested id was not present.
	KindLookupFailure Kind = "LOOKUP_FAILURE"

	// KindInvalidNumber indicates the id was present but failed validation.
	// Errors of this kind carry the rejected value.
	KindInvalidNumber Kind = "INVALID_NUMBER"
)

// String returns the kind's name.
func (k Kind) String() string {
	if k == "" {
		return string(KindUnknown)
	}
	return string(k)
}

// HasValue reports whether errors of this kind carry a value.
func (k Kind) HasValue() bool {
	return k == KindInvalidNumber
}
