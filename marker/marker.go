// Package marker provides a zero-cost structured error for hot paths.
//
// LookupFailure is a data-free value with a fixed message. It has size zero,
// so returning a *LookupFailure costs the same as returning a nil pointer:
// no heap allocation and no dispatch through the error interface.
//
// Functions return the concrete pointer type rather than error:
//
//	func find(t propagate.Getter[uint32, uint32], key uint32) (uint32, *marker.LookupFailure)
//
// Widening to error at a boundary is an explicit, visible step through Err or
// chain.From, because it gives up the zero-cost property. Both map a nil
// *LookupFailure to a nil error.
//
// LookupFailure carries no payload and has no invalid-value variant. Callers
// that must report a rejected value need the idnum package.
package marker

// LookupFailure signals that a key was not found.
// All values are indistinguishable.
type LookupFailure struct{}

// Message is the fixed text of every LookupFailure.
const Message = "key lookup failure"

// New returns a LookupFailure. It never allocates.
func New() *LookupFailure {
	return &LookupFailure{}
}

// Error implements the error interface.
func (*LookupFailure) Error() string {
	return Message
}

// Is reports whether target is a LookupFailure.
func (*LookupFailure) Is(target error) bool {
	_, ok := target.(*LookupFailure)
	return ok
}

// Err widens f to error. A nil f yields a nil error rather than a non-nil
// interface holding a nil pointer.
//
// Example:
//
//	n, lf := find(t, key)
//	if err := lf.Err(); err != nil {
//	    return chain.From(err)
//	}
func (f *LookupFailure) Err() error {
	if f == nil {
		return nil
	}
	return f
}
