// Package propagate holds the conversion rules applied at call boundaries.
//
// Go signals an absent value with the comma-ok idiom. These helpers turn that
// signal into whichever error representation the caller expects, in a single
// visible line at the place the absence is observed:
//
//	n, err := propagate.Require(t, key, func() error { return chain.New("key lookup failure") })
//	if err != nil {
//	    return 0, err
//	}
//
// The error type is a type parameter, so a *marker.LookupFailure flows through
// unboxed and keeps its zero-cost property.
//
// Nothing here widens one representation into another. Crossing from marker or
// idnum into a chain error is done with chain.From at the call site.
package propagate

// Getter is the only capability required of a lookup table.
type Getter[K comparable, V any] interface {
	Get(key K) (V, bool)
}

// OkOr returns v and the zero E when ok is true, otherwise the zero V and err.
func OkOr[V, E any](v V, ok bool, err E) (V, E) {
	var zero E
	if !ok {
		var none V
		return none, err
	}
	return v, zero
}

// OkOrElse is like OkOr but only builds the error when ok is false.
func OkOrElse[V, E any](v V, ok bool, fail func() E) (V, E) {
	if !ok {
		var none V
		return none, fail()
	}
	var zero E
	return v, zero
}

// Require looks key up in g and converts an absent key into fail().
func Require[K comparable, V, E any](g Getter[K, V], key K, fail func() E) (V, E) {
	v, ok := g.Get(key)
	return OkOrElse(v, ok, fail)
}

// Ensure returns fail() when cond is false and nil otherwise.
//
// Example:
//
//	if err := propagate.Ensure(n%7 == 0, func() error { return chain.New("not divisible by 7") }); err != nil {
//	    return 0, err
//	}
func Ensure(cond bool, fail func() error) error {
	if cond {
		return nil
	}
	return fail()
}

// Steps runs each step in order and returns the first error, skipping the
// remaining steps.
func Steps(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
