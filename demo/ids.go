package demo

import (
	"github.com/jmgilman/go/errmodel/chain"
	"github.com/jmgilman/go/errmodel/idnum"
	"github.com/jmgilman/go/errmodel/marker"
	"github.com/jmgilman/go/errmodel/propagate"
)

// IDTable is the lookup capability the id call sites need.
type IDTable = propagate.Getter[uint32, uint32]

// AccessMap1 looks key up and validates the id, reporting both failures as
// chain errors.
func AccessMap1(t IDTable, key uint32) (uint32, error) {
	n, err := propagate.Require(t, key, func() error { return chain.New("key lookup failure") })
	if err != nil {
		return 0, err
	}

	if err := propagate.Ensure(idnum.IsValid(n), func() error { return chain.New("not divisible by 7") }); err != nil {
		return 0, err
	}
	return n, nil
}

// AccessMap2 looks key up without allocating. It does not validate the id:
// a LookupFailure has no way to carry the rejected value.
func AccessMap2(t IDTable, key uint32) (uint32, *marker.LookupFailure) {
	n, lf := propagate.Require(t, key, marker.New)
	if lf != nil {
		return 0, lf
	}
	return n, nil
}

// AccessMap3 looks key up and validates the id, reporting failures as idnum
// errors.
func AccessMap3(t IDTable, key uint32) (uint32, error) {
	n, lf := propagate.Require(t, key, idnum.NewLookupFailure)
	if lf != nil {
		return 0, lf
	}
	return idnum.Validate(n)
}
