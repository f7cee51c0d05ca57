// Package idnum provides an extensible enumerated error for id number lookups.
//
// Error is a tagged variant: its Kind names the failure and some kinds carry
// data. Callers branch on Kind:
//
//	switch idnum.KindOf(err) {
//	case idnum.KindLookupFailure:
//	    // ask for another id
//	case idnum.KindInvalidNumber:
//	    n, _ := e.Value()
//	default:
//	    // unknown kinds, including ones added in later releases
//	}
//
// # Extensibility
//
// The set of kinds is open for extension. New kinds may be added without a
// major version bump, so every switch on Kind should carry a default arm.
// This is a convention and is not enforced by the compiler. KindOf returns
// KindUnknown for errors that are not idnum errors, which lands in the same
// default arm.
package idnum
