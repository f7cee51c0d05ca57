// Package demo contains call sites that exercise the three error
// representations side by side.
//
// The id number lookup is written three times, once per representation:
//
//   - AccessMap1 returns chain errors. It is the quickest to write and suits
//     code whose errors are only ever printed.
//   - AccessMap2 returns *marker.LookupFailure. It never allocates, but it can
//     only say that the key was missing: it has no way to report an invalid
//     value and therefore does not validate.
//   - AccessMap3 returns idnum errors that callers can switch on.
//
// OpenFile1 and OpenFile2 show chain errors wrapping filesystem and parse
// failures.
package demo
