package idnum

// Divisor is the number every valid id is a multiple of.
const Divisor = 7

// IsValid reports whether n is a valid id number.
func IsValid(n uint32) bool {
	return n%Divisor == 0
}

// Validate returns n if it is a valid id number, otherwise an error of
// KindInvalidNumber carrying n.
func Validate(n uint32) (uint32, error) {
	if !IsValid(n) {
		return 0, NewInvalidNumber(n)
	}
	return n, nil
}
