package intdiv

import "github.com/ajroetker/go-intdiv/hwy"

// Scalar reference semantics. These define the contract the lane
// evaluators are tested against; they are not on the hot path.

// TruncDiv returns a / d with C truncation-toward-zero semantics.
// d must be nonzero. For signed types, (minimum value, -1) follows Go's
// defined wrapping behavior and yields the minimum value.
func TruncDiv[T hwy.Integers](a, d T) T {
	return a / d
}

// FloorDiv returns a / d rounded toward negative infinity (Python/NumPy
// semantics). d must be nonzero. For unsigned types this is identical to
// TruncDiv. (minimum value, -1) yields the minimum value, matching the
// lane evaluators' saturating behavior.
func FloorDiv[T hwy.Integers](a, d T) T {
	q := a / d
	if a%d != 0 && (a < 0) != (d < 0) {
		q--
	}
	return q
}
