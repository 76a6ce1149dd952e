// Package intdiv provides SIMD-style integer division by a divisor that is
// known at runtime but reused across many dividends.
// This package corresponds to Google Highway's hwy/contrib/intdiv directory.
//
// # Overview
//
// Hardware integer division is 20-100x slower than multiplication. When the
// same divisor is applied across an array, the division can be replaced by a
// precomputed "magic" multiplication plus a small number of shifts and adds,
// following T. Granlund and P. L. Montgomery, "Division by invariant integers
// using multiplication" (PLDI 1994):
// https://gmplib.org/~tege/divcnst-pldi94.pdf
//
// All eight fixed-width integer lane types are supported (8/16/32/64 bits,
// signed and unsigned), with both C-style truncating and Python/NumPy-style
// flooring semantics.
//
// # Core Functions
//
//   - ComputeDivisorParamsU / ComputeDivisorParamsS - derive the multiplier
//     and shifts for a divisor, once
//   - IntDivU / IntDivS - truncating division of a lane vector
//   - IntDivFloorU / IntDivFloorS - flooring division of a lane vector
//   - DivideArrayByScalar / FloorDivideArrayByScalar - divide a whole slice
//     in place
//   - DivideByScalar / FloorDivideByScalar - one-shot division of a single
//     vector
//
// # Example Usage
//
//	import "github.com/ajroetker/go-intdiv/hwy/contrib/intdiv"
//
//	// Divide a slice by 7, in place
//	data := []uint32{0, 7, 14, 100, 4294967295}
//	intdiv.DivideArrayByScalar(data, 7)
//
//	// Reuse the derived parameters across many vectors
//	params := intdiv.ComputeDivisorParamsU[uint32](7)
//	v := hwy.Load(data)
//	q := intdiv.IntDivU(v, params)
//
// # Semantics
//
// Truncating division rounds toward zero (C semantics); flooring division
// rounds toward negative infinity (Python semantics). For unsigned types the
// two coincide. The one signed special case is (minimum value, -1): the true
// quotient is unrepresentable, and both evaluators return the minimum value
// (saturation). Division by zero panics at parameter derivation and at the
// array entry points.
//
// # Power-of-two divisors
//
// Divisors whose magnitude is a power of two skip the multiply entirely:
// unsigned lanes use a logical shift, signed lanes use a biased arithmetic
// shift that truncates toward zero without ever forming |minimum value|.
package intdiv
