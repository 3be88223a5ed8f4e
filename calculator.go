package dinero

// Calculator is the capability set a numeric type must provide to back
// a monetary amount.
// Every operation in this package performs arithmetic exclusively through
// a Calculator, never through built-in operators, so that amounts backed
// by native integers, arbitrary-precision integers, and third-party
// decimal types behave identically.
//
// All methods are pure: they never mutate their operands and always
// return fresh values.
// No method returns an error.
// Division by zero is a caller-side precondition violation; a calculator
// is free to propagate whatever failure its backing type produces,
// typically a panic.
// Implementations over bounded types may also panic on overflow.
//
// A calculator must be stateless and safe for concurrent use by multiple
// goroutines.
type Calculator[T any] interface {
	// Zero returns the additive identity.
	Zero() T

	// Increment returns v + 1.
	Increment(v T) T

	// Decrement returns v - 1.
	Decrement(v T) T

	// Compare compares a and b and returns:
	//
	//	-1 if a < b
	//	 0 if a = b
	//	+1 if a > b
	Compare(a, b T) int

	// Add returns the sum a + b.
	Add(a, b T) T

	// Subtract returns the difference a - b.
	Subtract(a, b T) T

	// Multiply returns the product a * b.
	Multiply(a, b T) T

	// IntegerDivide returns the quotient a / b truncated toward zero.
	// The divisor b is never zero on a well-formed call.
	IntegerDivide(a, b T) T

	// Modulo returns the remainder of a / b, consistent with
	// [Calculator.IntegerDivide]:
	//
	//	a = IntegerDivide(a, b) * b + Modulo(a, b)
	//
	// The remainder has the sign of the dividend a.
	Modulo(a, b T) T

	// Power returns base raised to exp.
	// The exponent is always a non-negative integer value.
	Power(base, exp T) T

	// ToNumber converts v to the nearest float64.
	// The conversion may lose precision and is used only for
	// display-oriented outputs, never for further exact arithmetic.
	ToNumber(v T) float64
}

// ValueOf derives the value of n in the calculator's numeric type using
// only the calculator's own primitives, so it works uniformly for every
// backend.
// It is the bridge used to build currency bases, exponents, and scales.
//
// The value is assembled by binary doubling, so the cost is logarithmic
// in n.
func ValueOf[T any](c Calculator[T], n int64) T {
	neg := n < 0
	if neg {
		n = -n
	}
	v := c.Zero()
	for mask := highBit(n); mask != 0; mask >>= 1 {
		v = c.Add(v, v)
		if n&mask != 0 {
			v = c.Increment(v)
		}
	}
	if neg {
		v = c.Subtract(c.Zero(), v)
	}
	return v
}

// highBit returns the most significant set bit of n, or 0 if n is 0.
func highBit(n int64) int64 {
	var mask int64
	for b := int64(1); b > 0 && b <= n; b <<= 1 {
		mask = b
	}
	return mask
}
