// Package integer provides a calculator backed by native int64 amounts.
// It is the cheapest flavor and covers amounts up to roughly 92 quadrillion
// minor units; overflow wraps silently, as int64 arithmetic does.
package integer

// Calculator implements the dinero calculator capability set over int64.
type Calculator struct{}

// Value returns n itself. It exists for symmetry with the other
// calculator flavors.
func Value(n int64) int64 { return n }

func (Calculator) Zero() int64 { return 0 }

func (Calculator) Increment(v int64) int64 { return v + 1 }

func (Calculator) Decrement(v int64) int64 { return v - 1 }

func (Calculator) Compare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (Calculator) Add(a, b int64) int64 { return a + b }

func (Calculator) Subtract(a, b int64) int64 { return a - b }

func (Calculator) Multiply(a, b int64) int64 { return a * b }

// IntegerDivide truncates toward zero, which is Go's native
// integer division.
func (Calculator) IntegerDivide(a, b int64) int64 { return a / b }

// Modulo has the sign of the dividend, which is Go's native remainder.
func (Calculator) Modulo(a, b int64) int64 { return a % b }

func (Calculator) Power(base, exp int64) int64 {
	r := int64(1)
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			r *= base
		}
		base *= base
	}
	return r
}

func (Calculator) ToNumber(v int64) float64 { return float64(v) }
