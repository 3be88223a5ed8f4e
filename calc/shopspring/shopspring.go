// Package shopspring provides a calculator backed by
// github.com/shopspring/decimal.
// Amounts must be integer-valued decimals; the backing big.Int
// coefficient makes the range effectively unbounded.
package shopspring

import "github.com/shopspring/decimal"

// Calculator implements the dinero calculator capability set over
// decimal.Decimal values.
type Calculator struct{}

// Value returns n as an integer decimal.
func Value(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

var one = decimal.NewFromInt(1)

func (Calculator) Zero() decimal.Decimal { return decimal.Zero }

func (Calculator) Increment(v decimal.Decimal) decimal.Decimal { return v.Add(one) }

func (Calculator) Decrement(v decimal.Decimal) decimal.Decimal { return v.Sub(one) }

func (Calculator) Compare(a, b decimal.Decimal) int { return a.Cmp(b) }

func (Calculator) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }

func (Calculator) Subtract(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }

func (Calculator) Multiply(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }

// IntegerDivide truncates toward zero.
func (Calculator) IntegerDivide(a, b decimal.Decimal) decimal.Decimal {
	q, _ := a.QuoRem(b, 0)
	return q
}

// Modulo has the sign of the dividend, consistent with IntegerDivide.
func (Calculator) Modulo(a, b decimal.Decimal) decimal.Decimal {
	_, r := a.QuoRem(b, 0)
	return r
}

// Power raises base to exp by binary exponentiation.
// The exponent is integer-valued and non-negative.
func (Calculator) Power(base, exp decimal.Decimal) decimal.Decimal {
	n := exp.IntPart()
	r := one
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			r = r.Mul(base)
		}
		if n > 1 {
			base = base.Mul(base)
		}
	}
	return r
}

func (Calculator) ToNumber(v decimal.Decimal) float64 { return v.InexactFloat64() }
