// Package govalues provides a calculator backed by
// github.com/govalues/decimal.
// Amounts must be integer-valued decimals; the library's 19-digit
// coefficient bounds the representable range, and exceeding it
// panics the way the decimal package's Must variants do.
package govalues

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Calculator implements the dinero calculator capability set over
// decimal.Decimal values.
type Calculator struct{}

// Value returns n as an integer decimal.
// It panics if n cannot be represented, mirroring decimal.MustParse.
func Value(n int64) decimal.Decimal {
	d, err := decimal.New(n, 0)
	if err != nil {
		panic(fmt.Sprintf("Value(%v) failed: %v", n, err))
	}
	return d
}

func (Calculator) Zero() decimal.Decimal { return decimal.Decimal{} }

func (Calculator) Increment(v decimal.Decimal) decimal.Decimal {
	return must(v.Add(Value(1)))
}

func (Calculator) Decrement(v decimal.Decimal) decimal.Decimal {
	return must(v.Sub(Value(1)))
}

func (Calculator) Compare(a, b decimal.Decimal) int { return a.Cmp(b) }

func (Calculator) Add(a, b decimal.Decimal) decimal.Decimal { return must(a.Add(b)) }

func (Calculator) Subtract(a, b decimal.Decimal) decimal.Decimal { return must(a.Sub(b)) }

func (Calculator) Multiply(a, b decimal.Decimal) decimal.Decimal { return must(a.Mul(b)) }

// IntegerDivide truncates the exact quotient toward zero.
func (Calculator) IntegerDivide(a, b decimal.Decimal) decimal.Decimal {
	return must(a.Quo(b)).Trunc(0)
}

// Modulo returns a - IntegerDivide(a, b)*b, so the remainder has the
// sign of the dividend.
func (c Calculator) Modulo(a, b decimal.Decimal) decimal.Decimal {
	return must(a.Sub(must(c.IntegerDivide(a, b).Mul(b))))
}

// Power raises base to exp by binary exponentiation over exact
// multiplications. The exponent is integer-valued and non-negative.
func (c Calculator) Power(base, exp decimal.Decimal) decimal.Decimal {
	f, _ := exp.Float64()
	n := int(f)
	r := Value(1)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			r = must(r.Mul(base))
		}
		if n > 1 {
			base = must(base.Mul(base))
		}
	}
	return r
}

func (Calculator) ToNumber(v decimal.Decimal) float64 {
	f, _ := v.Float64()
	return f
}

func must(d decimal.Decimal, err error) decimal.Decimal {
	if err != nil {
		panic(fmt.Sprintf("decimal operation failed: %v", err))
	}
	return d
}
