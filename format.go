package dinero

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonDecimalBase is returned by [Dinero.ToDecimal] when the currency
// base is not 10: digit extraction in another radix has no unique
// decimal rendering.
var ErrNonDecimalBase = errors.New("non-decimal base")

// ToUnit returns the value converted to major units of the currency,
// rounded to the given number of fractional digits.
// Halves are rounded away from zero, the [math.Round] behavior.
//
// The conversion goes through [Calculator.ToNumber] and is lossy by
// design: use it for display purposes only, never as input to further
// exact arithmetic.
func (d Dinero[T]) ToUnit(digits int) float64 {
	c := d.calc
	unit := c.ToNumber(d.amount) / c.ToNumber(c.Power(d.currency.Base, d.scale))
	factor := math.Pow(10, float64(digits))
	return math.Round(unit*factor) / factor
}

// Formatted is the payload handed to a [ToFormat] transformer: the
// amount in major units at the value's own scale, the currency
// descriptor, and the value itself for transformers that need exact
// arithmetic.
type Formatted[T any] struct {
	Amount   float64
	Currency Currency[T]
	Dinero   Dinero[T]
}

// ToFormat computes the unit-scale amount of the value via
// [Dinero.ToUnit], using the value's own scale as the digit count, and
// hands the resulting [Formatted] payload to the caller-supplied
// transformer.
// ToFormat performs no locale or string logic itself; it is purely the
// bridge between the exact internal representation and a caller-defined
// rendering policy.
//
// ToFormat is a function rather than a method so the transformer can
// choose its own result type.
func ToFormat[T, R any](d Dinero[T], transform func(Formatted[T]) R) R {
	digits := int(d.calc.ToNumber(d.scale))
	return transform(Formatted[T]{Amount: d.ToUnit(digits), Currency: d.currency, Dinero: d})
}

// ToDecimal returns the exact decimal representation of the amount in
// major units, such as "5.00" or "-0.050".
// The rendering is computed digit by digit through the calculator, so
// it stays exact for amounts far beyond float64 precision.
//
// ToDecimal returns an error if the currency base is not 10.
func (d Dinero[T]) ToDecimal() (string, error) {
	c := d.calc
	ten := ValueOf(c, 10)
	if c.Compare(d.currency.Base, ten) != 0 {
		return "", fmt.Errorf("rendering %s amount: %w", d.currency.Code, ErrNonDecimalBase)
	}

	zero := c.Zero()
	v := d.amount
	neg := c.Compare(v, zero) < 0
	if neg {
		v = c.Subtract(zero, v)
	}

	// Digits are extracted least significant first and reversed at the end.
	buf := make([]byte, 0, 32)

	// Fractional digits
	digits := int(c.ToNumber(d.scale))
	for i := 0; i < digits; i++ {
		buf = append(buf, byte(c.ToNumber(c.Modulo(v, ten)))+'0')
		v = c.IntegerDivide(v, ten)
	}
	if digits > 0 {
		buf = append(buf, '.')
	}

	// Integer digits
	if c.Compare(v, zero) == 0 {
		buf = append(buf, '0')
	}
	for c.Compare(v, zero) != 0 {
		buf = append(buf, byte(c.ToNumber(c.Modulo(v, ten)))+'0')
		v = c.IntegerDivide(v, ten)
	}

	// Sign
	if neg {
		buf = append(buf, '-')
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation such as "USD 5.00".
// For the rare non-decimal base the raw amount and scale are shown
// instead of a decimal rendering.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Dinero[T]) String() string {
	if d.calc == nil {
		return "<invalid>"
	}
	s, err := d.ToDecimal()
	if err != nil {
		return fmt.Sprintf("%s %v@%v", d.currency.Code, d.amount, d.scale)
	}
	return d.currency.Code + " " + s
}
