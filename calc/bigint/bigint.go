// Package bigint provides a calculator backed by math/big integers.
// It never overflows and is the flavor to reach for when amounts exceed
// the int64 range, at the cost of allocation per operation.
//
// The calculator never mutates its operands: every method returns a
// freshly allocated big.Int, so amounts stay safe to share.
package bigint

import "math/big"

// Calculator implements the dinero calculator capability set
// over *big.Int.
type Calculator struct{}

// Value returns n as a big integer.
func Value(n int64) *big.Int { return big.NewInt(n) }

var one = big.NewInt(1)

func (Calculator) Zero() *big.Int { return new(big.Int) }

func (Calculator) Increment(v *big.Int) *big.Int { return new(big.Int).Add(v, one) }

func (Calculator) Decrement(v *big.Int) *big.Int { return new(big.Int).Sub(v, one) }

func (Calculator) Compare(a, b *big.Int) int { return a.Cmp(b) }

func (Calculator) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }

func (Calculator) Subtract(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }

func (Calculator) Multiply(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

// IntegerDivide truncates toward zero (big.Int.Quo, T-division).
func (Calculator) IntegerDivide(a, b *big.Int) *big.Int { return new(big.Int).Quo(a, b) }

// Modulo has the sign of the dividend (big.Int.Rem, T-division).
func (Calculator) Modulo(a, b *big.Int) *big.Int { return new(big.Int).Rem(a, b) }

func (Calculator) Power(base, exp *big.Int) *big.Int { return new(big.Int).Exp(base, exp, nil) }

func (Calculator) ToNumber(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}
