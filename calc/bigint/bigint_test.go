package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_Compare(t *testing.T) {
	c := Calculator{}
	assert.Equal(t, -1, c.Compare(Value(1), Value(2)))
	assert.Equal(t, 0, c.Compare(Value(2), Value(2)))
	assert.Equal(t, 1, c.Compare(Value(2), Value(1)))
}

func TestCalculator_Arithmetic(t *testing.T) {
	c := Calculator{}
	assert.Zero(t, c.Zero().Sign())
	assert.Equal(t, Value(1), c.Increment(c.Zero()))
	assert.Equal(t, Value(-1), c.Decrement(c.Zero()))
	assert.Equal(t, Value(5), c.Add(Value(2), Value(3)))
	assert.Equal(t, Value(-1), c.Subtract(Value(2), Value(3)))
	assert.Equal(t, Value(6), c.Multiply(Value(2), Value(3)))
}

func TestCalculator_Division(t *testing.T) {
	c := Calculator{}
	cases := []struct{ a, b int64 }{
		{7, 2}, {-7, 2}, {7, -2}, {-7, -2}, {0, 3}, {1, 10},
	}
	for _, tc := range cases {
		a, b := Value(tc.a), Value(tc.b)
		q := c.IntegerDivide(a, b)
		r := c.Modulo(a, b)
		// Truncated division: a = q*b + r, with r carrying the sign of a.
		assert.Equal(t, a, c.Add(c.Multiply(q, b), r), "a=%d b=%d", tc.a, tc.b)
		if r.Sign() != 0 {
			assert.Equal(t, tc.a < 0, r.Sign() < 0, "a=%d b=%d", tc.a, tc.b)
		}
	}
	assert.Equal(t, Value(-3), c.IntegerDivide(Value(-7), Value(2)))
	assert.Equal(t, Value(-1), c.Modulo(Value(-7), Value(2)))
}

func TestCalculator_Power(t *testing.T) {
	c := Calculator{}
	assert.Equal(t, Value(1), c.Power(Value(10), Value(0)))
	assert.Equal(t, Value(100000), c.Power(Value(10), Value(5)))

	// Exceeds int64, which is the point of this flavor.
	got := c.Power(Value(10), Value(30))
	want, ok := new(big.Int).SetString("1000000000000000000000000000000", 10)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestCalculator_NoMutation(t *testing.T) {
	c := Calculator{}
	a, b := Value(2), Value(3)
	c.Add(a, b)
	c.Multiply(a, b)
	c.Subtract(a, b)
	c.IntegerDivide(a, b)
	assert.Equal(t, Value(2), a)
	assert.Equal(t, Value(3), b)
}

func TestCalculator_ToNumber(t *testing.T) {
	c := Calculator{}
	assert.Equal(t, 500.0, c.ToNumber(Value(500)))
	assert.Equal(t, -1.0, c.ToNumber(Value(-1)))
}
