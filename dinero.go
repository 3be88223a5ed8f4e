package dinero

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCurrencyMismatch is returned when a binary operation is applied to
// amounts denominated in different currencies.
// There is no meaningful unit conversion between currencies, so the
// mismatch is treated as a precondition violation rather than silently
// coerced.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrNilCalculator is returned by constructors when no calculator
// is supplied.
var ErrNilCalculator = errors.New("nil calculator")

// Dinero type represents an immutable monetary value: an amount, the
// currency it is denominated in, and the decimal scale the amount is
// expressed at.
//
// The amount is an integer count of base^scale-ths of the major unit;
// USD 5.00 at scale 2 is the amount 500.
// The scale defaults to the currency's exponent but may be raised to
// express sub-minor-unit precision such as fractional cents.
//
// The amount is opaque to this package: every operation interprets,
// compares, and combines it exclusively through the [Calculator] the
// value was constructed with.
// A Dinero must only ever meet other Dinero values built with the same
// calculator flavor; mixing flavors is undefined behavior.
//
// Dinero values are immutable and safe for concurrent use by multiple
// goroutines.
type Dinero[T any] struct {
	amount   T
	currency Currency[T]
	scale    T
	calc     Calculator[T]
}

// Snapshot is the read-only view of a [Dinero] value returned by
// [Dinero.ToSnapshot].
type Snapshot[T any] struct {
	Amount   T           `json:"amount"`
	Currency Currency[T] `json:"currency"`
	Scale    T           `json:"scale"`
}

// newDineroUnsafe creates a new value without validating the arguments.
// Use it only if you are absolutely sure that the arguments are valid.
func newDineroUnsafe[T any](c Calculator[T], amount T, curr Currency[T], scale T) Dinero[T] {
	return Dinero[T]{amount: amount, currency: curr, scale: scale, calc: c}
}

// New returns a monetary value of the given amount of minor units,
// expressed at the currency's own exponent.
// For example, New(c, 500, USD) is USD 5.00.
//
// New returns an error if:
//   - the calculator is nil;
//   - the currency descriptor is malformed (empty code, base not greater
//     than 1, or negative exponent).
func New[T any](calc Calculator[T], amount T, curr Currency[T]) (Dinero[T], error) {
	if calc == nil {
		return Dinero[T]{}, fmt.Errorf("constructing %s amount: %w", curr.Code, ErrNilCalculator)
	}
	return NewScaled(calc, amount, curr, curr.Exponent)
}

// NewScaled is like [New] but expresses the amount at an explicit scale
// instead of the currency's exponent.
// For example, NewScaled(c, 5000, USD, 3) is USD 5.000, carrying a
// tenth-of-a-cent resolution.
//
// NewScaled returns an error if:
//   - the calculator is nil;
//   - the currency descriptor is malformed;
//   - the scale is negative.
func NewScaled[T any](calc Calculator[T], amount T, curr Currency[T], scale T) (Dinero[T], error) {
	if calc == nil {
		return Dinero[T]{}, fmt.Errorf("constructing %s amount: %w", curr.Code, ErrNilCalculator)
	}
	if err := curr.validate(calc); err != nil {
		return Dinero[T]{}, fmt.Errorf("constructing %s amount: %w", curr.Code, err)
	}
	if calc.Compare(scale, calc.Zero()) < 0 {
		return Dinero[T]{}, fmt.Errorf("constructing %s amount: negative scale", curr.Code)
	}
	return newDineroUnsafe(calc, amount, curr, scale), nil
}

// MustNew is like [New] but panics if the value cannot be constructed.
// It simplifies safe initialization of global variables holding
// monetary values.
func MustNew[T any](calc Calculator[T], amount T, curr Currency[T]) Dinero[T] {
	d, err := New(calc, amount, curr)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %q) failed: %v", amount, curr.Code, err))
	}
	return d
}

// MustNewScaled is like [NewScaled] but panics if the value cannot
// be constructed.
func MustNewScaled[T any](calc Calculator[T], amount T, curr Currency[T], scale T) Dinero[T] {
	d, err := NewScaled(calc, amount, curr, scale)
	if err != nil {
		panic(fmt.Sprintf("NewScaled(%v, %q, %v) failed: %v", amount, curr.Code, scale, err))
	}
	return d
}

// Currency returns the currency descriptor of the value.
func (d Dinero[T]) Currency() Currency[T] {
	return d.currency
}

// Scale returns the number of fractional digits the amount is
// expressed at.
func (d Dinero[T]) Scale() T {
	return d.scale
}

// Calculator returns the calculator the value was constructed with.
func (d Dinero[T]) Calculator() Calculator[T] {
	return d.calc
}

// ToSnapshot returns a read-only copy of the value's amount, currency,
// and scale.
// It is the only way to observe the raw amount; mutating the snapshot
// has no effect on the value it was taken from.
func (d Dinero[T]) ToSnapshot() Snapshot[T] {
	return Snapshot[T]{Amount: d.amount, Currency: d.currency, Scale: d.scale}
}

// MarshalJSON implements the [json.Marshaler] interface and encodes the
// value as its [Snapshot].
// There is no UnmarshalJSON: a calculator cannot be revived from JSON,
// so decoded snapshots must be rehydrated through [NewScaled].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Dinero[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ToSnapshot())
}
