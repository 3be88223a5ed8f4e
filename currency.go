package dinero

import "errors"

// ErrInvalidCurrency is returned by constructors when a currency
// descriptor is malformed.
var ErrInvalidCurrency = errors.New("invalid currency")

// Currency describes the unit a monetary amount is denominated in.
// Code is the [ISO 4217] alphabetic code, Base the radix of the currency's
// subdivision (10 for virtually all modern currencies), and Exponent the
// number of fractional digits implied by the currency's minor unit
// (2 for US cents, 0 for Japanese yen, 3 for Omani baisa).
//
// Base and Exponent are values of the amount's numeric type so that a
// descriptor can be paired with any calculator flavor.
// Descriptors are immutable; the currencies subpackage carries a
// ready-made ISO table.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency[T any] struct {
	Code     string `json:"code"`
	Base     T      `json:"base"`
	Exponent T      `json:"exponent"`
}

// SameCurrency returns true if both descriptors carry the same
// ISO 4217 code.
// Base and Exponent are not consulted: two descriptors with the same
// code are assumed to describe the same currency.
func (c Currency[T]) SameCurrency(o Currency[T]) bool {
	return c.Code == o.Code
}

// validate checks a descriptor against a calculator: the code must be
// non-empty, the base greater than 1, and the exponent non-negative.
func (c Currency[T]) validate(calc Calculator[T]) error {
	if c.Code == "" {
		return ErrInvalidCurrency
	}
	one := calc.Increment(calc.Zero())
	if calc.Compare(c.Base, one) <= 0 {
		return ErrInvalidCurrency
	}
	if calc.Compare(c.Exponent, calc.Zero()) < 0 {
		return ErrInvalidCurrency
	}
	return nil
}
