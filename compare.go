package dinero

import "fmt"

// Cmp compares two values denominated in the same currency and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
//
// The amounts are first brought to a common scale, so values that differ
// only in scale compare as equal.
//
// Cmp returns an error if the values are denominated in different
// currencies.
func (d Dinero[T]) Cmp(e Dinero[T]) (int, error) {
	if !d.currency.SameCurrency(e.currency) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", d, e, ErrCurrencyMismatch)
	}
	a, b, _ := normalize(d, e)
	return d.calc.Compare(a, b), nil
}

// Equal returns true if both values are denominated in the same currency
// and represent the same amount once brought to a common scale.
// Unlike the ordering methods, Equal is total: values in different
// currencies are simply not equal, and no error is raised.
func (d Dinero[T]) Equal(e Dinero[T]) bool {
	if !d.currency.SameCurrency(e.currency) {
		return false
	}
	a, b, _ := normalize(d, e)
	return d.calc.Compare(a, b) == 0
}

// GreaterThan returns true if d is strictly greater than e.
//
// GreaterThan returns an error if the values are denominated in
// different currencies: ordering across currencies is meaningless
// without a conversion rate, so it is a precondition violation rather
// than a boolean outcome.
func (d Dinero[T]) GreaterThan(e Dinero[T]) (bool, error) {
	c, err := d.Cmp(e)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// GreaterThanOrEqual returns true if d is greater than or equal to e.
//
// GreaterThanOrEqual returns an error if the values are denominated in
// different currencies.
func (d Dinero[T]) GreaterThanOrEqual(e Dinero[T]) (bool, error) {
	c, err := d.Cmp(e)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}

// LessThan returns true if d is strictly less than e.
//
// LessThan returns an error if the values are denominated in
// different currencies.
func (d Dinero[T]) LessThan(e Dinero[T]) (bool, error) {
	c, err := d.Cmp(e)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// LessThanOrEqual returns true if d is less than or equal to e.
//
// LessThanOrEqual returns an error if the values are denominated in
// different currencies.
func (d Dinero[T]) LessThanOrEqual(e Dinero[T]) (bool, error) {
	c, err := d.Cmp(e)
	if err != nil {
		return false, err
	}
	return c <= 0, nil
}

// IsNegative returns:
//
//	true  if d < 0
//	false otherwise
//
// Zero is scale-invariant, so no normalization is involved.
func (d Dinero[T]) IsNegative() bool {
	return d.calc.Compare(d.amount, d.calc.Zero()) < 0
}

// IsPositive returns:
//
//	true  if d > 0
//	false otherwise
func (d Dinero[T]) IsPositive() bool {
	return d.calc.Compare(d.amount, d.calc.Zero()) > 0
}

// IsZero returns:
//
//	true  if d = 0
//	false otherwise
func (d Dinero[T]) IsZero() bool {
	return d.calc.Compare(d.amount, d.calc.Zero()) == 0
}

// HaveSameCurrency returns true if all the given values are denominated
// in the same currency.
// It returns true for an empty or single-element input.
func HaveSameCurrency[T any](ds ...Dinero[T]) bool {
	for i := 1; i < len(ds); i++ {
		if !ds[0].currency.SameCurrency(ds[i].currency) {
			return false
		}
	}
	return true
}

// HaveSameAmount returns true if all the given values represent the same
// amount once brought to a common scale, regardless of currency.
// It returns true for an empty or single-element input.
func HaveSameAmount[T any](ds ...Dinero[T]) bool {
	for i := 1; i < len(ds); i++ {
		a, b, _ := normalize(ds[0], ds[i])
		if ds[0].calc.Compare(a, b) != 0 {
			return false
		}
	}
	return true
}

// Minimum returns the smallest of the given values.
//
// Minimum returns an error if no values are given or if the values are
// denominated in different currencies.
func Minimum[T any](ds ...Dinero[T]) (Dinero[T], error) {
	return pick(ds, -1)
}

// Maximum returns the largest of the given values.
//
// Maximum returns an error if no values are given or if the values are
// denominated in different currencies.
func Maximum[T any](ds ...Dinero[T]) (Dinero[T], error) {
	return pick(ds, 1)
}

func pick[T any](ds []Dinero[T], sign int) (Dinero[T], error) {
	if len(ds) == 0 {
		return Dinero[T]{}, fmt.Errorf("picking from empty input")
	}
	best := ds[0]
	for _, d := range ds[1:] {
		c, err := d.Cmp(best)
		if err != nil {
			return Dinero[T]{}, err
		}
		if c == sign {
			best = d
		}
	}
	return best, nil
}
