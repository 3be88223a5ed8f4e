package dinero

import "fmt"

// Add returns the sum of values d and e.
// The amounts are first brought to a common scale; the result carries
// the higher of the two scales.
//
// Add returns an error if the values are denominated in
// different currencies.
func (d Dinero[T]) Add(e Dinero[T]) (Dinero[T], error) {
	if !d.currency.SameCurrency(e.currency) {
		return Dinero[T]{}, fmt.Errorf("computing [%v + %v]: %w", d, e, ErrCurrencyMismatch)
	}
	a, b, scale := normalize(d, e)
	return newDineroUnsafe(d.calc, d.calc.Add(a, b), d.currency, scale), nil
}

// Subtract returns the difference between values d and e.
// The amounts are first brought to a common scale; the result carries
// the higher of the two scales.
//
// Subtract returns an error if the values are denominated in
// different currencies.
func (d Dinero[T]) Subtract(e Dinero[T]) (Dinero[T], error) {
	if !d.currency.SameCurrency(e.currency) {
		return Dinero[T]{}, fmt.Errorf("computing [%v - %v]: %w", d, e, ErrCurrencyMismatch)
	}
	a, b, scale := normalize(d, e)
	return newDineroUnsafe(d.calc, d.calc.Subtract(a, b), d.currency, scale), nil
}

// Multiply returns the value scaled by the integer factor.
// The scale is unchanged.
func (d Dinero[T]) Multiply(factor T) Dinero[T] {
	return newDineroUnsafe(d.calc, d.calc.Multiply(d.amount, factor), d.currency, d.scale)
}

// Negate returns a value with the opposite sign.
func (d Dinero[T]) Negate() Dinero[T] {
	c := d.calc
	return newDineroUnsafe(c, c.Subtract(c.Zero(), d.amount), d.currency, d.scale)
}

// Absolute returns the absolute value.
func (d Dinero[T]) Absolute() Dinero[T] {
	if d.IsNegative() {
		return d.Negate()
	}
	return d
}

// Allocate distributes the value across the given ratios, returning one
// share per ratio, in order, that sum exactly to the original value.
// Each share starts as the truncated proportional part; whatever minor
// units remain are then handed out one at a time to the earliest shares,
// so earlier shares may exceed later ones by a single unit.
// For a negative value the leftover units are negative and are handed
// out the same way.
//
// Allocate returns an error if no ratios are given, if any ratio is
// negative, or if all ratios are zero.
func (d Dinero[T]) Allocate(ratios ...T) ([]Dinero[T], error) {
	r, err := d.allocate(ratios)
	if err != nil {
		return nil, fmt.Errorf("allocating %v across %v ratios: %w", d, len(ratios), err)
	}
	return r, nil
}

func (d Dinero[T]) allocate(ratios []T) ([]Dinero[T], error) {
	c := d.calc
	if len(ratios) == 0 {
		return nil, fmt.Errorf("no ratios")
	}

	// Ratio total
	total := c.Zero()
	for _, r := range ratios {
		if c.Compare(r, c.Zero()) < 0 {
			return nil, fmt.Errorf("negative ratio")
		}
		total = c.Add(total, r)
	}
	if c.Compare(total, c.Zero()) == 0 {
		return nil, fmt.Errorf("zero ratio total")
	}

	// Truncated proportional shares
	shares := make([]T, len(ratios))
	spent := c.Zero()
	for i, r := range ratios {
		shares[i] = c.IntegerDivide(c.Multiply(d.amount, r), total)
		spent = c.Add(spent, shares[i])
	}

	// Leftover distribution, one minor unit at a time
	left := c.Subtract(d.amount, spent)
	for i := 0; c.Compare(left, c.Zero()) != 0; i = (i + 1) % len(shares) {
		// Zero-ratio shares stay exactly zero.
		if c.Compare(ratios[i], c.Zero()) == 0 {
			continue
		}
		if c.Compare(left, c.Zero()) > 0 {
			shares[i] = c.Increment(shares[i])
			left = c.Decrement(left)
		} else {
			shares[i] = c.Decrement(shares[i])
			left = c.Increment(left)
		}
	}

	res := make([]Dinero[T], len(shares))
	for i, s := range shares {
		res[i] = newDineroUnsafe(c, s, d.currency, d.scale)
	}
	return res, nil
}
