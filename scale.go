package dinero

// normalize re-expresses two amounts at their common (highest) scale so
// they can be compared or combined directly.
// The lower-scale amount is raised exactly, by multiplying it with
// base^(scale difference); the amount already at the common scale passes
// through untouched.
// When both scales are equal no power or multiplication is performed,
// which matters when the backing type is an expensive arbitrary-precision
// one.
func normalize[T any](d, e Dinero[T]) (a, b, scale T) {
	c := d.calc
	switch c.Compare(d.scale, e.scale) {
	case 0:
		return d.amount, e.amount, d.scale
	case -1:
		factor := c.Power(d.currency.Base, c.Subtract(e.scale, d.scale))
		return c.Multiply(d.amount, factor), e.amount, e.scale
	default:
		factor := c.Power(d.currency.Base, c.Subtract(d.scale, e.scale))
		return d.amount, c.Multiply(e.amount, factor), d.scale
	}
}

// TransformScale returns the value re-expressed at the given scale.
// Raising the scale is exact: the amount is multiplied by
// base^(scale difference).
// Lowering the scale truncates toward zero, so sub-minor-unit precision
// beyond the new scale is discarded.
func (d Dinero[T]) TransformScale(scale T) Dinero[T] {
	c := d.calc
	switch c.Compare(scale, d.scale) {
	case 0:
		return d
	case 1:
		factor := c.Power(d.currency.Base, c.Subtract(scale, d.scale))
		return newDineroUnsafe(c, c.Multiply(d.amount, factor), d.currency, scale)
	default:
		factor := c.Power(d.currency.Base, c.Subtract(d.scale, scale))
		return newDineroUnsafe(c, c.IntegerDivide(d.amount, factor), d.currency, scale)
	}
}

// TrimScale returns the value at the smallest scale that preserves it
// exactly, never going below the currency's exponent.
// For example, USD 5.00 expressed as 50000 at scale 4 trims to 500 at
// scale 2, while 50010 at scale 4 trims to 5001 at scale 3.
func (d Dinero[T]) TrimScale() Dinero[T] {
	c := d.calc
	amount, scale := d.amount, d.scale
	for c.Compare(scale, d.currency.Exponent) > 0 &&
		c.Compare(c.Modulo(amount, d.currency.Base), c.Zero()) == 0 {
		amount = c.IntegerDivide(amount, d.currency.Base)
		scale = c.Decrement(scale)
	}
	return newDineroUnsafe(c, amount, d.currency, scale)
}
