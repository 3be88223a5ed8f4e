/*
Package dinero implements immutable monetary values over a pluggable
numeric backend.
A value carries an amount, a currency descriptor, and a decimal scale,
and every operation on it is expressed through a small [Calculator]
capability set, so the same semantics hold whether the amount is backed
by a native integer, an arbitrary-precision integer, or a third-party
decimal type.

# Representation

A [Dinero] value consists of an amount of the generic numeric type, a
[Currency] descriptor (code, base, exponent), and a scale.
The amount is an integer count of base^scale-ths of the currency's major
unit: USD 5.00 is the amount 500 at scale 2.
The scale defaults to the currency's exponent but may be raised to carry
sub-minor-unit precision such as fractional cents.

# Calculators

Arithmetic never touches built-in operators on the amount.
Instead, each value is paired at construction time with a [Calculator],
a stateless capability table of numeric primitives.
The calc subpackages provide ready-made flavors backed by int64,
math/big, github.com/govalues/decimal, and github.com/shopspring/decimal.
Values built with different calculator flavors must never meet in one
operation.

# Scale normalization

Binary operations on values whose scales differ first raise the
lower-scale amount to the higher scale by an exact multiplication with
base^(scale difference).
Comparisons and sums are therefore well-defined across scales:
USD 5.00 at scale 2 equals USD 5.000 at scale 3.

# Operations

The package provides comparison (Equal, GreaterThan, LessThan, Cmp,
IsNegative and friends), arithmetic (Add, Subtract, Multiply, Negate,
Allocate), scale adjustment (TransformScale, TrimScale), and
display-oriented conversion (ToUnit, ToDecimal, ToFormat).
All of them return new values; nothing is ever mutated.

# Errors

Ordering and arithmetic across different currencies fail with
[ErrCurrencyMismatch]; there is no meaningful conversion between
currencies, so a mismatch is a programming error.
[Dinero.Equal] is the deliberate exception: values in different
currencies are simply not equal.
Division by zero and non-integer amounts are caller precondition
violations surfaced by the underlying numeric type.
*/
package dinero
