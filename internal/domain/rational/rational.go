// Package rational implements rational numbers behind a constructor/selector
// barrier. Values are kept in lowest terms with a positive denominator, so two
// rationals with the same value compare equal with ==.
package rational

import (
	"fmt"
	"math"

	"github.com/alem-hub/data-abstraction/internal/domain/shared"
	"github.com/alem-hub/data-abstraction/pkg/intmath"
)

// Rational is an immutable rational number n/d.
// The zero value is not a valid rational; use New.
type Rational struct {
	num int64
	den int64
}

// New returns n/d reduced to lowest terms with a positive denominator.
// It fails with an ErrInvalidArgument kind error when d is zero.
func New(n, d int64) (Rational, error) {
	if d == 0 {
		return Rational{}, shared.ErrZeroDenominator
	}
	if n == 0 {
		return Rational{num: 0, den: 1}, nil
	}

	g := intmath.GCD(n, d)
	if g > math.MaxInt64 {
		// Only n == d == MinInt64 gets here.
		return Rational{num: 1, den: 1}, nil
	}
	n /= int64(g)
	d /= int64(g)

	if d < 0 {
		if n == math.MinInt64 || d == math.MinInt64 {
			return Rational{}, shared.ErrUnrepresentable
		}
		n, d = -n, -d
	}
	return Rational{num: n, den: d}, nil
}

// Numerator returns the numerator in lowest terms. Its sign is the sign of r.
func (r Rational) Numerator() int64 {
	return r.num
}

// Denominator returns the denominator in lowest terms. It is always positive.
func (r Rational) Denominator() int64 {
	return r.den
}

// Numerator returns r's numerator.
func Numerator(r Rational) int64 {
	return r.Numerator()
}

// Denominator returns r's denominator.
func Denominator(r Rational) int64 {
	return r.Denominator()
}

// Multiply returns a*b. It is written only in terms of New and the selectors.
// Common factors are cancelled crosswise first, so it panics with
// ErrProductOverflow only when the reduced product does not fit in int64.
func Multiply(a, b Rational) Rational {
	n1, d1 := Numerator(a), Denominator(a)
	n2, d2 := Numerator(b), Denominator(b)

	// Denominators are positive, so both gcds fit in int64 and are nonzero.
	g1 := int64(intmath.GCD(n1, d2))
	g2 := int64(intmath.GCD(n2, d1))

	n, okN := intmath.MulChecked(n1/g1, n2/g2)
	d, okD := intmath.MulChecked(d1/g2, d2/g1)
	if !okN || !okD {
		panic(shared.ErrProductOverflow)
	}

	r, err := New(n, d)
	if err != nil {
		panic(shared.WrapError("rational", "Multiply", shared.ErrContractViolation, "operand not built by New", err))
	}
	return r
}

// IsZero reports whether r is 0/1.
func (r Rational) IsZero() bool {
	return r.num == 0
}

// Equal reports whether r and other have the same value.
func (r Rational) Equal(other Rational) bool {
	return r == other
}

// String returns "n/d".
func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.num, r.den)
}
