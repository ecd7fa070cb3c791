package rational

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/alem-hub/data-abstraction/internal/domain/shared"
)

// DefaultPrecision is the number of significant digits Decimal uses when ctx is nil.
const DefaultPrecision = 34

var errNotConstructed = shared.NewDomainError("rational", "Decimal", shared.ErrInvalidArgument, "zero Rational was not built by New")

// Decimal expands r as a decimal rounded to ctx's precision. Exact results
// carry no trailing zeros.
// The returned condition reports whether rounding happened (cond.Inexact()).
func (r Rational) Decimal(ctx *apd.Context) (*apd.Decimal, apd.Condition, error) {
	if ctx == nil {
		ctx = apd.BaseContext.WithPrecision(DefaultPrecision)
	}
	if r.den == 0 {
		return nil, 0, errNotConstructed
	}

	var d apd.Decimal
	cond, err := ctx.Quo(&d, apd.New(r.num, 0), apd.New(r.den, 0))
	if err != nil {
		return nil, cond, fmt.Errorf("rational.Decimal: %w", err)
	}

	// Quo pads exact results to full precision; trim them back to the
	// shortest form without switching integers to exponent notation.
	if !cond.Inexact() {
		d.Reduce(&d)
		if d.Exponent > 0 {
			if _, err := ctx.Quantize(&d, &d, 0); err != nil {
				return nil, cond, fmt.Errorf("rational.Decimal: %w", err)
			}
		}
	}
	return &d, cond, nil
}
