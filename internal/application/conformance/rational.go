package conformance

import (
	"context"
	"fmt"
	"math/big"

	"github.com/alem-hub/data-abstraction/internal/domain/rational"
	"github.com/alem-hub/data-abstraction/internal/domain/shared"
	"github.com/alem-hub/data-abstraction/pkg/intmath"
	"github.com/alem-hub/data-abstraction/pkg/logger"
)

// RationalOps is the rational barrier under test.
type RationalOps struct {
	New      func(n, d int64) (rational.Rational, error)
	Multiply func(a, b rational.Rational) rational.Rational
}

// DefaultRationalOps returns the rational package's own operations.
func DefaultRationalOps() RationalOps {
	return RationalOps{New: rational.New, Multiply: rational.Multiply}
}

// sample draws a value in [-MaxMagnitude, MaxMagnitude].
func (c *Checker) sample() int64 {
	bound := c.cfg.MaxMagnitude
	return c.rng.Int63n(2*bound+1) - bound
}

func (c *Checker) sampleNonZero() int64 {
	for {
		if v := c.sample(); v != 0 {
			return v
		}
	}
}

func value(r rational.Rational) *big.Rat {
	return big.NewRat(rational.Numerator(r), rational.Denominator(r))
}

// CheckRational verifies the rational laws over the configured number of samples.
func (c *Checker) CheckRational(ctx context.Context, ops RationalOps) error {
	log := c.log.With(logger.Operation("CheckRational"))
	log.Debug("checking rational laws", logger.Samples(c.cfg.Samples))

	for i := 0; i < c.cfg.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("check rational: %w", err)
		}

		n1, d1 := c.sample(), c.sampleNonZero()
		n2, d2 := c.sample(), c.sampleNonZero()

		a, err := c.checkNew(ops, n1, d1)
		if err == nil {
			var b rational.Rational
			b, err = c.checkNew(ops, n2, d2)
			if err == nil {
				err = c.checkMultiply(ops, a, b)
			}
		}
		if err == nil {
			err = c.checkZeroDenominator(ops, n1)
		}
		if err != nil {
			log.Error("rational law broken", logger.Err(err))
			return err
		}
	}

	log.Info("rational laws hold", logger.Samples(c.cfg.Samples))
	return nil
}

func (c *Checker) checkNew(ops RationalOps, n, d int64) (rational.Rational, error) {
	r, err := ops.New(n, d)
	if err != nil {
		return r, shared.WrapError("conformance", "CheckRational", shared.ErrContractViolation,
			fmt.Sprintf("New(%d, %d) failed", n, d), err)
	}

	if value(r).Cmp(big.NewRat(n, d)) != 0 {
		return r, violation("CheckRational", "New(%d, %d) = %s changes the value", n, d, r)
	}
	if rational.Denominator(r) <= 0 {
		return r, violation("CheckRational", "New(%d, %d) = %s has a non-positive denominator", n, d, r)
	}
	if g := intmath.GCD(rational.Numerator(r), rational.Denominator(r)); g != 1 {
		return r, violation("CheckRational", "New(%d, %d) = %s is not in lowest terms", n, d, r)
	}
	return r, nil
}

func (c *Checker) checkMultiply(ops RationalOps, a, b rational.Rational) error {
	p := ops.Multiply(a, b)

	want := new(big.Rat).Mul(value(a), value(b))
	if value(p).Cmp(want) != 0 {
		return violation("CheckRational", "Multiply(%s, %s) = %s, want %s", a, b, p, want.RatString())
	}
	if g := intmath.GCD(rational.Numerator(p), rational.Denominator(p)); g != 1 || rational.Denominator(p) <= 0 {
		return violation("CheckRational", "Multiply(%s, %s) = %s is not canonical", a, b, p)
	}
	return nil
}

func (c *Checker) checkZeroDenominator(ops RationalOps, n int64) error {
	if _, err := ops.New(n, 0); !shared.IsInvalidArgument(err) {
		return violation("CheckRational", "New(%d, 0) returned %v, want invalid argument", n, err)
	}
	return nil
}
