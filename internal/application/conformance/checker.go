// Package conformance checks that the barrier implementations obey their laws.
//
// The checker draws random inputs and verifies, for every contact
// representation, that the selectors return what the constructor was given
// and that swapping representations does not change what a caller observes.
// For rationals it verifies value preservation, canonical form, rejection of
// a zero denominator, and the value law of Multiply.
package conformance

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/alem-hub/data-abstraction/config"
	"github.com/alem-hub/data-abstraction/internal/domain/contact"
	"github.com/alem-hub/data-abstraction/internal/domain/shared"
	"github.com/alem-hub/data-abstraction/pkg/logger"
)

// Checker runs the law checks. It is not safe for concurrent use.
type Checker struct {
	cfg  config.ConformanceConfig
	log  *logger.Logger
	rng  *rand.Rand
	seed int64
}

// NewChecker creates a Checker seeded from cfg.
func NewChecker(cfg config.ConformanceConfig, log *logger.Logger) *Checker {
	if log == nil {
		log = logger.Nop()
	}
	seed := cfg.SeedOrNow()
	return &Checker{
		cfg:  cfg,
		log:  log.With(logger.Component("conformance"), logger.Seed(seed)),
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed in use, so a failing run can be replayed.
func (c *Checker) Seed() int64 {
	return c.seed
}

// Generator draws one (time, id) sample.
type Generator[T, I any] func(rng *rand.Rand) (T, I)

// QSOGenerator draws a random log time and a random id.
func QSOGenerator(rng *rand.Rand) (shared.LogTime, uuid.UUID) {
	var id uuid.UUID
	rng.Read(id[:])
	return shared.LogTimeFromMinutes(rng.Intn(24 * 60)), id
}

func violation(op, format string, args ...any) error {
	return shared.NewDomainError("conformance", op, shared.ErrContractViolation, fmt.Sprintf(format, args...))
}

// CheckContact verifies GetTime(mk(t, id)) == t and GetID(mk(t, id)) == id
// over the configured number of samples.
func CheckContact[T, I comparable](ctx context.Context, c *Checker, rep contact.Representation[T, I], gen Generator[T, I]) error {
	log := c.log.With(logger.Representation(rep.Name), logger.Operation("CheckContact"))
	log.Debug("checking round-trip laws", logger.Samples(c.cfg.Samples))

	for i := 0; i < c.cfg.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("check contact %s: %w", rep.Name, err)
		}

		t, id := gen(c.rng)
		r := rep.Make(t, id)

		if got := contact.GetTime(r); got != t {
			err := violation("CheckContact", "%s: GetTime(make(%v, %v)) = %v", rep.Name, t, id, got)
			log.Error("round-trip law broken", logger.Err(err))
			return err
		}
		if got := contact.GetID(r); got != id {
			err := violation("CheckContact", "%s: GetID(make(%v, %v)) = %v", rep.Name, t, id, got)
			log.Error("round-trip law broken", logger.Err(err))
			return err
		}
	}

	log.Debug("round-trip laws hold")
	return nil
}

// CheckSubstitutable verifies that every representation answers the same
// selector calls with the same values as the first one.
func CheckSubstitutable[T, I comparable](ctx context.Context, c *Checker, reps []contact.Representation[T, I], gen Generator[T, I]) error {
	if len(reps) < 2 {
		return nil
	}
	log := c.log.With(logger.Operation("CheckSubstitutable"))

	for i := 0; i < c.cfg.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("check substitutability: %w", err)
		}

		t, id := gen(c.rng)
		base := reps[0].Make(t, id)
		wantT, wantID := contact.GetTime(base), contact.GetID(base)

		for _, rep := range reps[1:] {
			r := rep.Make(t, id)
			if contact.GetTime(r) != wantT || contact.GetID(r) != wantID {
				err := violation("CheckSubstitutable", "%s and %s disagree on make(%v, %v)", reps[0].Name, rep.Name, t, id)
				log.Error("representations are not interchangeable", logger.Representation(rep.Name), logger.Err(err))
				return err
			}
		}
	}
	return nil
}

// CheckAllContacts runs the contact checks on every built-in representation
// using LogTime times and UUID ids. All failures are reported.
func (c *Checker) CheckAllContacts(ctx context.Context) error {
	reps := contact.Representations[shared.LogTime, uuid.UUID]()

	var errs []error
	for _, rep := range reps {
		if err := CheckContact(ctx, c, rep, QSOGenerator); err != nil {
			errs = append(errs, err)
		}
	}
	if err := CheckSubstitutable(ctx, c, reps, QSOGenerator); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	c.log.Info("contact representations conform", logger.Int("representations", len(reps)), logger.Samples(c.cfg.Samples))
	return nil
}

// Run executes every check and joins the failures.
func (c *Checker) Run(ctx context.Context) error {
	return errors.Join(
		c.CheckAllContacts(ctx),
		c.CheckRational(ctx, DefaultRationalOps()),
	)
}
