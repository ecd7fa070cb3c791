package conformance

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/data-abstraction/config"
	"github.com/alem-hub/data-abstraction/internal/domain/contact"
	"github.com/alem-hub/data-abstraction/internal/domain/rational"
	"github.com/alem-hub/data-abstraction/internal/domain/shared"
	"github.com/alem-hub/data-abstraction/pkg/logger"
)

func newTestChecker(t *testing.T) *Checker {
	t.Helper()
	cfg := config.Default().Conformance
	cfg.Samples = 50
	cfg.Seed = 7
	return NewChecker(cfg, logger.Nop())
}

// offByOneMinute is a broken constructor: it records the wrong time.
func offByOneMinute(lt shared.LogTime, id uuid.UUID) contact.Record[shared.LogTime, uuid.UUID] {
	return contact.MakePair(shared.LogTimeFromMinutes(lt.Minutes()+1), id)
}

func TestCheckAllContacts_Pass(t *testing.T) {
	c := newTestChecker(t)
	assert.NoError(t, c.CheckAllContacts(context.Background()))
	assert.Equal(t, int64(7), c.Seed())
}

func TestCheckContact_DetectsBrokenConstructor(t *testing.T) {
	c := newTestChecker(t)
	rep := contact.Representation[shared.LogTime, uuid.UUID]{Name: "broken", Make: offByOneMinute}

	err := CheckContact(context.Background(), c, rep, QSOGenerator)
	require.Error(t, err)
	assert.True(t, shared.IsContractViolation(err))
	assert.Contains(t, err.Error(), "broken")
}

func TestCheckSubstitutable_DetectsOddOneOut(t *testing.T) {
	c := newTestChecker(t)
	reps := append(contact.Representations[shared.LogTime, uuid.UUID](),
		contact.Representation[shared.LogTime, uuid.UUID]{Name: "broken", Make: offByOneMinute})

	err := CheckSubstitutable(context.Background(), c, reps, QSOGenerator)
	require.Error(t, err)
	assert.True(t, shared.IsContractViolation(err))
}

func TestCheckContact_Cancelled(t *testing.T) {
	c := newTestChecker(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep := contact.Representations[shared.LogTime, uuid.UUID]()[0]
	err := CheckContact(ctx, c, rep, QSOGenerator)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckRational_Pass(t *testing.T) {
	c := newTestChecker(t)
	assert.NoError(t, c.CheckRational(context.Background(), DefaultRationalOps()))
}

func TestCheckRational_DetectsBrokenMultiply(t *testing.T) {
	c := newTestChecker(t)
	ops := DefaultRationalOps()
	ops.Multiply = func(a, _ rational.Rational) rational.Rational { return a }

	err := c.CheckRational(context.Background(), ops)
	require.Error(t, err)
	assert.True(t, shared.IsContractViolation(err))
	assert.Contains(t, err.Error(), "Multiply")
}

func TestCheckRational_DetectsAcceptedZeroDenominator(t *testing.T) {
	c := newTestChecker(t)
	ops := DefaultRationalOps()
	ops.New = func(n, d int64) (rational.Rational, error) {
		if d == 0 {
			return rational.New(1, 1)
		}
		return rational.New(n, d)
	}

	err := c.CheckRational(context.Background(), ops)
	require.Error(t, err)
	assert.True(t, shared.IsContractViolation(err))
	assert.Contains(t, err.Error(), "want invalid argument")
}

func TestRun_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default().Conformance
	cfg.Samples = 10
	cfg.Seed = 1

	c := NewChecker(cfg, logger.New(logger.Options{Output: &buf, Level: logger.LevelInfo, Format: logger.FormatJSON}))
	require.NoError(t, c.Run(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "contact representations conform")
	assert.Contains(t, out, "rational laws hold")
	assert.Contains(t, out, `"component":"conformance"`)
}
