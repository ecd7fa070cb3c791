package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCallSign(t *testing.T) {
	c, err := NewCallSign(" sk7mw ")
	require.NoError(t, err)
	assert.Equal(t, CallSign("SK7MW"), c)

	for _, bad := range []string{"", "SK", "7", "SK7", "SK-7MW", "ABCD1XY"} {
		_, err := NewCallSign(bad)
		assert.ErrorIs(t, err, ErrInvalidFormat, bad)
	}
}

func TestNewLogTime(t *testing.T) {
	lt, err := NewLogTime("18:35")
	require.NoError(t, err)
	assert.Equal(t, 18*60+35, lt.Minutes())

	for _, bad := range []string{"", "24:00", "18:60", "1835", "8:35"} {
		_, err := NewLogTime(bad)
		assert.ErrorIs(t, err, ErrInvalidFormat, bad)
	}
}

func TestLogTimeOf(t *testing.T) {
	tz := time.FixedZone("UTC+5", 5*60*60)
	assert.Equal(t, LogTime("13:35"), LogTimeOf(time.Date(2024, 3, 9, 18, 35, 59, 0, tz)))
}

func TestLogTimeFromMinutes(t *testing.T) {
	assert.Equal(t, LogTime("00:00"), LogTimeFromMinutes(0))
	assert.Equal(t, LogTime("18:35"), LogTimeFromMinutes(18*60+35))
	assert.Equal(t, LogTime("00:01"), LogTimeFromMinutes(24*60+1))
	assert.Equal(t, LogTime("23:59"), LogTimeFromMinutes(-1))
}

func TestDomainError_Is(t *testing.T) {
	err := WrapError("rational", "New", ErrInvalidArgument, "bad", ErrZeroDenominator)

	assert.True(t, IsInvalidArgument(err))
	assert.ErrorIs(t, err, ErrZeroDenominator)
	assert.False(t, IsContractViolation(err))
	assert.Equal(t, "rational.New: bad: rational.New: denominator must be nonzero", err.Error())
}
