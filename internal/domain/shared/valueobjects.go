package shared

import (
	"regexp"
	"strings"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════
// CallSign Value Object
// ═══════════════════════════════════════════════════════════════════════════

// CallSign identifies the station on the other end of a logged contact.
type CallSign string

// Prefix, one region digit, suffix letters (e.g. "SK7MW", "W1AW", "9A1A").
var callSignRegex = regexp.MustCompile(`^[A-Z0-9]{1,3}[0-9][A-Z]{1,4}$`)

// IsValid checks if the call sign format is valid.
func (c CallSign) IsValid() bool {
	return callSignRegex.MatchString(string(c))
}

// String returns the string representation.
func (c CallSign) String() string {
	return string(c)
}

// NewCallSign creates a new CallSign with validation.
// Call signs are case-insensitive on air and stored upper-cased.
func NewCallSign(value string) (CallSign, error) {
	c := CallSign(strings.ToUpper(strings.TrimSpace(value)))
	if !c.IsValid() {
		return "", ErrInvalidCallSign
	}
	return c, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// LogTime Value Object
// ═══════════════════════════════════════════════════════════════════════════

// LogTime is the UTC wall-clock time a contact was logged, at minute precision.
type LogTime string

const logTimeLayout = "15:04"

// IsValid checks if the log time is a valid HH:MM value.
func (t LogTime) IsValid() bool {
	_, err := time.Parse(logTimeLayout, string(t))
	return err == nil && len(t) == len(logTimeLayout)
}

// String returns the string representation.
func (t LogTime) String() string {
	return string(t)
}

// Minutes returns minutes since midnight, or -1 for an invalid value.
func (t LogTime) Minutes() int {
	parsed, err := time.Parse(logTimeLayout, string(t))
	if err != nil {
		return -1
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// NewLogTime creates a new LogTime with validation.
func NewLogTime(value string) (LogTime, error) {
	t := LogTime(strings.TrimSpace(value))
	if !t.IsValid() {
		return "", ErrInvalidLogTime
	}
	return t, nil
}

// LogTimeOf truncates tm to the minute in UTC.
func LogTimeOf(tm time.Time) LogTime {
	return LogTime(tm.UTC().Format(logTimeLayout))
}

// LogTimeFromMinutes builds a LogTime from minutes since midnight, wrapping at 24h.
func LogTimeFromMinutes(minutes int) LogTime {
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	return LogTimeOf(time.Date(2000, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC))
}
