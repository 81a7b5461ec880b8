package stepup

import "time"

// Clock tracks whether a secondary password verification is still fresh.
// It holds no goroutines and no wall clock of its own; callers pass time in,
// which keeps expiry behavior deterministic under test.
type Clock struct {
	validUntil time.Time
	armed      bool
}

func NewClock() *Clock {
	return &Clock{}
}

// MarkAuthenticated starts a validity window of rememberMinutes from now.
// A window of zero or less arms nothing: every protected access must
// re-prompt.
func (c *Clock) MarkAuthenticated(now time.Time, rememberMinutes int) {
	if rememberMinutes <= 0 {
		c.Invalidate()
		return
	}

	c.validUntil = now.Add(time.Duration(rememberMinutes) * time.Minute)
	c.armed = true
}

// IsValid reports whether a verification performed earlier still covers
// the given moment.
func (c *Clock) IsValid(now time.Time) bool {
	return c.armed && now.Before(c.validUntil)
}

func (c *Clock) Invalidate() {
	c.armed = false
	c.validUntil = time.Time{}
}

// ValidUntil exposes the deadline for persistence. The zero time means
// the clock is not armed.
func (c *Clock) ValidUntil() time.Time {
	if !c.armed {
		return time.Time{}
	}
	return c.validUntil
}

// Resume rebuilds a clock from a persisted deadline, dropping it if it
// already passed.
func Resume(validUntil time.Time, now time.Time) *Clock {
	c := NewClock()
	if !validUntil.IsZero() && now.Before(validUntil) {
		c.validUntil = validUntil
		c.armed = true
	}
	return c
}
