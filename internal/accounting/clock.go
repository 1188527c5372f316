package accounting

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock in Location (local time when nil).
type RealClock struct {
	Location *time.Location
}

// Now returns the current time in the clock's location.
func (c RealClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns Time until advanced.
type FixedClock struct {
	Time time.Time
}

// Now returns the stored time.
func (c *FixedClock) Now() time.Time {
	return c.Time
}

// Advance moves the stored time forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.Time = c.Time.Add(d)
}
