package model

import "time"

// Clock supplies the current instant. Every timestamp the application
// captures goes through a Clock so tests can pin time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// UTCClock is the production clock. All persisted datetimes are UTC.
var UTCClock Clock = ClockFunc(func() time.Time { return time.Now().UTC() })

// FixedClock returns a Clock pinned to t, for tests.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
