package kernel

import "time"

// Clock supplies the current instant to aggregates that stamp their history.
// Tests substitute a fixed clock; production code uses SystemClock.
type Clock func() time.Time

// SystemClock returns UTC wall time truncated to microseconds, the finest
// precision every persistence backend round-trips unchanged.
func SystemClock() Clock {
	return func() time.Time {
		return time.Now().UTC().Truncate(time.Microsecond)
	}
}

// FixedClock always returns t. Handy for deterministic tests and imports.
func FixedClock(t time.Time) Clock {
	return func() time.Time {
		return t
	}
}
