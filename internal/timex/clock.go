package timex

import "time"

// Clock returns the current time.
type Clock func() time.Time

// System is the wall clock.
func System() time.Time { return time.Now().UTC() }

// Fixed returns a Clock pinned to t.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}
