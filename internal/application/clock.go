package application

import "time"

// Clock returns the current time. Timestamps are truncated to the
// microsecond precision the database stores.
type Clock func() time.Time

func (c Clock) now() time.Time {
	var t time.Time
	if c == nil {
		t = time.Now()
	} else {
		t = c()
	}
	return t.UTC().Truncate(time.Microsecond)
}

// advance returns now, or the smallest stored instant after prev when the
// clock has not moved past it.
func advance(prev, now time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Microsecond)
}
