package clock

import "time"

// Clock abstracts time to keep screens deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local wall-clock time, which is what the login screen
// displays.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
