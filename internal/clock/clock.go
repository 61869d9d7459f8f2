package clock

import "time"

// Clock abstracts time.Now so services and tests share one time source.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the current UTC time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// Fixed is a clock pinned to one instant, for tests.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time { return f.At }
