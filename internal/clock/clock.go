// Package clock provides time sources for capture timestamps.
package clock

import "time"

// Clock supplies the current time. Injected so snapshot assembly stays
// reproducible under test.
type Clock interface {
	Now() time.Time
}

// UTC is the production Clock, reporting wall time in UTC.
type UTC struct{}

// Now returns the current wall time in UTC.
func (UTC) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a Clock frozen at a single instant.
type Fixed struct {
	Time time.Time
}

// Now returns the frozen instant.
func (f Fixed) Now() time.Time {
	return f.Time
}
