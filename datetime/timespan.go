package datetime

// TimeSpan represents an elapsed span of time with one second resolution,
// stored as a signed 32-bit total. The decomposition methods use truncating
// division, so all components carry the sign of the total. Arithmetic does
// not check for overflow; 32-bit wraparound is the caller's responsibility.
type TimeSpan struct {
	seconds int32
}

// Span builds a span from a total number of seconds.
func Span(seconds int32) TimeSpan {
	return TimeSpan{seconds: seconds}
}

// SpanOf builds a span from a days/hours/minutes/seconds decomposition,
// e.g. SpanOf(0, 3, 45, 0) for 3 hours and 45 minutes.
func SpanOf(days, hours, minutes, seconds int32) TimeSpan {
	return TimeSpan{seconds: days*SecondsPerDay + hours*3600 + minutes*60 + seconds}
}

// Days returns the whole days in the span, e.g. 4.
func (ts TimeSpan) Days() int32 { return ts.seconds / SecondsPerDay }

// Hours returns the hours component beyond whole days, e.g. 4 days 3 hours
// yields 3, not 99.
func (ts TimeSpan) Hours() int32 { return ts.seconds / 3600 % 24 }

// Minutes returns the minutes component beyond whole hours.
func (ts TimeSpan) Minutes() int32 { return ts.seconds / 60 % 60 }

// Seconds returns the seconds component beyond whole minutes.
func (ts TimeSpan) Seconds() int32 { return ts.seconds % 60 }

// TotalSeconds returns the span as a flat seconds count, e.g. 358027.
func (ts TimeSpan) TotalSeconds() int32 { return ts.seconds }

// Add returns the sum of both spans.
func (ts TimeSpan) Add(right TimeSpan) TimeSpan {
	return TimeSpan{seconds: ts.seconds + right.seconds}
}

// Sub returns right subtracted from ts.
func (ts TimeSpan) Sub(right TimeSpan) TimeSpan {
	return TimeSpan{seconds: ts.seconds - right.seconds}
}
