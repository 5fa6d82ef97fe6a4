// Package datetime implements the calendar value types used by the PCF85263
// driver: a civil-time instant covering the years 2000-2099 and a signed
// seconds-based time span. The chip has no notion of time zones and neither
// do these types; an instant is whatever wall clock the caller decides to
// keep on the device.
package datetime

const SecondsPerDay = 86400

// SecondsFrom1970To2000 is the Unix timestamp of 2000-01-01T00:00:00, the
// zero point of the chip's native seconds counter.
const SecondsFrom1970To2000 = 946684800

// daysInMonth covers January through November. December is never consulted:
// day-of-year subtraction stops before it and day counting only sums months
// strictly below the target month.
var daysInMonth = [11]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30}

// DateTime is an instant in civil time between 2000-01-01 and 2099-12-31
// with one second resolution. The zero value is 2000-01-01T00:00:00.
//
// Constructors do not validate their input; an instant built from impossible
// fields (e.g. February 31) is stored verbatim and only detected by IsValid.
// Comparison results are meaningless when either operand is invalid.
type DateTime struct {
	yOff   uint8
	month  uint8
	day    uint8
	hour   uint8
	minute uint8
	second uint8
}

// FromSeconds builds an instant from a count of seconds since
// 2000-01-01T00:00:00. It never fails; counts beyond 2099 wrap per integer
// arithmetic. Every fourth year is treated as a leap year, which holds for
// the whole supported range (2100 is outside it).
func FromSeconds(t uint32) DateTime {
	var dt DateTime
	dt.second = uint8(t % 60)
	t /= 60
	dt.minute = uint8(t % 60)
	t /= 60
	dt.hour = uint8(t % 24)
	days := uint16(t / 24)
	var leap bool
	for dt.yOff = 0; ; dt.yOff++ {
		leap = dt.yOff%4 == 0
		yearDays := uint16(365)
		if leap {
			yearDays++
		}
		if days < yearDays {
			break
		}
		days -= yearDays
	}
	for dt.month = 1; dt.month < 12; dt.month++ {
		monthDays := uint16(daysInMonth[dt.month-1])
		if leap && dt.month == 2 {
			monthDays++
		}
		if days < monthDays {
			break
		}
		days -= monthDays
	}
	dt.day = uint8(days) + 1
	return dt
}

// FromUnix builds an instant from seconds since 1970-01-01T00:00:00.
func FromUnix(t uint32) DateTime {
	return FromSeconds(t - SecondsFrom1970To2000)
}

// New builds an instant from calendar fields. The year may be given either
// as a full year (2000-2099) or as an offset from 2000 (0-99). Fields are
// stored verbatim; use IsValid to check the result denotes a real date.
func New(year uint16, month, day, hour, minute, second uint8) DateTime {
	if year >= 2000 {
		year -= 2000
	}
	return DateTime{
		yOff:   uint8(year),
		month:  month,
		day:    day,
		hour:   hour,
		minute: minute,
		second: second,
	}
}

// Year returns the full year (2000-2099).
func (dt DateTime) Year() uint16 { return 2000 + uint16(dt.yOff) }

// Month returns the month number (1-12).
func (dt DateTime) Month() uint8 { return dt.month }

// Day returns the day of the month (1-31).
func (dt DateTime) Day() uint8 { return dt.day }

// Hour returns the hour in 24-hour form (0-23).
func (dt DateTime) Hour() uint8 { return dt.hour }

// Minute returns the minute (0-59).
func (dt DateTime) Minute() uint8 { return dt.minute }

// Second returns the second (0-59).
func (dt DateTime) Second() uint8 { return dt.second }

// TwelveHour returns the hour in 12-hour form (1-12); both midnight and noon
// map to 12.
func (dt DateTime) TwelveHour() uint8 {
	switch {
	case dt.hour == 0 || dt.hour == 12:
		return 12
	case dt.hour > 12:
		return dt.hour - 12
	default:
		return dt.hour
	}
}

// IsPM reports whether the instant falls in the second half of the day.
func (dt DateTime) IsPM() bool { return dt.hour >= 12 }

// Weekday returns the day of the week, 0 (Sunday) through 6 (Saturday).
// 2000-01-01, day zero of the supported range, is a Saturday.
func (dt DateTime) Weekday() uint8 {
	return uint8((date2days(uint16(dt.yOff), dt.month, dt.day) + 6) % 7)
}

// SecondsTime returns the instant as seconds since 2000-01-01T00:00:00, the
// converse of FromSeconds.
func (dt DateTime) SecondsTime() uint32 {
	days := date2days(uint16(dt.yOff), dt.month, dt.day)
	return time2seconds(days, dt.hour, dt.minute, dt.second)
}

// Unix returns the instant as seconds since 1970-01-01T00:00:00, the
// converse of FromUnix.
func (dt DateTime) Unix() uint32 {
	return dt.SecondsTime() + SecondsFrom1970To2000
}

// IsValid reports whether the instant denotes a real calendar date within
// 2000-2099. The check re-derives an instant from the receiver's own linear
// encoding and compares fields, which catches impossible dates because the
// encode/decode round trip normalizes them to a different one.
func (dt DateTime) IsValid() bool {
	if dt.yOff >= 100 {
		return false
	}
	return dt == FromUnix(dt.Unix())
}

// Add returns the instant shifted forward by span.
func (dt DateTime) Add(span TimeSpan) DateTime {
	return FromUnix(dt.Unix() + uint32(span.TotalSeconds()))
}

// Sub returns the instant shifted backward by span.
func (dt DateTime) Sub(span TimeSpan) DateTime {
	return FromUnix(dt.Unix() - uint32(span.TotalSeconds()))
}

// Diff returns the span between dt and right (dt minus right). Subtracting a
// later instant yields a span with a negative total; TimeSpan decompositions
// follow that sign.
func (dt DateTime) Diff(right DateTime) TimeSpan {
	return Span(int32(dt.Unix() - right.Unix()))
}

// Before reports whether dt is earlier than right.
func (dt DateTime) Before(right DateTime) bool {
	switch {
	case dt.yOff != right.yOff:
		return dt.yOff < right.yOff
	case dt.month != right.month:
		return dt.month < right.month
	case dt.day != right.day:
		return dt.day < right.day
	case dt.hour != right.hour:
		return dt.hour < right.hour
	case dt.minute != right.minute:
		return dt.minute < right.minute
	default:
		return dt.second < right.second
	}
}

// After reports whether dt is later than right.
func (dt DateTime) After(right DateTime) bool { return right.Before(dt) }

// Equal reports whether both instants hold the same calendar fields.
func (dt DateTime) Equal(right DateTime) bool { return dt == right }

// date2days returns the number of days since 2000-01-01 for a date given as
// a year offset from 2000. Valid for 2000-2099 only: the leap adjustment
// treats every fourth year as leap with no century correction.
func date2days(yOff uint16, month, day uint8) uint16 {
	days := uint16(day)
	for i := uint8(1); i < month; i++ {
		days += uint16(daysInMonth[i-1])
	}
	if month > 2 && yOff%4 == 0 {
		days++
	}
	return days + 365*yOff + (yOff+3)/4 - 1
}

func time2seconds(days uint16, hour, minute, second uint8) uint32 {
	return ((uint32(days)*24+uint32(hour))*60+uint32(minute))*60 + uint32(second)
}
