package datetime

import (
	"fmt"
	"strings"
)

// TimestampOpt selects one of the fixed ISO-8601 layouts produced by
// Timestamp.
type TimestampOpt int

const (
	TimestampFull TimestampOpt = iota // YYYY-MM-DDThh:mm:ss
	TimestampTime                     // hh:mm:ss
	TimestampDate                     // YYYY-MM-DD
)

// Packed three-letter name tables indexed by 3*(month-1) and 3*weekday.
const monthNames = "JanFebMarAprMayJunJulAugSepOctNovDec"
const dayNames = "SunMonTueWedThuFriSat"

// Format renders the instant by substituting tokens in layout:
//
//	YYYY  four-digit year (2000-2099)
//	YY    two-digit year (00-99)
//	MM    two-digit month (01-12)
//	MMM   abbreviated English month name (Jan-Dec)
//	DD    two-digit day of month (01-31)
//	DDD   abbreviated English weekday name (Sun-Sat)
//	hh    two-digit hour (00-23, or 01-12 when AP/ap is present)
//	mm    two-digit minute (00-59)
//	ss    two-digit second (00-59)
//	AP    "AM" or "PM"
//	ap    "am" or "pm"
//
// The layout is scanned left to right; three-letter tokens take precedence
// over their two-letter prefixes at the same position, and characters that
// belong to no token are passed through unchanged. The presence of AP or ap
// anywhere switches hh to 12-hour form, with midnight and noon both rendered
// as "12".
func (dt DateTime) Format(layout string) string {
	buf := []byte(layout)
	twelve := strings.Contains(layout, "ap") || strings.Contains(layout, "AP")
	var hour, pm = dt.hour, false
	if twelve {
		pm = dt.hour >= 12
		hour = dt.TwelveHour()
	}
	for i := 0; i+1 < len(buf); i++ {
		if buf[i] == 'h' && buf[i+1] == 'h' {
			buf[i] = '0' + hour/10
			buf[i+1] = '0' + hour%10
		}
		if buf[i] == 'm' && buf[i+1] == 'm' {
			buf[i] = '0' + dt.minute/10
			buf[i+1] = '0' + dt.minute%10
		}
		if buf[i] == 's' && buf[i+1] == 's' {
			buf[i] = '0' + dt.second/10
			buf[i+1] = '0' + dt.second%10
		}
		if buf[i] == 'D' && buf[i+1] == 'D' && i+2 < len(buf) && buf[i+2] == 'D' {
			name := int(dt.Weekday()) * 3
			copy(buf[i:i+3], dayNames[name:name+3])
		} else if buf[i] == 'D' && buf[i+1] == 'D' {
			buf[i] = '0' + dt.day/10
			buf[i+1] = '0' + dt.day%10
		}
		if buf[i] == 'M' && buf[i+1] == 'M' && i+2 < len(buf) && buf[i+2] == 'M' {
			if dt.month >= 1 && dt.month <= 12 {
				name := int(dt.month-1) * 3
				copy(buf[i:i+3], monthNames[name:name+3])
			}
		} else if buf[i] == 'M' && buf[i+1] == 'M' {
			buf[i] = '0' + dt.month/10
			buf[i+1] = '0' + dt.month%10
		}
		if buf[i] == 'Y' && buf[i+1] == 'Y' && i+3 < len(buf) && buf[i+2] == 'Y' && buf[i+3] == 'Y' {
			buf[i] = '2'
			buf[i+1] = '0'
			buf[i+2] = '0' + dt.yOff/10%10
			buf[i+3] = '0' + dt.yOff%10
		} else if buf[i] == 'Y' && buf[i+1] == 'Y' {
			buf[i] = '0' + dt.yOff/10%10
			buf[i+1] = '0' + dt.yOff%10
		}
		if buf[i] == 'A' && buf[i+1] == 'P' {
			buf[i], buf[i+1] = 'A', 'M'
			if pm {
				buf[i] = 'P'
			}
		} else if buf[i] == 'a' && buf[i+1] == 'p' {
			buf[i], buf[i+1] = 'a', 'm'
			if pm {
				buf[i] = 'p'
			}
		}
	}
	return string(buf)
}

// Timestamp returns one of the fixed ISO-8601 layouts, e.g.
// "2020-04-16T18:34:56" for TimestampFull.
func (dt DateTime) Timestamp(opt TimestampOpt) string {
	switch opt {
	case TimestampTime:
		return fmt.Sprintf("%02d:%02d:%02d", dt.hour, dt.minute, dt.second)
	case TimestampDate:
		return fmt.Sprintf("%d-%02d-%02d", dt.Year(), dt.month, dt.day)
	default:
		return fmt.Sprintf("%d-%02d-%02dT%02d:%02d:%02d",
			dt.Year(), dt.month, dt.day, dt.hour, dt.minute, dt.second)
	}
}

func (dt DateTime) String() string {
	return dt.Timestamp(TimestampFull)
}
