package datetime

// conv2d converts two leading characters to their decimal value; a non-digit
// first character counts as zero, which handles space-padded days in
// compiler-style date stamps.
func conv2d(s string) uint8 {
	var v uint8
	if '0' <= s[0] && s[0] <= '9' {
		v = s[0] - '0'
	}
	return 10*v + s[1] - '0'
}

// ParseISO8601 builds an instant from an ISO-8601 string such as
// "2020-06-25T15:29:37". The input is overlaid on the reference layout
// 2000-01-01T00:00:00, so shorter inputs inherit the reference tail and only
// the two low year digits are read (the year must be in 2000-2099). No
// validation is performed; use IsValid on the result.
func ParseISO8601(s string) DateTime {
	ref := []byte("2000-01-01T00:00:00")
	copy(ref, s)
	return DateTime{
		yOff:   conv2d(string(ref[2:4])),
		month:  conv2d(string(ref[5:7])),
		day:    conv2d(string(ref[8:10])),
		hour:   conv2d(string(ref[11:13])),
		minute: conv2d(string(ref[14:16])),
		second: conv2d(string(ref[17:19])),
	}
}

// FromBuildTimestamp builds an instant from a compiler-style date/time stamp
// pair, e.g. "Apr 16 2020" and "18:34:56". Days below 10 may be space
// padded. Inputs shorter than the fixed layouts yield the zero instant.
func FromBuildTimestamp(date, tm string) DateTime {
	if len(date) < 11 || len(tm) < 8 {
		return DateTime{}
	}
	var month uint8
	// Jan Feb Mar Apr May Jun Jul Aug Sep Oct Nov Dec
	switch date[0] {
	case 'J':
		switch {
		case date[1] == 'a':
			month = 1
		case date[2] == 'n':
			month = 6
		default:
			month = 7
		}
	case 'F':
		month = 2
	case 'A':
		month = 8
		if date[2] == 'r' {
			month = 4
		}
	case 'M':
		month = 5
		if date[2] == 'r' {
			month = 3
		}
	case 'S':
		month = 9
	case 'O':
		month = 10
	case 'N':
		month = 11
	case 'D':
		month = 12
	}
	return DateTime{
		yOff:   conv2d(date[9:11]),
		month:  month,
		day:    conv2d(date[4:6]),
		hour:   conv2d(tm[0:2]),
		minute: conv2d(tm[3:5]),
		second: conv2d(tm[6:8]),
	}
}
