package datetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISO8601(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  DateTime
	}{
		{name: "full timestamp", input: "2020-06-25T15:29:37", want: New(2020, 6, 25, 15, 29, 37)},
		{name: "date only inherits midnight", input: "2020-06-25", want: New(2020, 6, 25, 0, 0, 0)},
		{name: "empty input yields the epoch", input: "", want: New(2000, 1, 1, 0, 0, 0)},
		{name: "leap day", input: "2024-02-29T23:59:59", want: New(2024, 2, 29, 23, 59, 59)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseISO8601(tt.input))
		})
	}
}

func TestFromBuildTimestamp(t *testing.T) {
	tests := []struct {
		name string
		date string
		tm   string
		want DateTime
	}{
		{name: "regular stamp", date: "Apr 16 2020", tm: "18:34:56", want: New(2020, 4, 16, 18, 34, 56)},
		{name: "space padded day", date: "Dec  8 2021", tm: "07:00:09", want: New(2021, 12, 8, 7, 0, 9)},
		{name: "short date yields zero value", date: "Apr 2020", tm: "18:34:56", want: DateTime{}},
		{name: "short time yields zero value", date: "Apr 16 2020", tm: "18:34", want: DateTime{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromBuildTimestamp(tt.date, tt.tm))
		})
	}
}

func TestFromBuildTimestampMonths(t *testing.T) {
	dates := map[string]uint8{
		"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4, "May": 5, "Jun": 6,
		"Jul": 7, "Aug": 8, "Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
	}
	for name, month := range dates {
		dt := FromBuildTimestamp(name+" 01 2022", "00:00:00")
		assert.Equal(t, month, dt.Month(), "month %s", name)
	}
}
