package datetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanDecomposition(t *testing.T) {
	tests := []struct {
		name    string
		span    TimeSpan
		days    int32
		hours   int32
		minutes int32
		seconds int32
	}{
		{name: "mixed components", span: Span(358027), days: 4, hours: 3, minutes: 27, seconds: 7},
		{name: "zero", span: Span(0)},
		{name: "sub-minute", span: Span(59), seconds: 59},
		{name: "exact day", span: Span(SecondsPerDay), days: 1},
		{name: "negative carries sign", span: Span(-358027), days: -4, hours: -3, minutes: -27, seconds: -7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.days, tt.span.Days())
			assert.Equal(t, tt.hours, tt.span.Hours())
			assert.Equal(t, tt.minutes, tt.span.Minutes())
			assert.Equal(t, tt.seconds, tt.span.Seconds())
		})
	}
}

func TestSpanOf(t *testing.T) {
	assert.Equal(t, Span(358027), SpanOf(4, 3, 27, 7))
	assert.Equal(t, Span(0), SpanOf(0, 0, 0, 0))
	assert.Equal(t, Span(13500), SpanOf(0, 3, 45, 0))
	assert.Equal(t, Span(-90), SpanOf(0, 0, -1, -30))
}

func TestSpanArithmetic(t *testing.T) {
	assert.Equal(t, Span(90), Span(60).Add(Span(30)))
	assert.Equal(t, Span(30), Span(60).Sub(Span(30)))
	assert.Equal(t, Span(-30), Span(30).Sub(Span(60)))
	assert.Equal(t, int32(358027), SpanOf(4, 3, 27, 7).TotalSeconds())
}
