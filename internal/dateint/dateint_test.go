package dateint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	tests := []struct {
		year, month, day int
		want             int
	}{
		{2025, 1, 1, 20250101},
		{2025, 12, 31, 20251231},
		{1999, 3, 9, 19990309},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Date(tt.year, tt.month, tt.day))
	}
}

func TestSplitAndMonth(t *testing.T) {
	year, month, day := Split(20250314)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 3, month)
	assert.Equal(t, 14, day)

	assert.Equal(t, 3, Month(20250314))
	assert.Equal(t, 13, Month(20251301), "Month does not validate")
}

func TestFormatParse(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"2025-03-14", 20250314},
		{"2025-12-01", 20251201},
		{" 2024-02-29 ", 20240229},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		require.NoError(t, err, "Parse(%q)", tt.input)
		assert.Equal(t, tt.want, got)
	}

	assert.Equal(t, "2025-03-14", Format(20250314))
}

func TestParseInvalid(t *testing.T) {
	invalid := []string{"", "2025-03", "abcd-01-01", "2025-xx-01", "2025-01-yy"}
	for _, s := range invalid {
		_, err := Parse(s)
		assert.Error(t, err, "Parse(%q) should fail", s)
	}
}

func TestFromTime(t *testing.T) {
	ts := time.Date(2025, time.July, 4, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 20250704, FromTime(ts))
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		year, start, count int
		wantStart, wantEnd int
	}{
		{2025, 1, 12, 20250101, 20260101},
		{2025, 3, 1, 20250301, 20250401},
		{2025, 1, 3, 20250101, 20250401},
		{2025, 11, 5, 20251101, 20260101},
		{2025, 12, 1, 20251201, 20260101},
	}
	for _, tt := range tests {
		start, end := MonthRange(tt.year, tt.start, tt.count)
		assert.Equal(t, tt.wantStart, start, "start for %d/%d+%d", tt.year, tt.start, tt.count)
		assert.Equal(t, tt.wantEnd, end, "end for %d/%d+%d", tt.year, tt.start, tt.count)
	}
}
