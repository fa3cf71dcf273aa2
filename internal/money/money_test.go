package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input  string
		places int32
		want   int64
	}{
		{"12.34", 2, 1234},
		{"-800", 2, -80000},
		{"0.5", 2, 50},
		{" 2000.00 ", 2, 200000},
		{"1500", 0, 1500},
		{"1.234", 3, 1234},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input, tt.places)
		require.NoError(t, err, "Parse(%q)", tt.input)
		assert.Equal(t, tt.want, got, "Parse(%q)", tt.input)
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("abc", 2)
	assert.Error(t, err)

	_, err = Parse("1.005", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than 2 decimal places")

	_, err = Parse("99999999999999999999", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "12.34", Format(1234, 2))
	assert.Equal(t, "-8.00", Format(-800, 2))
	assert.Equal(t, "0.00", Format(0, 2))
	assert.Equal(t, "1500", Format(1500, 0))
}
