package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRef(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"RF 00123", "123", true},
		{"rf123", "123", true},
		{"123", "123", true},
		{"Rf 48 1234", "481234", true},
		{"00420", "420", true},
		{"REF-1", "ref-1", true},
		{"", "", false},
		{"000", "", false},
		{"RF", "", false},
		{"RF 000", "", false},
		{"   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := NormalizeRef(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeRefEquivalentFormats(t *testing.T) {
	a, ok := NormalizeRef("RF 00123")
	require.True(t, ok)
	b, ok := NormalizeRef("rf123")
	require.True(t, ok)
	c, ok := NormalizeRef("123")
	require.True(t, ok)

	assert.Equal(t, "123", a)
	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
}

func TestNormalizeRefIdempotent(t *testing.T) {
	inputs := []string{"RF 00123", "rf123", "123", "A 0 1", "ref-1"}
	for _, input := range inputs {
		once, ok := NormalizeRef(input)
		require.True(t, ok, input)
		twice, ok := NormalizeRef(once)
		require.True(t, ok, input)
		assert.Equal(t, once, twice, input)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"Example Company Oy", "example company", true},
		{"EXAMPLE COMPANY OY", "example company", true},
		{"Firma Oyj", "firma", true},
		{"Store Ab", "store", true},
		{"Yritys Tmi", "yritys", true},
		{"  Spaced Name  ", "spaced name", true},
		{"Plain Name", "plain name", true},
		{"", "", false},
		{"   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := NormalizeName(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeNameRemovesSingleSuffix(t *testing.T) {
	// Only the first matching suffix is removed.
	got, ok := NormalizeName("Holding Ab Oy")
	require.True(t, ok)
	assert.Equal(t, "holding ab", got)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"2024-01-15", true},
		{"2024-01-15T10:30:00", true},
		{"2024-01-15T10:30:00+02:00", true},
		{"2024-01-15 10:30:00", true},
		{"", false},
		{"not a date", false},
		{"15.01.2024", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, ok := ParseDate(tt.input)
			assert.Equal(t, tt.ok, ok)
		})
	}

	d, ok := ParseDate("2024-01-15")
	require.True(t, ok)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 15, d.Day())
}
