package boolconv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestInvariantParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"5", 5},
		{" 3.14 ", 3.14},
		{"-3e2", -300},
		{"+0.5", 0.5},
		{"1,234.5", 1234.5},
		{"Infinity", math.Inf(1)},
		{"1e400", math.Inf(1)},
	}
	for _, tt := range tests {
		got, err := Invariant.ParseFloat(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}

	nan, err := Invariant.ParseFloat("NaN")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(nan))
}

func TestInvariantParseFloatErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "True", "0x10", "1_000", "1.2.3", "0.0,1", "1.5,"} {
		_, err := Invariant.ParseFloat(in)
		assert.ErrorIs(t, err, ErrSyntax, "input %q", in)
	}
}

func TestCultureSeparators(t *testing.T) {
	decimal, group := NewCulture(language.German).Separators()
	assert.Equal(t, ",", decimal)
	assert.Equal(t, ".", group)

	decimal, group = NewCulture(language.AmericanEnglish).Separators()
	assert.Equal(t, ".", decimal)
	assert.Equal(t, ",", group)
}

func TestCultureParseFloat(t *testing.T) {
	de := NewCulture(language.German)

	got, err := de.ParseFloat("1.234,5")
	require.NoError(t, err)
	assert.Equal(t, 1234.5, got)

	got, err = de.ParseFloat("-0,25")
	require.NoError(t, err)
	assert.Equal(t, -0.25, got)

	_, err = de.ParseFloat("0,0.1")
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = de.ParseFloat("zwei")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParseCulture(t *testing.T) {
	c, err := ParseCulture("de-DE")
	require.NoError(t, err)
	assert.Equal(t, "de-DE", c.Name())

	_, err = ParseCulture("!!")
	assert.Error(t, err)
}
