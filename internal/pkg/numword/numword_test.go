package numword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInWords_KnownValues(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Zero"},
		{1, "One"},
		{13, "Thirteen"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{101, "One Hundred One"},
		{999, "Nine Hundred Ninety Nine"},
		{1500, "One Thousand Five Hundred"},
		{99_999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{100_000, "One Lakh"},
		{427_498, "Four Lakh Twenty Seven Thousand Four Hundred Ninety Eight"},
		{10_000_000, "One Crore"},
		{12_345_678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
		{9_990_000_000, "Nine Hundred Ninety Nine Crore"},
		{10_000_000_000, "One Thousand Crore"},
		{123_456_789_012, "Twelve Thousand Three Hundred Forty Five Crore Sixty Seven Lakh Eighty Nine Thousand Twelve"},
		{100_000_000_000_000, "One Crore Crore"},
	}

	for _, tc := range cases {
		got, err := InWords(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "input %d", tc.in)
	}
}

func TestInWords_Negative(t *testing.T) {
	_, err := InWords(-1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInWords_NoSurroundingWhitespace(t *testing.T) {
	for _, n := range []int64{7, 1000, 100_000, 10_000_000, 10_001_000, 20_300_040} {
		got, err := InWords(n)
		require.NoError(t, err)
		assert.NotEmpty(t, got)
		assert.Equal(t, got, trimRight(got))
		assert.NotEqual(t, byte(' '), got[0])
	}
}

func TestRupees(t *testing.T) {
	got, err := Rupees(1500)
	require.NoError(t, err)
	assert.Equal(t, "One Thousand Five Hundred Rupees Only", got)

	_, err = Rupees(-5)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
