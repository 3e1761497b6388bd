package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseGrade(t *testing.T) {
	cases := []struct {
		in  string
		out int
		ok  bool
	}{
		{"10", 10, true},
		{" 9 ", 9, true},
		{"+8", 8, true},
		{"-1", -1, true},
		{"0", 0, true},
		{"9.0", 0, false},
		{"nine", 0, false},
		{"", 0, false},
		{"1 0", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseGrade(tc.in)
		if tc.ok {
			require.NoError(t, err, "%q", tc.in)
			require.Equal(t, tc.out, got, "%q", tc.in)
		} else {
			require.ErrorIs(t, err, ErrInvalidGrade, "%q", tc.in)
		}
	}
}

func TestParseCard(t *testing.T) {
	c, err := ParseCard("Card A", "10", "10.0")
	require.NoError(t, err)
	require.Equal(t, "Card A", c.Name())
	require.Equal(t, 10, c.Grade())
	require.True(t, c.Cost().Equal(decimal.NewFromInt(10)))
	require.Equal(t, BucketTens, c.Bucket())

	_, err = ParseCard("Card A", "9.0", "10")
	require.ErrorIs(t, err, ErrInvalidGrade)

	_, err = ParseCard("Card A", "9", "cheap")
	require.ErrorIs(t, err, ErrInvalidCost)
}

func TestCardEqual(t *testing.T) {
	a := NewCard("Card B", 9, decimal.RequireFromString("5.00"))
	b := NewCard("Card B", 9, decimal.NewFromInt(5))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(NewCard("Card B", 8, decimal.NewFromInt(5))))
}

func TestBucketOf(t *testing.T) {
	require.Equal(t, BucketTens, BucketOf(10))
	require.Equal(t, BucketNines, BucketOf(9))
	for _, g := range []int{8, 1, 0, -3, 11} {
		require.Equal(t, BucketEightOrLower, BucketOf(g), "grade %d", g)
	}
	require.Equal(t, "8s or lower", BucketEightOrLower.String())
}
