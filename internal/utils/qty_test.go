package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseQty(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"30", 30, true},
		{" 12.5 ", 12.5, true},
		{"1,234", 1234, true},
		{"12,34,567", 1234567, true},
		{"1,234,567.25", 1234567.25, true},
		{"1.234,5", 1234.5, true},
		{"0,5", 0.5, true},
		{"1 234", 1234, true},
		{"1\u00a0234", 1234, true},
		{"(12)", -12, true},
		{"-3", -3, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"12 tabs", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"1,2,3", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseQty(tc.in)
		require.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			require.InDelta(t, tc.want, got, 1e-9, "input %q", tc.in)
		}
	}
}

func TestIsBlank(t *testing.T) {
	require.True(t, IsBlank(""))
	require.True(t, IsBlank(" \t"))
	require.False(t, IsBlank(" 0 "))
}
