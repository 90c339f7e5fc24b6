package numeral

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRoman_Classical(t *testing.T) {
	tests := []struct {
		n        int
		separate bool
		want     string
	}{
		{1, false, "I"},
		{4, false, "IV"},
		{9, false, "IX"},
		{14, false, "XIV"},
		{40, false, "XL"},
		{90, false, "XC"},
		{400, false, "CD"},
		{1994, false, "MCMXCIV"},
		{2378, false, "MMCDLXXVIII"},
		{2378, true, "MM CD LXX VIII"},
		{3999, false, "MMMCMXCIX"},
		{2005, true, "MM   V"},
		{10, true, "X "},
	}
	for _, tt := range tests {
		got, err := ToRoman(tt.n, tt.separate)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "ToRoman(%d, %v)", tt.n, tt.separate)
	}
}

func TestToRoman_Vinculum(t *testing.T) {
	tests := []struct {
		n        int
		separate bool
		want     string
	}{
		{4000, false, "M_V_"},
		{4000, true, "M_V_   "},
		{5000, false, "_V_"},
		{6000, false, "_V_M"},
		{9000, false, "M_X_"},
		{40000, false, "_XL_"},
		{40000, true, "_X__L_    "},
		{900000, false, "_CM_"},
		{999999, false, "_CMXC_M_X_CMXCIX"},
		{999999, true, "_C__M_ _X__C_ M_X_ CM XC IX"},
	}
	for _, tt := range tests {
		got, err := ToRoman(tt.n, tt.separate)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "ToRoman(%d, %v)", tt.n, tt.separate)
	}
}

func TestToRoman_Zero(t *testing.T) {
	for _, sep := range []bool{false, true} {
		got, err := ToRoman(0, sep)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestToRoman_OutOfRange(t *testing.T) {
	for _, n := range []int{-1, Max + 1, 5000000} {
		_, err := ToRoman(n, false)
		assert.ErrorIs(t, err, ErrOutOfRange, "n=%d", n)
	}
}

func TestToRoman_MarkerDistinguishesMagnitude(t *testing.T) {
	four, err := ToRoman(4, false)
	require.NoError(t, err)
	thousands, err := ToRoman(4000, false)
	require.NoError(t, err)

	assert.Equal(t, "IV", four)
	assert.Contains(t, thousands, "_V_")
	assert.Equal(t, 2, strings.Count(thousands, string(Marker)))
	assert.Equal(t, 4000, arabic(t, thousands))
	assert.Equal(t, 4, arabic(t, four))
}

func TestToRoman_SeparatedCollapsesToJoined(t *testing.T) {
	for _, n := range []int{0, 7, 40, 2378, 4000, 14000, 40404, 123456, 900009, Max} {
		sep, err := ToRoman(n, true)
		require.NoError(t, err)
		joined, err := ToRoman(n, false)
		require.NoError(t, err)

		stripped := joinRuns(strings.ReplaceAll(sep, string(Separator), ""))
		assert.Equal(t, joined, stripped, "n=%d", n)
	}
}

func TestRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("full range round trip")
	}
	for n := 0; n <= Max; n++ {
		for _, sep := range []bool{false, true} {
			s, err := ToRoman(n, sep)
			if err != nil {
				t.Fatalf("ToRoman(%d, %v): %v", n, sep, err)
			}
			if got, err := ToArabic(s); err != nil || got != n {
				t.Fatalf("ToArabic(%q) = %d, %v, want %d", s, got, err, n)
			}
		}
	}
}

func TestJoinRuns(t *testing.T) {
	assert.Equal(t, "_XL_", joinRuns("_X__L_"))
	assert.Equal(t, "_CMXC_M_X_", joinRuns("_C__M__X__C_M_X_"))
	assert.Equal(t, "M_V_", joinRuns("M_V_"))
	assert.Equal(t, "", joinRuns(""))
}
