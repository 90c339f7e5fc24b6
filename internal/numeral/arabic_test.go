package numeral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToArabicBasic(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"I", 1},
		{"IV", 4},
		{"IX", 9},
		{"XIV", 14},
		{"MCMXCIV", 1994},
		{"mcmxciv", 1994},
		{"MMCDLXXVIII", 2378},
		{"_V_", 5000},
		{"M_V_", 4000},
		{"_XL_", 40000},
		{"_CMXC_M_X_CMXCIX", 999999},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToArabicBasic(tt.in), "ToArabicBasic(%q)", tt.in)
	}
}

func TestToArabicBasic_SkipsUnknown(t *testing.T) {
	assert.Equal(t, 15, ToArabicBasic("X?V"))
	assert.Equal(t, 0, ToArabicBasic("abz?!"))
	assert.Equal(t, 4, ToArabicBasic("I-V"))
}

// arabic converts s with ToArabic and fails the test on error.
func arabic(t *testing.T, s string) int {
	t.Helper()
	v, err := ToArabic(s)
	require.NoError(t, err, "ToArabic(%q)", s)
	return v
}

func TestToArabic_Separated(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"MM CD LXX VIII", 2378},
		{"mm cd lxx viii", 2378},
		{"MM   V", 2005},
		{"X ", 10},
		{"M_V_   ", 4000},
		{"_XL_ M   ", 41000},
		{"_C__M_ _X__C_ M_X_ CM XC IX", 999999},
		{"_CM_ _XC_ M_X_ CM XC IX", 999999},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, arabic(t, tt.in), "ToArabic(%q)", tt.in)
	}
}

func TestToArabic_WithoutSeparatorUsesBasic(t *testing.T) {
	assert.Equal(t, 2378, arabic(t, "MMCDLXXVIII"))
	assert.Equal(t, 999999, arabic(t, "_CMXC_M_X_CMXCIX"))
	assert.Equal(t, 0, arabic(t, ""))
}

// Parts that spell no digit read as zero instead of failing.
func TestToArabic_UnmatchedPatternIsZero(t *testing.T) {
	assert.Equal(t, 1, arabic(t, "XXXX I"))
	assert.Equal(t, 1, arabic(t, "IV I"), "I and V have no role at the tens level")
}

func TestToArabic_IgnoresForeignSymbols(t *testing.T) {
	assert.Equal(t, 21, arabic(t, "XVX I"))
	assert.Equal(t, 21, arabic(t, "X?X I"))
}

func TestToArabic_TooManyParts(t *testing.T) {
	for _, in := range []string{"I _C_ _X_ M C X I", "IX _C_ _X_ M C X I", "      "} {
		_, err := ToArabic(in)
		assert.ErrorIs(t, err, ErrOutOfRange, "ToArabic(%q)", in)
	}
	assert.Equal(t, 111111, arabic(t, "_C_ _X_ M C X I"))
}

func TestToArabic_MarkedThousandsUnit(t *testing.T) {
	assert.Equal(t, 4000, arabic(t, "_IV_   "))
	assert.Equal(t, 4000, arabic(t, "_I__V_   "))
	assert.Equal(t, 3000, arabic(t, "_III_   "))
	assert.Equal(t, 9000, arabic(t, "_IX_   "))
	assert.Equal(t, ToArabicBasic("_IV_"), arabic(t, "_IV_   "))
}
