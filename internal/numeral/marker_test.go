package numeral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"MCM", "MCM"},
		{"_V_", "_V_"},
		{"_MM_", "_M__M_"},
		{"M_XL_", "M_X__L_"},
		{"_X__L_", "_X__L_"},
		{"_CM_X_XC_", "_C__M_X_X__C_"},
		{"_V", "_V"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Expand(tt.in), "Expand(%q)", tt.in)
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"M", "_X_", "_L_"}, tokens("M_X__L_"))
	assert.Equal(t, []string{"_", "V"}, tokens("_V"))
	assert.Nil(t, tokens(""))
}
