package numeral

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestTierAt(t *testing.T) {
	tier, err := TierAt(0)
	require.NoError(t, err)
	assert.Equal(t, Tier{Unit: "I", Mid: "V", Upper: "X"}, tier)

	tier, err = TierAt(4)
	require.NoError(t, err)
	assert.Equal(t, "_L_", tier.Mid)

	for _, level := range []int{-1, Levels} {
		_, err := TierAt(level)
		assert.ErrorIs(t, err, ErrOutOfRange, "level %d", level)
	}
}

func TestTier_RoleOf(t *testing.T) {
	tier, _ := TierAt(3)
	for _, r := range []Role{Low, Mid, High} {
		got, ok := tier.RoleOf(tier.Symbol(r))
		require.True(t, ok)
		assert.Equal(t, r, got)
	}
	_, ok := tier.RoleOf("V")
	assert.False(t, ok, "plain V is not a thousands symbol")

	got, ok := tier.RoleOf("_I_")
	require.True(t, ok)
	assert.Equal(t, Low, got)
	assert.Equal(t, "M", tier.Symbol(Low))

	_, ok = tiers[0].RoleOf("_I_")
	assert.False(t, ok)
}

func TestPatterns(t *testing.T) {
	for d := 0; d <= 9; d++ {
		roles, err := PatternOf(d)
		require.NoError(t, err)
		got, ok := DigitOf(roles)
		if d == 0 {
			assert.False(t, ok)
			continue
		}
		require.True(t, ok, "digit %d", d)
		assert.Equal(t, d, got)
	}

	_, err := PatternOf(10)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, ok := DigitOf([]Role{High, Low})
	assert.False(t, ok)
}

func TestPatternOf_ReturnsCopy(t *testing.T) {
	roles, _ := PatternOf(4)
	roles[0] = High
	again, _ := PatternOf(4)
	assert.Equal(t, []Role{Low, Mid}, again)
}

func TestValue(t *testing.T) {
	v, ok := Value('d')
	assert.True(t, ok)
	assert.Equal(t, 500, v)

	_, ok = Value(Marker)
	assert.False(t, ok)
}

func TestConcurrentUse(t *testing.T) {
	defer goleak.VerifyNone(t)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := w * 1000; n < (w+1)*1000; n++ {
				s, err := ToRoman(n*97%Max, true)
				if err != nil {
					t.Error(err)
					return
				}
				if got, err := ToArabic(s); err != nil || got != n*97%Max {
					t.Errorf("ToArabic(%q) = %d, %v", s, got, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
