package numeral

import (
	"fmt"
	"slices"
)

// patterns maps each decimal digit to the roles that spell it. They hold at
// every magnitude; the tier supplies the letters.
var patterns = [10][]Role{
	nil,
	{Low},
	{Low, Low},
	{Low, Low, Low},
	{Low, Mid},
	{Mid},
	{Mid, Low},
	{Mid, Low, Low},
	{Mid, Low, Low, Low},
	{Low, High},
}

// PatternOf returns the role sequence for a digit. Zero has an empty pattern.
func PatternOf(digit int) ([]Role, error) {
	if digit < 0 || digit > 9 {
		return nil, fmt.Errorf("digit %d: %w", digit, ErrOutOfRange)
	}
	return slices.Clone(patterns[digit]), nil
}

// DigitOf maps a role sequence back to the digit it spells. Sequences that
// match no pattern, including the empty one, report false.
func DigitOf(roles []Role) (int, bool) {
	for d := 1; d < len(patterns); d++ {
		if slices.Equal(patterns[d], roles) {
			return d, true
		}
	}
	return 0, false
}
