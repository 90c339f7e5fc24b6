package numeral

import (
	"fmt"
	"strconv"
	"strings"
)

// ToRoman converts n to a Roman numeral. With separate set, the parts for
// each magnitude are kept apart by Separator and zero digits leave empty
// parts, so 2005 becomes "MM   V". Zero converts to the empty string.
func ToRoman(n int, separate bool) (string, error) {
	if n < 0 || n > Max {
		return "", fmt.Errorf("convert %d: %w", n, ErrOutOfRange)
	}

	digits := strconv.Itoa(n)
	parts := make([]string, 0, len(digits))
	for i, c := range digits {
		part, err := fragment(int(c-'0'), len(digits)-1-i)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}

	s := strings.Join(parts, string(Separator))
	if separate {
		return s, nil
	}
	return joinRuns(strings.ReplaceAll(s, string(Separator), "")), nil
}

// fragment spells one digit with the symbols of its level.
func fragment(digit, level int) (string, error) {
	tier, err := TierAt(level)
	if err != nil {
		return "", err
	}
	roles, err := PatternOf(digit)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, r := range roles {
		b.WriteString(tier.Symbol(r))
	}
	return b.String(), nil
}

// joinRuns merges marker runs that touch, so "_X__L_" becomes "_XL_".
func joinRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	open := false
	for i := 0; i < len(s); i++ {
		if s[i] != Marker {
			b.WriteByte(s[i])
			continue
		}
		if open && i+1 < len(s) && s[i+1] == Marker {
			// a run closes and the next opens: drop both markers
			i++
			continue
		}
		open = !open
		b.WriteByte(Marker)
	}
	return b.String()
}
