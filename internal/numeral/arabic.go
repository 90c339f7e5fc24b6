package numeral

import (
	"fmt"
	"strings"

	"github.com/rcliao/vinculum/internal/chunker"
)

// ToArabic converts a numeral to its value. When s holds Separator, each
// part is read as one digit at the magnitude given by its position (the
// last part is the ones). Otherwise s is handed to ToArabicBasic.
//
// Symbols that do not belong to a part's tier are ignored, and a part
// whose symbols spell no digit counts as zero. More parts than Levels fails
// with ErrOutOfRange.
func ToArabic(s string) (int, error) {
	if !strings.ContainsRune(s, Separator) {
		return ToArabicBasic(s), nil
	}

	chunks := chunker.Chunk(strings.ToUpper(s), chunker.Options{Separator: Separator})
	if len(chunks) > Levels {
		return 0, fmt.Errorf("%q has %d parts: %w", s, len(chunks), ErrOutOfRange)
	}

	total := 0
	for _, c := range chunks {
		v, err := chunkValue(c.Text, c.Level)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

func chunkValue(chunk string, level int) (int, error) {
	tier, err := TierAt(level)
	if err != nil {
		return 0, err
	}
	if strings.ContainsRune(chunk, Marker) {
		chunk = Expand(chunk)
	}

	var roles []Role
	for _, tok := range tokens(chunk) {
		if r, ok := tier.RoleOf(tok); ok {
			roles = append(roles, r)
		}
	}

	digit, _ := DigitOf(roles) // no match reads as zero
	return digit * pow10(level), nil
}

func pow10(level int) int {
	n := 1
	for i := 0; i < level; i++ {
		n *= 10
	}
	return n
}

// ToArabicBasic converts a numeral with the classical right-to-left rule: a
// symbol smaller than the one after it is subtracted, anything else is
// added. Each Marker toggles x1000 for the symbols it encloses. Unknown
// characters are skipped.
func ToArabicBasic(s string) int {
	total, previous := 0, 0
	inside := false

	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]
		if r == Marker {
			inside = !inside
			continue
		}
		v, ok := Value(r)
		if !ok {
			continue
		}
		if inside {
			v *= 1000
		}

		if previous == 0 || v >= previous {
			total += v
		} else {
			total -= v
		}
		previous = v
	}
	return total
}
