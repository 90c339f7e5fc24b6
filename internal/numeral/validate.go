package numeral

import "fmt"

// IsValid reports whether s is a well-formed classical numeral:
//
//   - no symbol repeats more than three times in a row;
//   - a subtracted symbol is never repeated (IIX);
//   - the symbol following a subtractive pair is smaller than the
//     subtracted one (IXI, XCX).
//
// The last rule only compares against the subtracted symbol. A five-type
// symbol around a pair (VIV, LXL, DCD) is not checked and reads as valid.
//
// Every character must be a numeral letter. Anything else, the Marker
// included, fails with ErrUnknownSymbol, so vinculum numerals cannot be
// validated. The empty string is valid.
func IsValid(s string) (bool, error) {
	var (
		previous    int // value to the right of the current symbol
		before      int // value to the right of previous
		count       int
		subtractive bool
	)

	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		v, ok := Value(runes[i])
		if !ok {
			return false, fmt.Errorf("validate %q: %w %q at %d", s, ErrUnknownSymbol, runes[i], i)
		}

		switch {
		case previous == 0:
			count = 1
		case v == previous:
			count++
			if subtractive || count > 3 {
				return false, nil
			}
		default:
			subtractive = previous > v
			count = 1
			if subtractive && before != 0 && before >= v {
				return false, nil
			}
		}
		before, previous = previous, v
	}
	return true, nil
}
