// Package numeral converts between Arabic integers and Roman numerals.
//
// Values from 4,000 up to 999,999 are written with the vinculum: letters
// wrapped in a pair of Marker characters count a thousand times their
// plain value, so _V_ is 5,000 and _CM_ is 900,000. Conversion output may
// keep each power of ten in its own Separator-delimited part
// ("MM CD LXX VIII"); ToArabic uses those parts as magnitude hints.
//
// Parsing is lenient and validation is strict. ToArabic and ToArabicBasic
// skip anything they do not recognise and always return a number, while
// IsValid fails on the first unknown character. Callers that need to reject
// malformed input must validate before parsing.
package numeral

import "errors"

const (
	// Marker opens and closes a run of symbols worth x1000.
	Marker = '_'

	// Separator splits a numeral into one part per magnitude level.
	Separator = ' '

	// Max is the largest value that can be written.
	Max = 999999
)

var (
	// ErrOutOfRange is returned for values or magnitude levels that have
	// no representation.
	ErrOutOfRange = errors.New("out of range")

	// ErrUnknownSymbol is returned by IsValid for characters outside the
	// numeral alphabet.
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// Value returns the plain value of a numeral letter. Lower case letters are
// accepted; anything else reports false.
func Value(r rune) (int, bool) {
	switch r {
	case 'I', 'i':
		return 1, true
	case 'V', 'v':
		return 5, true
	case 'X', 'x':
		return 10, true
	case 'L', 'l':
		return 50, true
	case 'C', 'c':
		return 100, true
	case 'D', 'd':
		return 500, true
	case 'M', 'm':
		return 1000, true
	}
	return 0, false
}
