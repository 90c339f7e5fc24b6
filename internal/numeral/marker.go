package numeral

import "strings"

// Expand wraps every symbol inside a marker run in its own marker pair,
// so "_MM_" becomes "_M__M_". Text outside runs is copied unchanged and an
// unterminated run is emitted as written.
func Expand(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)

	open, start := false, 0
	for i := 0; i < len(s); i++ {
		if s[i] != Marker {
			if !open {
				b.WriteByte(s[i])
			}
			continue
		}
		if !open {
			open, start = true, i+1
			continue
		}
		for _, r := range s[start:i] {
			b.WriteByte(Marker)
			b.WriteRune(r)
			b.WriteByte(Marker)
		}
		open = false
	}
	if open {
		b.WriteByte(Marker)
		b.WriteString(s[start:])
	}
	return b.String()
}

// tokens splits an expanded chunk into symbols: single letters and
// marker-wrapped letters. Anything else becomes a one-byte token that no
// tier will match.
func tokens(s string) []string {
	var out []string
	for i := 0; i < len(s); {
		if s[i] == Marker && i+2 < len(s) && s[i+2] == Marker {
			out = append(out, s[i:i+3])
			i += 3
			continue
		}
		out = append(out, s[i:i+1])
		i++
	}
	return out
}
