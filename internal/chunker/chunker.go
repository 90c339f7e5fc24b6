// Package chunker splits separated Roman numerals into per-magnitude chunks.
package chunker

import (
	"strings"
)

// DefaultSeparator is the character placed between magnitude chunks.
const DefaultSeparator = ' '

// Options configures chunking behavior.
type Options struct {
	Separator rune
}

// DefaultOptions returns default chunking options.
func DefaultOptions() Options {
	return Options{Separator: DefaultSeparator}
}

// ChunkResult is one magnitude chunk with its position in the numeral.
type ChunkResult struct {
	Text  string
	Index int // 0 = leftmost
	Level int // power of ten; the last chunk is level 0
}

// Chunk splits text on the separator. Empty chunks are kept: they stand for
// zero digits, so "X " is two chunks (tens and ones). Text without a
// separator is a single level 0 chunk.
func Chunk(text string, opts Options) []ChunkResult {
	if opts.Separator == 0 {
		opts = DefaultOptions()
	}
	if len(text) == 0 {
		return nil
	}

	parts := strings.Split(text, string(opts.Separator))
	results := make([]ChunkResult, len(parts))
	for i, p := range parts {
		results[i] = ChunkResult{Text: p, Index: i, Level: len(parts) - 1 - i}
	}
	return results
}

// NonEmpty drops the chunks of zero digits.
func NonEmpty(chunks []ChunkResult) []ChunkResult {
	var out []ChunkResult
	for _, c := range chunks {
		if c.Text != "" {
			out = append(out, c)
		}
	}
	return out
}

// Join rebuilds the separated numeral from its chunks, placing each chunk by
// level. Missing levels become empty chunks.
func Join(chunks []ChunkResult, opts Options) string {
	if opts.Separator == 0 {
		opts = DefaultOptions()
	}
	if len(chunks) == 0 {
		return ""
	}

	top := 0
	for _, c := range chunks {
		top = max(top, c.Level)
	}
	parts := make([]string, top+1)
	for _, c := range chunks {
		if c.Level >= 0 {
			parts[top-c.Level] = c.Text
		}
	}
	return strings.Join(parts, string(opts.Separator))
}
