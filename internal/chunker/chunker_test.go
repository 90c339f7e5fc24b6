package chunker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChunk_EmptyInput(t *testing.T) {
	result := Chunk("", DefaultOptions())
	if result != nil {
		t.Errorf("expected nil, got %v", result)
	}
}

func TestChunk_NoSeparator(t *testing.T) {
	result := Chunk("MCMXCIV", DefaultOptions())
	want := []ChunkResult{{Text: "MCMXCIV", Index: 0, Level: 0}}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("Chunk mismatch (-want +got):\n%s", diff)
	}
}

func TestChunk_Levels(t *testing.T) {
	result := Chunk("MM CD LXX VIII", DefaultOptions())
	want := []ChunkResult{
		{Text: "MM", Index: 0, Level: 3},
		{Text: "CD", Index: 1, Level: 2},
		{Text: "LXX", Index: 2, Level: 1},
		{Text: "VIII", Index: 3, Level: 0},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("Chunk mismatch (-want +got):\n%s", diff)
	}
}

func TestChunk_KeepsZeroDigits(t *testing.T) {
	result := Chunk("X ", DefaultOptions())
	want := []ChunkResult{
		{Text: "X", Index: 0, Level: 1},
		{Text: "", Index: 1, Level: 0},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("Chunk mismatch (-want +got):\n%s", diff)
	}
}

func TestChunk_CustomSeparator(t *testing.T) {
	result := Chunk("_V_|I", Options{Separator: '|'})
	if len(result) != 2 || result[0].Level != 1 || result[1].Text != "I" {
		t.Errorf("unexpected chunks: %+v", result)
	}
}

func TestChunk_ZeroOptionsUseDefault(t *testing.T) {
	result := Chunk("C X", Options{})
	if len(result) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(result))
	}
}

func TestNonEmpty(t *testing.T) {
	got := NonEmpty(Chunk("MM   V", DefaultOptions()))
	want := []ChunkResult{
		{Text: "MM", Index: 0, Level: 3},
		{Text: "V", Index: 3, Level: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NonEmpty mismatch (-want +got):\n%s", diff)
	}
}

func TestJoin_RoundTrip(t *testing.T) {
	for _, s := range []string{"MM CD LXX VIII", "MM   V", "X ", "_C__M_ _X__C_ M_X_ CM XC IX"} {
		got := Join(NonEmpty(Chunk(s, DefaultOptions())), DefaultOptions())
		if got != s {
			t.Errorf("Join(Chunk(%q)) = %q", s, got)
		}
	}
	if got := Join(nil, DefaultOptions()); got != "" {
		t.Errorf("expected empty join, got %q", got)
	}
}
