package manuscript

import (
	"math"
	"testing"
)

func TestRoundUp(t *testing.T) {
	tests := []struct {
		count uint
		want  uint
	}{
		{0, 0},
		{7, 7},
		{100, 100},
		{101, 200},
		{150, 200},
		{200, 300},
		{17499, 17500},
		{17500, 17600},
		{17501, 18000},
		{18000, 18500},
		{93210, 93500},
		{math.MaxUint - 600, math.MaxUint - math.MaxUint%500},
		{math.MaxUint, math.MaxUint - math.MaxUint%500},
	}

	for _, tt := range tests {
		if got := RoundUp(tt.count); got != tt.want {
			t.Errorf("RoundUp(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"Hello, world! It's 42.", 4},
		{"one\ttwo\nthree", 3},
		{"-- ... !!", 0},
	}

	for _, tt := range tests {
		if got := CountWords(tt.text); got != tt.want {
			t.Errorf("CountWords(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestCountBlockWords(t *testing.T) {
	blocks := []Block{
		SectionBreak("Part One"),
		Paragraph([]Run{{Text: "The sea "}, {Text: "was", Italic: true}, {Text: " calm."}}),
		SceneSeparator(),
		Paragraph(Tokenize("Then it **was not**.")),
	}

	if got := CountBlockWords(blocks); got != 10 {
		t.Errorf("CountBlockWords() = %d, want 10", got)
	}
}
