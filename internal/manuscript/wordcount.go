package manuscript

import (
	"math"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

const (
	flashLimit   = 100
	novellaLimit = 17500
	shortStep    = 100
	novellaStep  = 500
)

// RoundUp applies the editorial word-count convention: counts of 100 or
// fewer are reported exactly, longer works round up to the next multiple of
// 100, and anything past 17,500 words rounds up to the next multiple of 500.
// An exact multiple still moves to the next step (17,500 reports as 17,600).
func RoundUp(count uint) uint {
	switch {
	case count > novellaLimit:
		return roundToStep(count, novellaStep)
	case count <= flashLimit:
		return count
	default:
		return roundToStep(count, shortStep)
	}
}

// roundToStep moves count to the next multiple of step. Counts with no
// larger representable multiple saturate at the largest one.
func roundToStep(count, step uint) uint {
	if count > math.MaxUint-step {
		return math.MaxUint - math.MaxUint%step
	}
	count += step
	return count - count%step
}

// CountWords counts the words in text: UAX #29 word segments that contain at
// least one letter or digit. Punctuation and whitespace segments are ignored.
func CountWords(text string) int {
	count := 0
	segments := words.FromString(text)
	for segments.Next() {
		if isWord(segments.Value()) {
			count++
		}
	}
	return count
}

func isWord(segment string) bool {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// CountBlockWords counts words across paragraphs and section headings.
// Scene separators contribute nothing.
func CountBlockWords(blocks []Block) int {
	total := 0
	for _, block := range blocks {
		if block.Kind == KindSceneSeparator {
			continue
		}
		total += CountWords(block.Text())
	}
	return total
}
