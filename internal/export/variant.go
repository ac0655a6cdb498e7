package export

import (
	"strings"
)

// Variant is one font × anonymity × style combination.
type Variant struct {
	Font      string `json:"font"`
	Anonymous bool   `json:"anonymous"`
	Classic   bool   `json:"classic"`
}

// Choices returns the values a boolean dimension takes: always false, and
// true as well when include is set.
func Choices(include bool) []bool {
	if include {
		return []bool{false, true}
	}
	return []bool{false}
}

// Variants returns the cartesian product of fonts, anonymity and style, in
// that nesting order. Empty and duplicate fonts are dropped.
func Variants(fonts []string, anonymity, classic []bool) []Variant {
	var variants []Variant
	seen := map[string]bool{}
	for _, font := range fonts {
		font = strings.TrimSpace(font)
		if font == "" || seen[font] {
			continue
		}
		seen[font] = true
		for _, anonymous := range anonymity {
			for _, c := range classic {
				variants = append(variants, Variant{Font: font, Anonymous: anonymous, Classic: c})
			}
		}
	}
	return variants
}

// FileName returns the output file name for a variant:
// "<Title> - <Font>[ - Anonymous][ - Classic].docx".
func (v Variant) FileName(title string) string {
	parts := []string{safeName(title), safeName(v.Font)}
	if v.Anonymous {
		parts = append(parts, "Anonymous")
	}
	if v.Classic {
		parts = append(parts, "Classic")
	}
	return strings.Join(parts, " - ") + ".docx"
}

// safeName replaces characters that are not allowed in file names on common
// filesystems.
func safeName(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		if r < 0x20 {
			return -1
		}
		return r
	}, s)
	s = strings.Trim(strings.TrimSpace(s), ".")
	if s == "" {
		return "Untitled"
	}
	return s
}
