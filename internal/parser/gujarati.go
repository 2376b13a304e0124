package parser

import "strings"

type gujaratiStrategy struct{}

// Normalize drops every character outside the Gujarati Unicode block
// (U+0A80–U+0AFF) and space, collapses whitespace runs and trims. Idempotent.
func (gujaratiStrategy) Normalize(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r == ' ' || (r >= 0x0A80 && r <= 0x0AFF) {
			b.WriteRune(r)
		}
	}
	return collapseSpaces(b.String())
}

func (gujaratiStrategy) ExtractQuantity(text string) float64 {
	return extractQuantity(text)
}

// ExtractName blanks out ASCII and Gujarati digits, then removes each unit
// word as a literal substring. When stripping the units leaves nothing, the
// digit-removed text is kept instead; the fully raw string is never used.
func (gujaratiStrategy) ExtractName(text string) string {
	cleaned := collapseSpaces(strings.Map(blankDigits, text))

	withoutUnits := cleaned
	for _, unit := range gujaratiUnits {
		withoutUnits = strings.ReplaceAll(withoutUnits, unit, " ")
	}
	withoutUnits = collapseSpaces(withoutUnits)

	if withoutUnits == "" {
		return cleaned
	}
	return withoutUnits
}

func blankDigits(r rune) rune {
	if r >= '0' && r <= '9' {
		return ' '
	}
	// Gujarati digits ૦–૯
	if r >= 0x0AE6 && r <= 0x0AEF {
		return ' '
	}
	return r
}
