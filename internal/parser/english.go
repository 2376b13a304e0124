package parser

import "strings"

type englishStrategy struct{}

// Normalize lowercases, drops every character outside [a-z0-9 ], collapses
// whitespace runs and trims. Idempotent.
func (englishStrategy) Normalize(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return collapseSpaces(b.String())
}

func (englishStrategy) ExtractQuantity(text string) float64 {
	return extractQuantity(text)
}

// ExtractName drops every token that reads as a quantity (decimal literal or
// number word) or a recognized unit, and joins the rest with single spaces.
// An empty result means the utterance carried no usable product name.
func (englishStrategy) ExtractName(text string) string {
	var kept []string
	for _, token := range tokenize(text) {
		if _, ok := wordNumbers[token]; ok {
			continue
		}
		if _, ok := parseDecimal(token); ok {
			continue
		}
		if units[token] {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
