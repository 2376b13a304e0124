package parser

import (
	"strconv"
	"strings"
)

// wordNumbers maps spoken English quantity words to values.
var wordNumbers = map[string]float64{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
	"ten":   10,
	"half":  0.5,
}

// gujaratiNumbers maps Gujarati digit glyphs and number words to values.
var gujaratiNumbers = map[string]float64{
	"૦":    0,
	"૧":    1,
	"૨":    2,
	"૩":    3,
	"૪":    4,
	"૫":    5,
	"૬":    6,
	"૭":    7,
	"૮":    8,
	"૯":    9,
	"એક":   1,
	"બે":   2,
	"ત્રણ": 3,
	"ચાર":  4,
	"પાંચ": 5,
	"છ":    6,
	"સાત":  7,
	"આઠ":   8,
	"નવ":   9,
	"દસ":   10,
	"અડધો": 0.5,
	"અડધી": 0.5,
}

// units is the English unit vocabulary stripped from name candidates.
var units = map[string]bool{
	"kg":        true,
	"kgs":       true,
	"kilogram":  true,
	"kilograms": true,
	"gm":        true,
	"g":         true,
	"gram":      true,
	"grams":     true,
	"litre":     true,
	"liter":     true,
	"liters":    true,
	"litres":    true,
}

// gujaratiUnits are removed from Gujarati name candidates as literal
// substrings, not token-bounded.
var gujaratiUnits = []string{"કિલો", "કિલોગ્રામ", "ગ્રામ", "લિટર", "લીટર"}

// extractQuantity scans lowercased, stripped tokens left to right for a
// decimal literal or an English number word, then falls back to exact
// membership in the Gujarati numeral table on the raw whitespace-split text.
// The English scan runs first regardless of the active locale; the Gujarati
// table is only consulted when the scan found nothing. Returns 1 when no
// token matches.
func extractQuantity(text string) float64 {
	for _, token := range tokenize(text) {
		if v, ok := parseDecimal(token); ok {
			return v
		}
		if v, ok := wordNumbers[token]; ok {
			return v
		}
	}

	for _, token := range strings.Fields(text) {
		if v, ok := gujaratiNumbers[token]; ok {
			return v
		}
	}

	return 1
}

// tokenize lowercases, splits on whitespace and strips every character
// outside [a-z0-9.] from each token, dropping tokens that end up empty.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		var b strings.Builder
		for _, r := range field {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
				b.WriteRune(r)
			}
		}
		if token := b.String(); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func parseDecimal(token string) (float64, bool) {
	if !strings.ContainsAny(token, "0123456789") {
		return 0, false
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
