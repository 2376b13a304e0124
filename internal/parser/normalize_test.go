package parser

import "testing"

func TestNormalizeEnglish(t *testing.T) {
	s := englishStrategy{}

	cases := map[string]string{
		"SUGAR!!":          "sugar",
		"sugar":            "sugar",
		"  Basmati  Rice ": "basmati rice",
		"tea-leaves (1kg)": "tealeaves 1kg",
		"!!!":              "",
	}

	for in, want := range cases {
		if got := s.Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeGujarati(t *testing.T) {
	s := gujaratiStrategy{}

	cases := map[string]string{
		"ખાંડ":         "ખાંડ",
		" ખાંડ  2kg ":  "ખાંડ",
		"બે કિલો ખાંડ": "બે કિલો ખાંડ",
		"hello":       "",
	}

	for in, want := range cases {
		if got := s.Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Two KG Sugar!!",
		"બે કિલો ખાંડ ૨",
		"  mixed ખાંડ input 42 ",
		"",
	}

	for _, locale := range []Locale{LocaleEnglish, LocaleGujarati} {
		s := strategyFor(locale)
		for _, in := range inputs {
			once := s.Normalize(in)
			twice := s.Normalize(once)
			if once != twice {
				t.Errorf("locale %s: normalize not idempotent for %q: %q != %q", locale, in, once, twice)
			}
		}
	}
}

func TestNormalizeCaseAndPunctuationInsensitive(t *testing.T) {
	s := englishStrategy{}

	if s.Normalize("SUGAR!!") != s.Normalize("sugar") {
		t.Errorf("expected 'SUGAR!!' and 'sugar' to normalize identically")
	}
}
