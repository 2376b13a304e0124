package parser

// Locale selects which language branch of the engine runs.
// It is an external preference read at call time; changing it mid-session
// never reparses items already on the bill.
type Locale string

const (
	LocaleEnglish  Locale = "english"
	LocaleGujarati Locale = "gujarati"
)

// LocaleStrategy is the per-language capability set of the engine:
// canonicalize text, pull a leading quantity, derive the product-name phrase.
type LocaleStrategy interface {
	Normalize(text string) string
	ExtractQuantity(text string) float64
	ExtractName(text string) string
}

func strategyFor(locale Locale) LocaleStrategy {
	if locale == LocaleGujarati {
		return gujaratiStrategy{}
	}
	return englishStrategy{}
}
