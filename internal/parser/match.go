package parser

import (
	"strings"

	"github.com/Dhyey-19/VaaniBill/internal/catalog"
)

// MatchProduct returns the first catalog entry whose normalized name is
// contained in the normalized query, or nil when none is.
//
// Catalog order is authoritative: products are scanned in the order the
// catalog collaborator supplied them, and when several candidates are
// contained the first listed wins. A short product name embedded in a longer
// spoken phrase is accepted as a match on purpose; the ambiguity is a
// usability trade-off, not an error. Entries whose name normalizes to empty
// (e.g. no Gujarati name under the Gujarati locale) are skipped.
func MatchProduct(query string, locale Locale, products []catalog.Product) *catalog.Product {
	strategy := strategyFor(locale)

	normalizedQuery := strategy.Normalize(query)
	if normalizedQuery == "" {
		return nil
	}

	for i := range products {
		name := products[i].NameEn
		if locale == LocaleGujarati {
			name = products[i].NameGu
		}

		candidate := strategy.Normalize(name)
		if candidate == "" {
			continue
		}
		if strings.Contains(normalizedQuery, candidate) {
			return &products[i]
		}
	}

	return nil
}
