// Package parser turns one finalized utterance ("two kg sugar", "બે કિલો
// ખાંડ") into a priced bill line item against a read-only catalog snapshot.
//
// The engine is a pure synchronous computation: no I/O, no shared state, same
// inputs always give the same result. Speech capture is an external concern
// that delivers plain strings here, once per finalized transcript.
package parser

import (
	"errors"

	"github.com/google/uuid"

	"github.com/Dhyey-19/VaaniBill/internal/catalog"
)

// Expected, recoverable outcomes. The caller shows the reason and the
// shopkeeper re-speaks or retypes; neither aborts the billing session.
var (
	ErrEmptyName       = errors.New("no product name in utterance")
	ErrProductNotFound = errors.New("product not found in catalog")
)

// Draft is one parsed-but-unsaved bill line. IDs are local to the draft bill
// and never persisted; Total is rate×quantity, unrounded at build time.
type Draft struct {
	ID        string  `json:"id"`
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Rate      float64 `json:"rate"`
	Quantity  float64 `json:"quantity"`
	Total     float64 `json:"total"`
}

// Parse resolves an utterance into a draft line item: quantity extraction,
// name extraction, containment match, price. Returns ErrEmptyName when no
// product-name phrase survives extraction and ErrProductNotFound when no
// catalog entry is contained in the query.
func Parse(text string, locale Locale, products []catalog.Product) (*Draft, error) {
	strategy := strategyFor(locale)

	quantity := strategy.ExtractQuantity(text)

	name := strategy.ExtractName(text)
	if name == "" {
		return nil, ErrEmptyName
	}

	product := MatchProduct(name, locale, products)
	if product == nil {
		return nil, ErrProductNotFound
	}

	return buildDraft(product, quantity, locale), nil
}

func buildDraft(product *catalog.Product, quantity float64, locale Locale) *Draft {
	if quantity == 0 {
		quantity = 1
	}

	name := product.NameEn
	if locale == LocaleGujarati && product.NameGu != "" {
		name = product.NameGu
	}

	return &Draft{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Name:      name,
		Rate:      product.Rate,
		Quantity:  quantity,
		Total:     product.Rate * quantity,
	}
}
