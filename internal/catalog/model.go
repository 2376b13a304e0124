package catalog

import "time"

// Product is one catalog entry owned by a merchant. NameEn is always set;
// NameGu may be empty, which simply makes the product unmatchable under the
// Gujarati locale.
type Product struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"-"`
	NameEn    string    `json:"nameEn"`
	NameGu    string    `json:"nameGu"`
	Rate      float64   `json:"rate"`
	CreatedAt time.Time `json:"-"`
}
