package billing

import "time"

// BillItem is one persisted priced row on a saved bill.
type BillItem struct {
	Name     string  `json:"name"`
	Rate     float64 `json:"rate"`
	Quantity float64 `json:"quantity"`
	Total    float64 `json:"total"`
}

// Bill is a finalized bill. BillNumber is BILL<ddmmyy>_<n> where n counts
// the merchant's bills for that day.
type Bill struct {
	ID         int64      `json:"id"`
	BillNumber string     `json:"billNumber"`
	Total      float64    `json:"total"`
	CreatedAt  time.Time  `json:"createdAt"`
	Items      []BillItem `json:"items"`
}
