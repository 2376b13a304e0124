package reports

import "time"

// BillSummary and ItemSummary are the read-model rows the aggregation runs
// over; they carry only what the report needs.
type BillSummary struct {
	ID        int64
	Total     float64
	CreatedAt time.Time
}

type ItemSummary struct {
	BillID   int64
	Name     string
	Quantity float64
	Total    float64
}

type Totals struct {
	All   float64 `json:"all"`
	Today float64 `json:"today"`
	Week  float64 `json:"week"`
}

// Counts.Items sums quantities, so it can be fractional (half-kg lines).
type Counts struct {
	Bills      int     `json:"bills"`
	Items      float64 `json:"items"`
	TodayBills int     `json:"todayBills"`
	WeekBills  int     `json:"weekBills"`
}

type TopItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type Report struct {
	Totals   Totals    `json:"totals"`
	Counts   Counts    `json:"counts"`
	TopItems []TopItem `json:"topItems"`
}
