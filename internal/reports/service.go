package reports

import (
	"context"
	"sort"
	"strings"
	"time"
)

const topItemCount = 5

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Build aggregates the merchant's saved bills into sales totals for all
// time, today and the current week (starting Sunday), plus the top items by
// revenue. Item names are grouped case-insensitively; the first spelling
// seen is the one displayed.
func (s *Service) Build(ctx context.Context, userID string) (*Report, error) {
	bills, err := s.repo.BillsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ItemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	itemsByBill := make(map[int64][]ItemSummary)
	for _, item := range items {
		itemsByBill[item.BillID] = append(itemsByBill[item.BillID], item)
	}

	now := s.now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfToday.AddDate(0, 0, -int(startOfToday.Weekday()))

	report := &Report{Counts: Counts{Bills: len(bills)}}
	top := make(map[string]*TopItem)
	var topOrder []string

	for _, bill := range bills {
		report.Totals.All += bill.Total
		if !bill.CreatedAt.Before(startOfToday) {
			report.Totals.Today += bill.Total
			report.Counts.TodayBills++
		}
		if !bill.CreatedAt.Before(startOfWeek) {
			report.Totals.Week += bill.Total
			report.Counts.WeekBills++
		}

		for _, item := range itemsByBill[bill.ID] {
			report.Counts.Items += item.Quantity

			key := strings.ToLower(item.Name)
			entry, ok := top[key]
			if !ok {
				entry = &TopItem{Name: item.Name}
				top[key] = entry
				topOrder = append(topOrder, key)
			}
			entry.Quantity += item.Quantity
			entry.Revenue += item.Total
		}
	}

	topItems := make([]TopItem, 0, len(topOrder))
	for _, key := range topOrder {
		topItems = append(topItems, *top[key])
	}
	sort.SliceStable(topItems, func(i, j int) bool {
		return topItems[i].Revenue > topItems[j].Revenue
	})
	if len(topItems) > topItemCount {
		topItems = topItems[:topItemCount]
	}
	report.TopItems = topItems

	return report, nil
}
