package reports

import (
	"context"
	"testing"
	"time"
)

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type MockRepository struct {
	bills []BillSummary
	items []ItemSummary
}

func (m *MockRepository) BillsByUser(ctx context.Context, userID string) ([]BillSummary, error) {
	return m.bills, nil
}

func (m *MockRepository) ItemsByUser(ctx context.Context, userID string) ([]ItemSummary, error) {
	return m.items, nil
}

// Wednesday 2026-08-26 12:00; the week started Sunday 2026-08-23.
var testNow = time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC)

func newTestService(repo *MockRepository) *Service {
	service := NewService(repo)
	service.now = func() time.Time { return testNow }
	return service
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestBuildReport_Totals(t *testing.T) {
	repo := &MockRepository{
		bills: []BillSummary{
			{ID: 1, Total: 100, CreatedAt: testNow.Add(-1 * time.Hour)},       // today
			{ID: 2, Total: 200, CreatedAt: testNow.AddDate(0, 0, -2)},         // this week
			{ID: 3, Total: 400, CreatedAt: testNow.AddDate(0, 0, -10)},        // older
			{ID: 4, Total: 50, CreatedAt: testNow.Truncate(24 * time.Hour)},   // midnight today
		},
	}

	report, err := newTestService(repo).Build(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Totals.All != 750 {
		t.Errorf("expected all-time total 750, got %v", report.Totals.All)
	}
	if report.Totals.Today != 150 {
		t.Errorf("expected today total 150, got %v", report.Totals.Today)
	}
	if report.Totals.Week != 350 {
		t.Errorf("expected week total 350, got %v", report.Totals.Week)
	}
	if report.Counts.Bills != 4 || report.Counts.TodayBills != 2 || report.Counts.WeekBills != 3 {
		t.Errorf("unexpected counts: %+v", report.Counts)
	}
}

func TestBuildReport_TopItems(t *testing.T) {
	repo := &MockRepository{
		bills: []BillSummary{
			{ID: 1, Total: 0, CreatedAt: testNow},
		},
		items: []ItemSummary{
			{BillID: 1, Name: "Sugar", Quantity: 2, Total: 100},
			{BillID: 1, Name: "sugar", Quantity: 1, Total: 50},
			{BillID: 1, Name: "Rice", Quantity: 5, Total: 200},
			{BillID: 1, Name: "Tea", Quantity: 0.5, Total: 60},
			{BillID: 1, Name: "Oil", Quantity: 1, Total: 90},
			{BillID: 1, Name: "Salt", Quantity: 1, Total: 10},
			{BillID: 1, Name: "Ghee", Quantity: 1, Total: 300},
		},
	}

	report, err := newTestService(repo).Build(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.TopItems) != 5 {
		t.Fatalf("expected top list capped at 5, got %d", len(report.TopItems))
	}

	// Ghee 300, Rice 200, Sugar 150 (case-insensitive merge), Oil 90, Tea 60.
	if report.TopItems[0].Name != "Ghee" || report.TopItems[1].Name != "Rice" {
		t.Errorf("unexpected ranking: %+v", report.TopItems)
	}
	if report.TopItems[2].Name != "Sugar" || report.TopItems[2].Revenue != 150 {
		t.Errorf("expected case-insensitive merge on Sugar, got %+v", report.TopItems[2])
	}
	if report.TopItems[2].Quantity != 3 {
		t.Errorf("expected merged quantity 3, got %v", report.TopItems[2].Quantity)
	}

	// Quantities, fractional included, sum into the item count.
	if report.Counts.Items != 11.5 {
		t.Errorf("expected item count 11.5, got %v", report.Counts.Items)
	}
}

func TestBuildReport_Empty(t *testing.T) {
	report, err := newTestService(&MockRepository{}).Build(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Totals.All != 0 || report.Counts.Bills != 0 {
		t.Errorf("expected zeroed report, got %+v", report)
	}
	if len(report.TopItems) != 0 {
		t.Errorf("expected no top items, got %+v", report.TopItems)
	}
}

func TestBuildReport_ItemsOfOlderBillsStillCounted(t *testing.T) {
	repo := &MockRepository{
		bills: []BillSummary{
			{ID: 9, Total: 80, CreatedAt: testNow.AddDate(0, -1, 0)},
		},
		items: []ItemSummary{
			{BillID: 9, Name: "Sugar", Quantity: 2, Total: 80},
		},
	}

	report, err := newTestService(repo).Build(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Totals.Today != 0 || report.Totals.Week != 0 {
		t.Errorf("expected old bill outside today/week windows, got %+v", report.Totals)
	}
	if len(report.TopItems) != 1 || report.TopItems[0].Revenue != 80 {
		t.Errorf("expected old items in top list, got %+v", report.TopItems)
	}
}
