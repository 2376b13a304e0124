package billing

import "context"

// Repository defines all database operations for saved bills.
// Service depends ONLY on this interface.
type Repository interface {
	// Count of the merchant's bills whose number starts with prefix;
	// drives the per-day sequence in BILL<ddmmyy>_<n>.
	CountByNumberPrefix(ctx context.Context, userID, prefix string) (int, error)

	// SaveBill persists the bill and its items atomically, filling in
	// bill.ID and bill.CreatedAt.
	SaveBill(ctx context.Context, userID string, bill *Bill) error

	// Newest first, items included.
	ListByUser(ctx context.Context, userID string) ([]Bill, error)

	// ReplaceItems swaps a saved bill's items and total. Reports false when
	// the bill does not exist or is not owned by the user; Delete likewise.
	ReplaceItems(ctx context.Context, userID string, billID int64, items []BillItem, total float64) (bool, error)
	Delete(ctx context.Context, userID string, billID int64) (bool, error)
}
