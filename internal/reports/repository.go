package reports

import "context"

// Repository reads the merchant's saved bills for aggregation.
type Repository interface {
	BillsByUser(ctx context.Context, userID string) ([]BillSummary, error)
	ItemsByUser(ctx context.Context, userID string) ([]ItemSummary, error)
}
