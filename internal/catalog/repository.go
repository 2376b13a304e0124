package catalog

import "context"

// Repository defines all database operations for the product catalog.
// Service depends ONLY on this interface.
type Repository interface {
	// Newest first; this is the catalog order the matcher consumes.
	ListByUser(ctx context.Context, userID string) ([]Product, error)

	// Case-insensitive English-name duplicate check within one merchant's
	// catalog. excludeID skips one row (0 = no exclusion) for updates.
	ExistsByNameEn(ctx context.Context, userID, nameEn string, excludeID int64) (bool, error)

	Create(ctx context.Context, product *Product) error

	// Update and Delete report false when the row does not exist or is not
	// owned by the user.
	Update(ctx context.Context, product *Product) (bool, error)
	Delete(ctx context.Context, userID string, id int64) (bool, error)
}
