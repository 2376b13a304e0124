package reports

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) BillsByUser(
	ctx context.Context,
	userID string,
) ([]BillSummary, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, total, created_at
		FROM bills
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []BillSummary

	for rows.Next() {
		var b BillSummary
		if err := rows.Scan(&b.ID, &b.Total, &b.CreatedAt); err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}

	return bills, rows.Err()
}

func (r *PostgresRepository) ItemsByUser(
	ctx context.Context,
	userID string,
) ([]ItemSummary, error) {

	rows, err := r.db.Query(ctx, `
		SELECT bi.bill_id, bi.name, bi.quantity, bi.total
		FROM bill_items bi
		JOIN bills b ON bi.bill_id = b.id
		WHERE b.user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ItemSummary

	for rows.Next() {
		var it ItemSummary
		if err := rows.Scan(&it.BillID, &it.Name, &it.Quantity, &it.Total); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}
