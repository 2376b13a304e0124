package billing

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

func (r *PostgresRepository) CountByNumberPrefix(
	ctx context.Context,
	userID string,
	prefix string,
) (int, error) {

	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM bills
		WHERE user_id = $1
		  AND bill_number LIKE $2 || '%'
	`, userID, prefix).Scan(&count)

	return count, err
}

// --------------------------------------------------
// SAVE BILL + ITEMS (ATOMIC)
// --------------------------------------------------
func (r *PostgresRepository) SaveBill(
	ctx context.Context,
	userID string,
	bill *Bill,
) error {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO bills (user_id, bill_number, total, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, created_at
	`, userID, bill.BillNumber, bill.Total).Scan(&bill.ID, &bill.CreatedAt)
	if err != nil {
		return err
	}

	for _, item := range bill.Items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO bill_items (bill_id, name, rate, quantity, total)
			VALUES ($1, $2, $3, $4, $5)
		`, bill.ID, item.Name, item.Rate, item.Quantity, item.Total); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Bill, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, bill_number, total, created_at
		FROM bills
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []Bill

	for rows.Next() {
		var b Bill
		if err := rows.Scan(&b.ID, &b.BillNumber, &b.Total, &b.CreatedAt); err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range bills {
		items, err := r.listItems(ctx, bills[i].ID)
		if err != nil {
			return nil, err
		}
		bills[i].Items = items
	}

	return bills, nil
}

func (r *PostgresRepository) listItems(
	ctx context.Context,
	billID int64,
) ([]BillItem, error) {

	rows, err := r.db.Query(ctx, `
		SELECT name, rate, quantity, total
		FROM bill_items
		WHERE bill_id = $1
		ORDER BY id
	`, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []BillItem{}

	for rows.Next() {
		var it BillItem
		if err := rows.Scan(&it.Name, &it.Rate, &it.Quantity, &it.Total); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// --------------------------------------------------
// REPLACE ITEMS ON A SAVED BILL (ATOMIC)
// --------------------------------------------------
func (r *PostgresRepository) ReplaceItems(
	ctx context.Context,
	userID string,
	billID int64,
	items []BillItem,
	total float64,
) (bool, error) {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `
		UPDATE bills
		SET total = $1
		WHERE id = $2 AND user_id = $3
	`, total, billID, userID)
	if err != nil {
		return false, err
	}
	if cmd.RowsAffected() == 0 {
		return false, nil
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM bill_items WHERE bill_id = $1
	`, billID); err != nil {
		return false, err
	}

	for _, item := range items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO bill_items (bill_id, name, rate, quantity, total)
			VALUES ($1, $2, $3, $4, $5)
		`, billID, item.Name, item.Rate, item.Quantity, item.Total); err != nil {
			return false, err
		}
	}

	return true, tx.Commit(ctx)
}

func (r *PostgresRepository) Delete(
	ctx context.Context,
	userID string,
	billID int64,
) (bool, error) {

	cmd, err := r.db.Exec(ctx, `
		DELETE FROM bills WHERE id = $1 AND user_id = $2
	`, billID, userID)
	if err != nil {
		return false, err
	}

	return cmd.RowsAffected() > 0, nil
}
