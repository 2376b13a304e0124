package catalog

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

func (r *PostgresRepository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Product, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name_en, name_gu, rate, created_at
		FROM products
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product

	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.NameEn,
			&p.NameGu,
			&p.Rate,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *PostgresRepository) ExistsByNameEn(
	ctx context.Context,
	userID string,
	nameEn string,
	excludeID int64,
) (bool, error) {

	var exists int
	err := r.db.QueryRow(ctx, `
		SELECT 1
		FROM products
		WHERE user_id = $1
		  AND id <> $2
		  AND lower(name_en) = lower($3)
		LIMIT 1
	`, userID, excludeID, nameEn).Scan(&exists)

	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresRepository) Create(
	ctx context.Context,
	product *Product,
) error {

	return r.db.QueryRow(ctx, `
		INSERT INTO products (user_id, name_en, name_gu, rate, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, created_at
	`,
		product.UserID,
		product.NameEn,
		product.NameGu,
		product.Rate,
	).Scan(&product.ID, &product.CreatedAt)
}

func (r *PostgresRepository) Update(
	ctx context.Context,
	product *Product,
) (bool, error) {

	cmd, err := r.db.Exec(ctx, `
		UPDATE products
		SET name_en = $1, name_gu = $2, rate = $3
		WHERE id = $4 AND user_id = $5
	`,
		product.NameEn,
		product.NameGu,
		product.Rate,
		product.ID,
		product.UserID,
	)
	if err != nil {
		return false, err
	}

	return cmd.RowsAffected() > 0, nil
}

func (r *PostgresRepository) Delete(
	ctx context.Context,
	userID string,
	id int64,
) (bool, error) {

	cmd, err := r.db.Exec(ctx, `
		DELETE FROM products
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return false, err
	}

	return cmd.RowsAffected() > 0, nil
}
