package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Save(user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (id, username, password_hash, business_name)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Username, user.PasswordHash, user.BusinessName,
	)
	return err
}

func (r *PostgresUserRepository) ExistsByUsername(username string) (bool, error) {
	query := `SELECT 1 FROM users WHERE username=$1 LIMIT 1`
	row := r.db.QueryRow(context.Background(), query, username)

	var exists int
	if err := row.Scan(&exists); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresUserRepository) FindByUsername(username string) (*User, error) {
	query := `
		SELECT id, username, password_hash, business_name
		FROM users WHERE username=$1
	`
	row := r.db.QueryRow(context.Background(), query, username)

	user := &User{}
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.BusinessName); err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (r *PostgresUserRepository) FindByID(id string) (*User, error) {
	query := `
		SELECT id, username, password_hash, business_name
		FROM users WHERE id=$1
	`
	row := r.db.QueryRow(context.Background(), query, id)

	user := &User{}
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.BusinessName); err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}
