// Package repository содержит SQL-доступ к таблице users.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/siteauth/internal/server/models"
	serr "github.com/IvanChernomyrdin/siteauth/internal/shared/errors"
)

// uniqueViolation — SQLSTATE нарушения уникального индекса.
const uniqueViolation = "23505"

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// ExistsByEmail проверяет, занят ли email.
func (r *UsersRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var id int64

	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM users WHERE email=$1`,
		email,
	).Scan(&id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%w: lookup user: %v", serr.ErrInternal, err)
	}

	return true, nil
}

// Create вставляет пользователя и возвращает его id.
// Гонку двух регистраций на один email ловит уникальный индекс:
// unique_violation превращается в ErrAlreadyExists.
func (r *UsersRepository) Create(ctx context.Context, u models.User) (int64, error) {
	var id int64

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (fullname, email, password_hash, salt)
		 VALUES ($1,$2,$3,$4)
		 RETURNING id`,
		u.Fullname, u.Email, u.PasswordHash, u.Salt,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, serr.ErrAlreadyExists
		}
		return 0, fmt.Errorf("%w: insert user: %v", serr.ErrInternal, err)
	}

	return id, nil
}

// GetByEmail возвращает пользователя вместе с хэшем и солью.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var (
		u        models.User
		fullname sql.NullString
		hash     sql.NullString
		salt     sql.NullString
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT id, fullname, email, password_hash, salt FROM users WHERE email=$1 LIMIT 1`,
		email,
	).Scan(&u.ID, &fullname, &u.Email, &hash, &salt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, fmt.Errorf("%w: get user: %v", serr.ErrInternal, err)
	}

	if fullname.Valid {
		u.Fullname = &fullname.String
	}
	u.PasswordHash = hash.String
	u.Salt = salt.String

	return u, nil
}
