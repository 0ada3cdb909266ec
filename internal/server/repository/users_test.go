package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/siteauth/internal/server/models"
	"github.com/IvanChernomyrdin/siteauth/internal/server/repository"
	serr "github.com/IvanChernomyrdin/siteauth/internal/shared/errors"
)

func newRepo(t *testing.T) (*repository.UsersRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return repository.NewUsersRepository(db), mock
}

func strPtr(s string) *string { return &s }

// Успех
func TestUsersRepository_Create_OK(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Alice", "a@x.com", "hash", "salt").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := repo.Create(context.Background(), models.User{
		Fullname:     strPtr("Alice"),
		Email:        "a@x.com",
		PasswordHash: "hash",
		Salt:         "salt",
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), id)
}

// Без fullname в базу уходит NULL
func TestUsersRepository_Create_NullFullname(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(nil, "a@x.com", "hash", "salt").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	_, err := repo.Create(context.Background(), models.User{Email: "a@x.com", PasswordHash: "hash", Salt: "salt"})
	require.NoError(t, err)
}

// Такой пользователь уже есть (сработал уникальный индекс)
func TestUsersRepository_Create_UniqueViolation(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), models.User{Email: "a@x.com"})
	require.ErrorIs(t, err, serr.ErrAlreadyExists)
}

// Ошибка сервера
func TestUsersRepository_Create_InternalError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), models.User{Email: "a@x.com"})
	require.ErrorIs(t, err, serr.ErrInternal)
	require.NotErrorIs(t, err, serr.ErrAlreadyExists)
}

// Другой код postgres — не конфликт
func TestUsersRepository_Create_OtherPgError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "42P01"})

	_, err := repo.Create(context.Background(), models.User{Email: "a@x.com"})
	require.ErrorIs(t, err, serr.ErrInternal)
}

func TestUsersRepository_ExistsByEmail(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT id FROM users WHERE email`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(`SELECT id FROM users WHERE email`).
		WithArgs("b@x.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`SELECT id FROM users WHERE email`).
		WithArgs("c@x.com").
		WillReturnError(errors.New("conn reset"))

	ok, err := repo.ExistsByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.ExistsByEmail(context.Background(), "b@x.com")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = repo.ExistsByEmail(context.Background(), "c@x.com")
	require.ErrorIs(t, err, serr.ErrInternal)
}

// поиск по email
func TestUsersRepository_GetByEmail_OK(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT id, fullname, email, password_hash, salt FROM users`).
		WithArgs("a@x.com").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "fullname", "email", "password_hash", "salt"}).
				AddRow(int64(3), "Alice", "a@x.com", "hash", "salt"),
		)

	u, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Equal(t, int64(3), u.ID)
	require.NotNil(t, u.Fullname)
	require.Equal(t, "Alice", *u.Fullname)
	require.Equal(t, "hash", u.PasswordHash)
	require.Equal(t, "salt", u.Salt)
}

// NULL в fullname
func TestUsersRepository_GetByEmail_NullFullname(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT id, fullname, email, password_hash, salt FROM users`).
		WithArgs("a@x.com").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "fullname", "email", "password_hash", "salt"}).
				AddRow(int64(3), nil, "a@x.com", "hash", "salt"),
		)

	u, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Nil(t, u.Fullname)
}

// не найден по email
func TestUsersRepository_GetByEmail_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT id, fullname, email, password_hash, salt FROM users`).
		WithArgs("a@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.ErrorIs(t, err, serr.ErrNotFound)
}

// ошибка сервера при поиске по email
func TestUsersRepository_GetByEmail_InternalError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT id, fullname, email, password_hash, salt FROM users`).
		WithArgs("a@x.com").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.ErrorIs(t, err, serr.ErrInternal)
}
