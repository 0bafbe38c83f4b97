package persistence

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"clipstream/domain/model"
)

func TestUserRepository_GetById(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewUserRepository(db)

	createdAt := time.Date(2026, 1, 10, 9, 30, 0, 0, time.UTC)
	updatedAt := time.Date(2026, 1, 12, 18, 0, 0, 0, time.UTC)

	mock.ExpectPrepare(regexp.QuoteMeta(`SELECT u.id, u.name, u.user_name, u.email, u.password, u.provider, u.created_at, u.updated_at
	FROM public.user AS u
	WHERE u.id = $1`)).
		ExpectQuery().WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_name", "email", "password", "provider", "created_at", "updated_at"}).
			AddRow(int64(1), "Mika Tan", "mikatan", "mika@example.com", "a252f77af72638ea5a0f9e5fbe5f2b2e", "local", createdAt, updatedAt))

	res, err := repository.GetById(context.Background(), 1)
	expected := model.User{
		ID:        1,
		Name:      "Mika Tan",
		UserName:  "mikatan",
		Email:     "mika@example.com",
		Password:  "a252f77af72638ea5a0f9e5fbe5f2b2e",
		Provider:  "local",
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	require.NoError(t, err)
	require.Equal(t, expected, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByUserName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewUserRepository(db)

	createdAt := time.Date(2026, 1, 10, 9, 30, 0, 0, time.UTC)
	updatedAt := time.Date(2026, 1, 12, 18, 0, 0, 0, time.UTC)

	mock.ExpectPrepare(regexp.QuoteMeta(`SELECT u.id, u.name, u.user_name, u.email, u.password, u.provider, u.created_at, u.updated_at
	FROM public.user AS u
	WHERE u.user_name = $1`)).
		ExpectQuery().WithArgs("mikatan").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_name", "email", "password", "provider", "created_at", "updated_at"}).
			AddRow(int64(1), "Mika Tan", "mikatan", "mika@example.com", "a252f77af72638ea5a0f9e5fbe5f2b2e", "local", createdAt, updatedAt))

	res, err := repository.GetByUserName(context.Background(), "mikatan")

	require.NoError(t, err)
	require.Equal(t, "mikatan", res.UserName)
	require.Equal(t, int64(1), res.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewUserRepository(db)

	mock.ExpectPrepare(regexp.QuoteMeta(`INSERT INTO public.user (name, user_name, email, password, provider) VALUES ($1, $2, $3, $4, $5)`)).
		ExpectExec().WithArgs("Mika Tan", "mikatan", "mika@example.com", "a252f77af72638ea5a0f9e5fbe5f2b2e", "local").
		WillReturnResult(sqlmock.NewResult(1, 1))

	user := model.User{
		Name:     "Mika Tan",
		UserName: "mikatan",
		Email:    "mika@example.com",
		Password: "a252f77af72638ea5a0f9e5fbe5f2b2e",
	}

	err = repository.CreateUser(context.Background(), user)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpsertByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewUserRepository(db)

	createdAt := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)

	mock.ExpectPrepare(regexp.QuoteMeta(`INSERT INTO public.user (name, user_name, email, password, provider) VALUES ($1, $2, $3, '', $4)
	ON CONFLICT (user_name) DO UPDATE SET name = EXCLUDED.name, updated_at = now()
	RETURNING id, name, user_name, email, password, provider, created_at, updated_at`)).
		ExpectQuery().WithArgs("Mika Tan", "mika@example.com", "mika@example.com", "google").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_name", "email", "password", "provider", "created_at", "updated_at"}).
			AddRow(int64(7), "Mika Tan", "mika@example.com", "mika@example.com", "", "google", createdAt, updatedAt))

	res, err := repository.UpsertByEmail(context.Background(), model.User{
		Name:     "Mika Tan",
		UserName: "mika@example.com",
		Email:    "mika@example.com",
		Provider: "google",
	})

	require.NoError(t, err)
	require.Equal(t, int64(7), res.ID)
	require.Equal(t, "google", res.Provider)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetById_PrepareError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewUserRepository(db)

	mock.ExpectPrepare(regexp.QuoteMeta(`SELECT u.id, u.name, u.user_name, u.email, u.password, u.provider, u.created_at, u.updated_at
	FROM public.user AS u
	WHERE u.id = $1`)).
		WillReturnError(fmt.Errorf("prepare error"))

	res, err := repository.GetById(context.Background(), 1)

	require.Error(t, err)
	require.Equal(t, model.User{}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_PrepareError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewUserRepository(db)

	mock.ExpectPrepare(regexp.QuoteMeta(`INSERT INTO public.user (name, user_name, email, password, provider) VALUES ($1, $2, $3, $4, $5)`)).
		WillReturnError(fmt.Errorf("prepare error"))

	err = repository.CreateUser(context.Background(), model.User{UserName: "mikatan"})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
