package postgres

import (
	"context"
	"net/http"
	"testing"
	"time"

	"userauth/internal/domain/entity"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var userColumns = []string{"id", "name", "email", "password_hash", "mobile_no", "created_at", "updated_at"}

func newMockRepository(t *testing.T) (repository.UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	return NewUserRepository(db), mock
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Name:         "John Doe",
		Email:        "john@example.com",
		PasswordHash: "$2a$10$hash",
		MobileNo:     "0912345678",
	}
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec(`INSERT INTO "users"`).WillReturnResult(sqlmock.NewResult(0, 1))

		user := newTestUser()
		require.NoError(t, repo.Create(context.Background(), user))
		assert.False(t, user.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec(`INSERT INTO "users"`).
			WillReturnError(&pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "users_email_key"})

		err := repo.Create(context.Background(), newTestUser())
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not null violation", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec(`INSERT INTO "users"`).
			WillReturnError(&pgconn.PgError{Code: codeNotNullViolation})

		err := repo.Create(context.Background(), newTestUser())
		assert.ErrorIs(t, err, domainerrors.ErrUserCreationFailed)
	})

	t.Run("missing fields never reach the database", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		user := newTestUser()
		user.Name = ""
		err := repo.Create(context.Background(), user)
		assert.ErrorIs(t, err, domainerrors.ErrUserCreationFailed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("connection failure", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec(`INSERT INTO "users"`).WillReturnError(errors.New("connection refused"))

		err := repo.Create(context.Background(), newTestUser())
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		id := uuid.New()
		created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(id.String(), "John Doe", "john@example.com", "$2a$10$hash", "0912345678", created, created))

		user, err := repo.FindByEmail(context.Background(), "john@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "John Doe", user.Name)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
		assert.Equal(t, "0912345678", user.MobileNo)
		assert.True(t, created.Equal(user.CreatedAt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
			WillReturnRows(sqlmock.NewRows(userColumns))

		user, err := repo.FindByEmail(context.Background(), "nobody@example.com")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("query failure", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(errors.New("timeout"))

		user, err := repo.FindByEmail(context.Background(), "john@example.com")
		assert.Nil(t, user)
		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrUserNotFound)
		assert.Contains(t, err.Error(), "failed to find user by email")
	})
}

func TestConstraintErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantUnique bool
		wantNull   bool
	}{
		{name: "nil", err: nil},
		{name: "plain", err: errors.New("boom")},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, wantUnique: true},
		{name: "pg unique", err: &pgconn.PgError{Code: codeUniqueViolation}, wantUnique: true},
		{name: "wrapped pg unique", err: errors.Wrap(&pgconn.PgError{Code: codeUniqueViolation}, "insert"), wantUnique: true},
		{name: "pg not null", err: &pgconn.PgError{Code: codeNotNullViolation}, wantNull: true},
		{name: "pg other", err: &pgconn.PgError{Code: "42P01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantUnique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.wantNull, isNotNullConstraintViolation(tt.err))
		})
	}
}
