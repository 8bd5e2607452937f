package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"carelink/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUserRepository_ListFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnError(errors.New("connection reset by peer"))

	users, err := repo.List(context.Background())
	assert.Nil(t, users)
	assertRepoErrorCode(t, err, models.CodeInternal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicateSQLState(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "idx_users_email",
		})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.User{
		Email:     "taken@example.kz",
		GivenName: "Arman",
		Surname:   "Armanov",
		Password:  "hashed",
	})
	assertRepoErrorCode(t, err, models.CodeDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmailFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WithArgs("someone@example.kz", 1).
		WillReturnError(errors.New("read timeout"))

	user, err := repo.GetByEmail(context.Background(), "someone@example.kz")
	assert.Nil(t, user)
	assertRepoErrorCode(t, err, models.CodeInternal)
	assert.NoError(t, mock.ExpectationsWereMet())
}
