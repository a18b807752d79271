package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	domain "github.com/amirasaad/user-management/pkg/domain/user"
	userrepo "github.com/amirasaad/user-management/pkg/repository/user"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var userColumns = []string{"user_id", "username", "email", "first_name", "last_name", "created_at"}

func newMockRepository(t *testing.T) (userrepo.Repository, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	return New(db), mock
}

func strPtr(s string) *string { return &s }

func TestRepository_FindAll(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	repo, mock := newMockRepository(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(userColumns).
		AddRow(1, "alice", "alice@example.com", "Alice", nil, now).
		AddRow(2, "bob", "bob@example.com", nil, nil, now)
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(rows)

	users, err := repo.FindAll(context.Background())
	require.NoError(err)
	require.Len(users, 2)
	assert.Equal(int64(1), users[0].ID)
	assert.Equal("Alice", *users[0].FirstName)
	assert.Nil(users[0].LastName)
	assert.Equal("bob", users[1].Username)
	require.NoError(mock.ExpectationsWereMet())
}

func TestRepository_FindAll_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestRepository_FindByID(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	repo, mock := newMockRepository(t)
	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(userColumns).
		AddRow(7, "testuser", "test@example.com", "Test", "User", created)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE user_id = \$1`).
		WithArgs(int64(7), 1).
		WillReturnRows(rows)

	u, err := repo.FindByID(context.Background(), 7)
	require.NoError(err)
	require.NotNil(u)
	assert.Equal(int64(7), u.ID)
	assert.Equal("testuser", u.Username)
	assert.Equal(created, u.CreatedAt)
	require.NoError(mock.ExpectationsWereMet())
}

func TestRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE user_id = \$1`).
		WithArgs(int64(404), 1).
		WillReturnRows(sqlmock.NewRows(userColumns))

	u, err := repo.FindByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestRepository_FindByID_DBError(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE user_id = \$1`).
		WillReturnError(errors.New("connection reset"))

	u, err := repo.FindByID(context.Background(), 1)
	require.Error(t, err)
	assert.Nil(t, u)
	assert.Equal(t, "connection reset", err.Error())
}

func TestRepository_FindByUsername(t *testing.T) {
	repo, mock := newMockRepository(t)
	rows := sqlmock.NewRows(userColumns).
		AddRow(3, "carol", "carol@example.com", nil, nil, time.Now().UTC())
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("carol", 1).
		WillReturnRows(rows)

	u, err := repo.FindByUsername(context.Background(), "carol")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, int64(3), u.ID)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("ghost", 1).
		WillReturnRows(sqlmock.NewRows(userColumns))
	u, err = repo.FindByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, u)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save_Insert(t *testing.T) {
	require := require.New(t)
	repo, mock := newMockRepository(t)
	u := domain.New("alice", "alice@example.com", strPtr("Alice"), nil)

	mock.ExpectQuery(`INSERT INTO "users" (.+) VALUES (.+) RETURNING "user_id"`).
		WithArgs("alice", "alice@example.com", "Alice", nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

	saved, err := repo.Save(context.Background(), u)
	require.NoError(err)
	require.NotNil(saved)
	assert.Equal(t, int64(1), saved.ID)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, u.CreatedAt, saved.CreatedAt)
	require.NoError(mock.ExpectationsWereMet())
}

func TestRepository_Save_Update(t *testing.T) {
	repo, mock := newMockRepository(t)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	u := &domain.User{ID: 7, Username: "renamed", Email: "renamed@example.com", CreatedAt: created}

	mock.ExpectExec(`UPDATE "users" SET (.+) WHERE (.*)"user_id" = \$6`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := repo.Save(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ID)
	assert.Equal(t, created, saved.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save_DuplicateKey(t *testing.T) {
	repo, mock := newMockRepository(t)
	u := domain.New("alice", "alice@example.com", nil, nil)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	saved, err := repo.Save(context.Background(), u)
	require.Error(t, err)
	assert.Nil(t, saved)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec(`DELETE FROM "users" WHERE "users"\."user_id" = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), &domain.User{ID: 7})
	require.NoError(t, err)

	mock.ExpectExec(`DELETE FROM "users"`).WillReturnError(errors.New("delete error"))
	err = repo.Delete(context.Background(), &domain.User{ID: 8})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMapModelToDomain_NormalizesCreatedAtToUTC(t *testing.T) {
	stamp := time.Date(2024, 5, 1, 12, 0, 0, 123456000, time.FixedZone("UTC+2", 2*60*60))
	u := mapModelToDomain(&User{ID: 1, Username: "alice", Email: "alice@example.com", CreatedAt: stamp})

	assert.Equal(t, time.UTC, u.CreatedAt.Location())
	assert.True(t, stamp.Equal(u.CreatedAt))
	assert.Equal(t, 10, u.CreatedAt.Hour())
}
