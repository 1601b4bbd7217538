package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/flipword/api/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
)

func newTestPostgresStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := database.Open(postgres.New(postgres.Config{Conn: sqlDB}))
	require.NoError(t, err)

	return NewPostgresStore(db), mock
}

func TestPostgresStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		s, mock := newTestPostgresStore(t)
		rows := sqlmock.NewRows([]string{"key", "value", "updated_at"}).
			AddRow("doc", []byte(`{"topics":[]}`), time.Now())
		mock.ExpectQuery(`SELECT \* FROM "kv_entries" WHERE key = \$1`).
			WillReturnRows(rows)

		got, err := s.Get(ctx, "doc")
		require.NoError(t, err)
		assert.JSONEq(t, `{"topics":[]}`, string(got))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent", func(t *testing.T) {
		s, mock := newTestPostgresStore(t)
		mock.ExpectQuery(`SELECT \* FROM "kv_entries" WHERE key = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}))

		_, err := s.Get(ctx, "doc")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresStore_Set(t *testing.T) {
	s, mock := newTestPostgresStore(t)
	mock.ExpectExec(`INSERT INTO "kv_entries" .* ON CONFLICT \("key"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Set(context.Background(), "doc", []byte(`{"topics":[]}`))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
