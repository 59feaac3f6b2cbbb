package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnadev/dragonsrealm/internal/common"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock
}

func TestSQLiteBackend_Get(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`select payload from slots where name = ?`)).
		WithArgs(SlotDiet).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(`[]`)))

	backend := NewSQLiteBackend(db)
	payload, err := backend.Get(context.Background(), SlotDiet)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), payload)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteBackend_GetMissing(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`select payload from slots where name = ?`)).
		WithArgs(SlotDiet).
		WillReturnError(sql.ErrNoRows)

	backend := NewSQLiteBackend(db)
	_, err := backend.Get(context.Background(), SlotDiet)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteBackend_Put(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`insert into slots (name, payload) values (?, ?)`)).
		WithArgs(SlotTodos, []byte(`[{"id":1}]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	backend := NewSQLiteBackend(db)
	err := backend.Put(context.Background(), SlotTodos, []byte(`[{"id":1}]`))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBackend_Get(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT payload FROM slots WHERE name = $1`)).
		WithArgs(SlotQuests).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(`[]`)))

	backend := NewPostgresBackend(db)
	payload, err := backend.Get(context.Background(), SlotQuests)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), payload)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBackend_Delete(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM slots WHERE name = $1`)).
		WithArgs(SlotLoggedIn).
		WillReturnResult(sqlmock.NewResult(0, 1))

	backend := NewPostgresBackend(db)
	err := backend.Delete(context.Background(), SlotLoggedIn)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
