package uploadlog

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresStore) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	store, err := NewPostgresStore(db)
	require.NoError(t, err)

	return db, mock, store
}

func TestPostgresStore_Start(t *testing.T) {
	db, mock, store := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO upload_log")).
		WithArgs("sess-1", "user-42", "23andme", 600000, string(StatusStarted), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	rec := &Record{
		SessionID:     "sess-1",
		UserID:        "user-42",
		DataSource:    "23andme",
		TotalVariants: 600000,
	}

	require.NoError(t, store.Start(context.Background(), rec))
	assert.Equal(t, int64(7), rec.ID)
	assert.Equal(t, StatusStarted, rec.Status)
	assert.False(t, rec.StartedAt.IsZero())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Finish(t *testing.T) {
	db, mock, store := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE upload_log SET")).
		WithArgs("sess-1", string(StatusCompleted), int64(600000), "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Finish(context.Background(), "sess-1", StatusCompleted, 600000, "")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_FinishUnknownSession(t *testing.T) {
	db, mock, store := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE upload_log SET")).
		WithArgs("missing", string(StatusFailed), int64(0), "chunk 1 failed", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Finish(context.Background(), "missing", StatusFailed, 0, "chunk 1 failed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown upload session")
}

func TestPostgresStore_GetBySession(t *testing.T) {
	db, mock, store := setupMockDB(t)
	defer db.Close()

	started := time.Now().Add(-time.Minute)
	finished := time.Now()

	columns := []string{
		"id", "session_id", "user_id", "data_source",
		"total_variants", "variants_saved", "status", "detail",
		"started_at", "finished_at",
	}

	mock.ExpectQuery("SELECT (.+) FROM upload_log WHERE session_id").
		WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(7), "sess-1", "user-42", "23andme",
				600000, int64(234000), string(StatusPartial), "chunk 4 failed",
				started, finished))

	rec, err := store.GetBySession(context.Background(), "sess-1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, StatusPartial, rec.Status)
	assert.Equal(t, int64(234000), rec.VariantsSaved)
	require.NotNil(t, rec.FinishedAt)
	assert.WithinDuration(t, finished, *rec.FinishedAt, time.Second)
}

func TestPostgresStore_GetBySessionNotFound(t *testing.T) {
	db, mock, store := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM upload_log WHERE session_id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	rec, err := store.GetBySession(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestPostgresStore_Count(t *testing.T) {
	db, mock, store := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM upload_log")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}

func TestNewPostgresStore_NilDB(t *testing.T) {
	_, err := NewPostgresStore(nil)
	require.Error(t, err)
}
