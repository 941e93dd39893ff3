package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func newTestQuoteRepo(t *testing.T) (QuoteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewQuoteRepository(newDBFromSQL(db), logger.Nop()), mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ── GetQuote ──────────────────────────────────────────────────────────────────

func TestGetQuote(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	body := []byte(`{"currency":"EUR"}`)

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
		check   func(t *testing.T, q models.StoredQuote)
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT owner_id, body, version_token, revision, created_at, updated_at FROM quotes").
					WithArgs("guest-1").
					WillReturnRows(sqlmock.NewRows(quoteColumns).
						AddRow("guest-1", body, "tok-1", int64(3), now, now))
			},
			check: func(t *testing.T, q models.StoredQuote) {
				assert.Equal(t, "guest-1", q.OwnerID)
				assert.Equal(t, body, q.Body)
				assert.Equal(t, "tok-1", q.VersionToken)
				assert.Equal(t, int64(3), q.Revision)
				require.NotNil(t, q.UpdatedAt)
				assert.True(t, now.Equal(*q.UpdatedAt))
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM quotes").
					WithArgs("guest-1").
					WillReturnRows(sqlmock.NewRows(quoteColumns))
			},
			wantErr: ErrQuoteNotFound,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM quotes").
					WithArgs("guest-1").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: ErrExecutingQuery,
		},
		{
			name: "transient error is retried once",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM quotes").
					WithArgs("guest-1").
					WillReturnError(pgError(pgerrcode.SerializationFailure))
				mock.ExpectQuery("FROM quotes").
					WithArgs("guest-1").
					WillReturnRows(sqlmock.NewRows(quoteColumns).
						AddRow("guest-1", body, "tok-2", int64(4), now, now))
			},
			check: func(t *testing.T, q models.StoredQuote) {
				assert.Equal(t, "tok-2", q.VersionToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestQuoteRepo(t)
			tt.setup(mock)

			q, err := repo.GetQuote(testContext(), "guest-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				tt.check(t, q)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ── CreateQuote ───────────────────────────────────────────────────────────────

func TestCreateQuote(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	quote := models.StoredQuote{OwnerID: "guest-1", Body: []byte(`{}`), VersionToken: "tok-1", Revision: 1}

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestQuoteRepo(t)
		mock.ExpectQuery("INSERT INTO quotes").
			WithArgs("guest-1", quote.Body, "tok-1", int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		created, err := repo.CreateQuote(testContext(), quote)

		require.NoError(t, err)
		assert.Equal(t, "tok-1", created.VersionToken)
		require.NotNil(t, created.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation", func(t *testing.T) {
		repo, mock := newTestQuoteRepo(t)
		mock.ExpectQuery("INSERT INTO quotes").
			WillReturnError(pgError(pgerrcode.UniqueViolation))

		_, err := repo.CreateQuote(testContext(), quote)

		assert.ErrorIs(t, err, ErrQuoteAlreadyExists)
	})

	t.Run("unexpected error", func(t *testing.T) {
		repo, mock := newTestQuoteRepo(t)
		mock.ExpectQuery("INSERT INTO quotes").
			WillReturnError(errors.New("disk full"))

		_, err := repo.CreateQuote(testContext(), quote)

		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

// ── UpdateQuote ───────────────────────────────────────────────────────────────

func TestUpdateQuote(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	quote := models.StoredQuote{OwnerID: "guest-1", Body: []byte(`{"notes":"x"}`), VersionToken: "tok-2", Revision: 2}
	cols := []string{"owner_id", "updated_at", "version_token"}

	tests := []struct {
		name    string
		row     []driver.Value
		wantErr error
	}{
		{name: "updated", row: []driver.Value{"guest-1", now, "tok-1"}},
		{name: "token mismatch", row: []driver.Value{nil, nil, "tok-other"}, wantErr: ErrVersionConflict},
		{name: "no quote", row: []driver.Value{nil, nil, nil}, wantErr: ErrQuoteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestQuoteRepo(t)

			mock.ExpectQuery("WITH target AS").
				WithArgs("guest-1", quote.Body, "tok-2", int64(2), "tok-1").
				WillReturnRows(sqlmock.NewRows(cols).AddRow(tt.row...))

			updated, err := repo.UpdateQuote(testContext(), quote, "tok-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "tok-2", updated.VersionToken)
				require.NotNil(t, updated.UpdatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateQuote_DriverError(t *testing.T) {
	repo, mock := newTestQuoteRepo(t)
	mock.ExpectQuery("WITH target AS").WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.UpdateQuote(testContext(), models.StoredQuote{OwnerID: "g"}, "t")

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
