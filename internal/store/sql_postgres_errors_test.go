package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"too many connections", pgError(pgerrcode.TooManyConnections), Retryable},
		{"query canceled", pgError(pgerrcode.QueryCanceled), NonRetryable},
		{"check violation", pgError(pgerrcode.CheckViolation), NonRetryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"undefined table", pgError(pgerrcode.UndefinedTable), NonRetryable},
		{"wrapped retryable", fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgerrcode.SerializationFailure}), Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(pgError(pgerrcode.UniqueViolation)))
	assert.Empty(t, postgresError(errors.New("not pg")))
}

func TestDB_WithRetry(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}

	t.Run("retries transient failure once", func(t *testing.T) {
		calls := 0
		err := db.withRetry(testContext(), func() error {
			calls++
			if calls == 1 {
				return pgError(pgerrcode.DeadlockDetected)
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("does not retry permanent failure", func(t *testing.T) {
		calls := 0
		err := db.withRetry(testContext(), func() error {
			calls++
			return pgError(pgerrcode.UniqueViolation)
		})
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after second transient failure", func(t *testing.T) {
		calls := 0
		err := db.withRetry(testContext(), func() error {
			calls++
			return pgError(pgerrcode.SerializationFailure)
		})
		assert.Error(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("cancelled context skips retry", func(t *testing.T) {
		ctx, cancel := context.WithCancel(testContext())
		cancel()

		calls := 0
		_ = db.withRetry(ctx, func() error {
			calls++
			return pgError(pgerrcode.SerializationFailure)
		})
		assert.Equal(t, 1, calls)
	})

	t.Run("no classifier", func(t *testing.T) {
		calls := 0
		_ = (&DB{}).withRetry(testContext(), func() error {
			calls++
			return pgError(pgerrcode.SerializationFailure)
		})
		assert.Equal(t, 1, calls)
	})
}
