package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

var (
	psql   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

const (
	quotesTable       = "quotes"
	cacheEntriesTable = "cache_entries"
)

var quoteColumns = []string{"owner_id", "body", "version_token", "revision", "created_at", "updated_at"}

// updateQuoteIfMatch replaces the quote only when the stored token equals
// the expected one. The outer SELECT distinguishes the outcomes:
//   - (id, token)   updated
//   - (NULL, token) quote exists, token mismatch
//   - (NULL, NULL)  no quote for the owner
const updateQuoteIfMatch = `
	WITH target AS (
		SELECT owner_id, version_token FROM quotes WHERE owner_id = $1
	), updated AS (
		UPDATE quotes
		SET body = $2, version_token = $3, revision = $4, updated_at = NOW()
		WHERE owner_id = $1 AND version_token = $5
		RETURNING owner_id, updated_at
	)
	SELECT
		(SELECT owner_id FROM updated),
		(SELECT updated_at FROM updated),
		(SELECT version_token FROM target)`

func buildSelectQuoteQuery(ownerID string) (string, []any, error) {
	return psql.Select(quoteColumns...).
		From(quotesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

func buildInsertQuoteQuery(ownerID string, body []byte, versionToken string, revision int64) (string, []any, error) {
	return psql.Insert(quotesTable).
		Columns("owner_id", "body", "version_token", "revision").
		Values(ownerID, body, versionToken, revision).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

func buildSelectCacheEntryQuery(key string) (string, []any, error) {
	return sqlite.Select("value").
		From(cacheEntriesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertCacheEntryQuery(key string, value []byte, now time.Time) (string, []any, error) {
	return sqlite.Insert(cacheEntriesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, now.UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteCacheEntryQuery(key string) (string, []any, error) {
	return sqlite.Delete(cacheEntriesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
