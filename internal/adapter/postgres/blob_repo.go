package postgres

import (
	"levelup/internal/adapter/sqlstore"
	"levelup/internal/domain"
)

var _ domain.BlobStore = (*DB)(nil)

var queries = sqlstore.Queries{
	Select: "SELECT value::text FROM levelup_blobs WHERE key=$1;",
	Upsert: "INSERT INTO levelup_blobs(key, value, updated_at) VALUES($1, $2::jsonb, $3) " +
		"ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=EXCLUDED.updated_at;",
}
