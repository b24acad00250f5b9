package readstore

import (
	"context"

	"storefront-backend/internal/infra"
	sqlc "storefront-backend/internal/infra/sqlc/generated"
	"storefront-backend/internal/pkg/pgconv"
)

type SettingsViewQueries interface {
	GetSetting(ctx context.Context, db sqlc.DBTX, key string) (string, error)
}

type SettingsReadStore struct {
	queries SettingsViewQueries
	db      sqlc.DBTX
}

func NewSettingsReadStore(queries SettingsViewQueries, db sqlc.DBTX) *SettingsReadStore {
	return &SettingsReadStore{queries: queries, db: db}
}

func (r *SettingsReadStore) Get(ctx context.Context, key string) (string, error) {
	v, err := r.queries.GetSetting(ctx, r.db, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("setting not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to get setting", err)
	}
	return v, nil
}
