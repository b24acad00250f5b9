package repository

import (
	"context"

	"storefront-backend/internal/infra"
	sqlc "storefront-backend/internal/infra/sqlc/generated"
)

type SettingsWriteQueries interface {
	UpsertSetting(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSettingParams) error
}

type SettingsRepository struct {
	queries SettingsWriteQueries
	db      sqlc.DBTX
}

func NewSettingsRepository(queries SettingsWriteQueries, db sqlc.DBTX) *SettingsRepository {
	return &SettingsRepository{queries: queries, db: db}
}

func (r *SettingsRepository) Put(ctx context.Context, key, value string) error {
	if err := r.queries.UpsertSetting(ctx, r.db, sqlc.UpsertSettingParams{Key: key, Value: value}); err != nil {
		return infra.WrapRepoErr("failed to save setting", err)
	}
	return nil
}
