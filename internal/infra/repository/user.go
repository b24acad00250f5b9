package repository

import (
	"context"
	"time"

	"storefront-backend/internal/domain/cart"
	"storefront-backend/internal/domain/user"
	"storefront-backend/internal/infra"
	sqlc "storefront-backend/internal/infra/sqlc/generated"
	"storefront-backend/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	UpsertUserFromIdentity(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertUserFromIdentityParams) (sqlc.Users, error)
	UpdateUserCart(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserCartParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email.Value())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user by email", err)
	}
	return toUser(row), nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	row, err := r.queries.CreateUser(ctx, r.db, sqlc.CreateUserParams{
		Name:         u.Name(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Phone:        u.Phone(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}
	return toUser(row), nil
}

func (r *UserRepository) UpsertExternal(ctx context.Context, u *user.User) (*user.User, error) {
	row, err := r.queries.UpsertUserFromIdentity(ctx, r.db, sqlc.UpsertUserFromIdentityParams{
		Name:       u.Name(),
		Email:      u.Email().Value(),
		ExternalID: pgconv.StringPtrToPgtype(u.ExternalID()),
		Phone:      u.Phone(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert external user", err)
	}
	return toUser(row), nil
}

func (r *UserRepository) SaveCart(ctx context.Context, owner cart.Owner, items cart.Items, savedAt time.Time) error {
	encoded, err := items.Encode()
	if err != nil {
		return infra.WrapRepoErr("failed to encode cart", err)
	}
	n, err := r.queries.UpdateUserCart(ctx, r.db, sqlc.UpdateUserCartParams{
		Email:         owner.String(),
		Cart:          string(encoded),
		CartUpdatedAt: pgconv.TimeToPgtype(savedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save cart", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func toUser(row sqlc.Users) *user.User {
	return user.ReconstructUser(
		row.ID,
		row.Name,
		user.ReconstructEmail(row.Email),
		row.PasswordHash,
		row.Phone,
		pgconv.StringPtrFromPgtype(row.ExternalID),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
