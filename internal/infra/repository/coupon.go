package repository

import (
	"context"

	"storefront-backend/internal/domain/coupon"
	"storefront-backend/internal/infra"
	"storefront-backend/internal/infra/converter"
	sqlc "storefront-backend/internal/infra/sqlc/generated"
	"storefront-backend/internal/pkg/pgconv"
)

type CouponWriteQueries interface {
	GetCouponByCodeForUpdate(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
	GetCouponByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Coupons, error)
	CreateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCouponParams) (sqlc.Coupons, error)
	UpdateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCouponParams) (sqlc.Coupons, error)
	DeleteCoupon(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	IncrementCouponUsage(ctx context.Context, db sqlc.DBTX, code string) (int64, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      sqlc.DBTX
}

func NewCouponRepository(queries CouponWriteQueries, db sqlc.DBTX) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CouponRepository) FindByCodeForUpdate(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByCodeForUpdate(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock coupon", err)
	}
	return toCoupon(row)
}

func (r *CouponRepository) FindByID(ctx context.Context, id int64) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get coupon by id", err)
	}
	return toCoupon(row)
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) (*coupon.Coupon, error) {
	row, err := r.queries.CreateCoupon(ctx, r.db, converter.CouponToCreateParams(c))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create coupon", err)
	}
	return toCoupon(row)
}

func (r *CouponRepository) Update(ctx context.Context, c *coupon.Coupon) (*coupon.Coupon, error) {
	row, err := r.queries.UpdateCoupon(ctx, r.db, converter.CouponToUpdateParams(c))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update coupon", err)
	}
	return toCoupon(row)
}

func (r *CouponRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteCoupon(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) IncrementUsage(ctx context.Context, code coupon.Code) (bool, error) {
	n, err := r.queries.IncrementCouponUsage(ctx, r.db, code.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment coupon usage", err)
	}
	return n == 1, nil
}

func toCoupon(row sqlc.Coupons) (*coupon.Coupon, error) {
	c, err := converter.CouponFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt coupon row", err)
	}
	return c, nil
}
