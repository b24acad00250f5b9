package readstore

import (
	"context"

	"storefront-backend/internal/domain/coupon"
	"storefront-backend/internal/infra"
	"storefront-backend/internal/infra/converter"
	sqlc "storefront-backend/internal/infra/sqlc/generated"
	"storefront-backend/internal/pkg/pgconv"
	"storefront-backend/internal/usecase/queries"
)

type CouponViewQueries interface {
	ListCoupons(ctx context.Context, db sqlc.DBTX) ([]sqlc.Coupons, error)
	GetCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
}

type CouponReadStore struct {
	queries CouponViewQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries CouponViewQueries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CouponReadStore) List(ctx context.Context) ([]*queries.CouponView, error) {
	rows, err := r.queries.ListCoupons(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	views := make([]*queries.CouponView, 0, len(rows))
	for _, row := range rows {
		c, err := converter.CouponFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt coupon row", err)
		}
		views = append(views, &queries.CouponView{
			ID:            c.ID(),
			Code:          c.Code().String(),
			DiscountType:  c.Kind().String(),
			DiscountValue: c.Value(),
			MinOrderValue: c.MinOrderValue(),
			MaxDiscount:   c.MaxDiscount(),
			UsageLimit:    c.UsageLimit(),
			UsedCount:     c.UsedCount(),
			ExpiryDate:    c.ExpiryDate(),
			IsActive:      c.IsActive(),
			CreatedAt:     c.CreatedAt(),
		})
	}
	return views, nil
}

// FindByCode reads without locking; validation previews never hold rows.
func (r *CouponReadStore) FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByCode(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get coupon by code", err)
	}
	c, err := converter.CouponFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt coupon row", err)
	}
	return c, nil
}
