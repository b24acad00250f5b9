package commands

import (
	"context"
	"time"

	"storefront-backend/internal/domain/coupon"
	"storefront-backend/internal/infra"
	"storefront-backend/internal/pkg/errs"
	"storefront-backend/internal/pkg/patch"
	"storefront-backend/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

var (
	ErrCouponNotFound      = errs.Sentinel("coupon not found", errs.ErrNotFound)
	ErrDuplicateCouponCode = errs.Sentinel("Coupon code already exists", errs.ErrConflict)
	ErrCouponFieldRequired = errs.Sentinel("code, discount_type and discount_value are required", errs.ErrValidation)
	ErrNoFieldsToUpdate    = errs.Sentinel("no fields to update", errs.ErrValidation)
	ErrCouponOutOfRange    = errs.Sentinel("coupon values are out of range", errs.ErrValidation)
)

// CouponInput carries admin edits. Nil pointers and unset fields are left
// alone on update; a set-but-null field clears an optional column.
type CouponInput struct {
	Code          *string
	DiscountType  *string
	DiscountValue *decimal.Decimal
	MinOrderValue *decimal.Decimal
	MaxDiscount   patch.Field[decimal.Decimal]
	UsageLimit    patch.Field[int32]
	ExpiryDate    patch.Field[time.Time]
	IsActive      *bool
}

func (in CouponInput) empty() bool {
	return in.Code == nil && in.DiscountType == nil && in.DiscountValue == nil &&
		in.MinOrderValue == nil && !in.MaxDiscount.Set && !in.UsageLimit.Set &&
		!in.ExpiryDate.Set && in.IsActive == nil
}

func (in CouponInput) apply(p coupon.Params) coupon.Params {
	p.Code = patch.Coalesce(in.Code, p.Code)
	p.Kind = patch.Coalesce(in.DiscountType, p.Kind)
	p.Value = patch.Coalesce(in.DiscountValue, p.Value)
	p.MinOrderValue = patch.Coalesce(in.MinOrderValue, p.MinOrderValue)
	p.MaxDiscount = in.MaxDiscount.Apply(p.MaxDiscount)
	p.UsageLimit = in.UsageLimit.Apply(p.UsageLimit)
	p.ExpiryDate = in.ExpiryDate.Apply(p.ExpiryDate)
	p.Active = patch.Coalesce(in.IsActive, p.Active)
	return p
}

type CouponCommands interface {
	Create(ctx context.Context, in CouponInput) (*coupon.Coupon, error)
	Update(ctx context.Context, id int64, in CouponInput) (*coupon.Coupon, error)
	Delete(ctx context.Context, id int64) error
}

type couponCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCouponCommands(uow shared.UnitOfWork) CouponCommands {
	return &couponCommandsImpl{uow: uow}
}

func (uc *couponCommandsImpl) Create(ctx context.Context, in CouponInput) (*coupon.Coupon, error) {
	if in.Code == nil || in.DiscountType == nil || in.DiscountValue == nil {
		return nil, ErrCouponFieldRequired
	}
	c, err := coupon.NewCoupon(in.apply(coupon.Params{
		MinOrderValue: decimal.Zero,
		Active:        true,
	}))
	if err != nil {
		return nil, errs.Validation(err)
	}

	created, err := uc.uow.NonTx().Coupons().Create(ctx, c)
	if err != nil {
		return nil, mapCouponWriteErr(err, "failed to create coupon")
	}
	return created, nil
}

func (uc *couponCommandsImpl) Update(ctx context.Context, id int64, in CouponInput) (*coupon.Coupon, error) {
	if in.empty() {
		return nil, ErrNoFieldsToUpdate
	}

	var updated *coupon.Coupon
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Coupons().FindByID(ctx, id)
		if err != nil {
			return mapCouponWriteErr(err, "failed to load coupon")
		}
		next, err := current.Revise(in.apply(current.Params()))
		if err != nil {
			return errs.Validation(err)
		}
		updated, err = tx.Coupons().Update(ctx, next)
		if err != nil {
			return mapCouponWriteErr(err, "failed to update coupon")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *couponCommandsImpl) Delete(ctx context.Context, id int64) error {
	if err := uc.uow.NonTx().Coupons().Delete(ctx, id); err != nil {
		return mapCouponWriteErr(err, "failed to delete coupon")
	}
	return nil
}

func mapCouponWriteErr(err error, msg string) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrCouponNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return ErrDuplicateCouponCode
	case infra.IsKind(err, infra.KindCheckViolated):
		return ErrCouponOutOfRange
	default:
		return errs.Wrap(err, msg)
	}
}
