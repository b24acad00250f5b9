package shared

import (
	"context"
	"time"

	"storefront-backend/internal/domain/cart"
	"storefront-backend/internal/domain/coupon"
	"storefront-backend/internal/domain/order"
	"storefront-backend/internal/domain/product"
	"storefront-backend/internal/domain/user"
)

type UnitOfWork interface {
	// Within runs fn in one ReadCommitted transaction. No retries: a failed
	// attempt surfaces to the caller.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// NonTx exposes the same repositories bound to the pool, for single
	// statement writes.
	NonTx() Tx
}

type Tx interface {
	Orders() OrderRepository
	Coupons() CouponRepository
	Products() ProductRepository
	Users() UserRepository
	Settings() SettingsRepository
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	UpdateStatus(ctx context.Context, number order.Number, status order.Status) error
	Delete(ctx context.Context, number order.Number) error
	Reset(ctx context.Context) error
}

type CouponRepository interface {
	// FindByCodeForUpdate locks the coupon row until the transaction ends.
	FindByCodeForUpdate(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
	FindByID(ctx context.Context, id int64) (*coupon.Coupon, error)
	Create(ctx context.Context, c *coupon.Coupon) (*coupon.Coupon, error)
	Update(ctx context.Context, c *coupon.Coupon) (*coupon.Coupon, error)
	Delete(ctx context.Context, id int64) error
	// IncrementUsage bumps used_count unless the limit is already reached and
	// reports whether a row changed.
	IncrementUsage(ctx context.Context, code coupon.Code) (bool, error)
}

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*product.Product, error)
	Create(ctx context.Context, p *product.Product) (*product.Product, error)
	Update(ctx context.Context, p *product.Product) (*product.Product, error)
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	Create(ctx context.Context, u *user.User) (*user.User, error)
	UpsertExternal(ctx context.Context, u *user.User) (*user.User, error)
	SaveCart(ctx context.Context, owner cart.Owner, items cart.Items, savedAt time.Time) error
}

type SettingsRepository interface {
	Put(ctx context.Context, key, value string) error
}
