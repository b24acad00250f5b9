package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"storefront-backend/internal/domain/coupon"
	"storefront-backend/internal/domain/order"
	"storefront-backend/internal/domain/user"
	"storefront-backend/internal/infra"
	"storefront-backend/internal/pkg/clock"
	"storefront-backend/internal/pkg/errs"
	"storefront-backend/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound        = errs.Sentinel("order not found", errs.ErrNotFound)
	ErrOrderNumberRequired  = errs.Sentinel("order number is required", errs.ErrValidation)
	ErrDuplicateOrderNumber = errs.Sentinel("order number already exists", errs.ErrConflict)
	ErrInvalidStatus        = errs.WithClass(order.ErrInvalidStatus, errs.ErrValidation)
)

// CouponRejectedError reports a coupon the engine refused at order time. It
// is a validation failure carrying the engine's message.
type CouponRejectedError struct {
	Reason  coupon.Reason
	Message string
}

func (e *CouponRejectedError) Error() string { return e.Message }

func (e *CouponRejectedError) Is(target error) bool { return target == errs.ErrValidation }

type OrderItemInput struct {
	ProductID *int64
	Name      string
	Quantity  int
	Price     decimal.Decimal
	Image     string
}

type CreateOrderInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	City            string
	State           string
	ZipCode         string
	Items           []OrderItemInput
	TotalAmount     decimal.Decimal
	CouponCode      string
	// Advisory when a coupon is present; the engine's figures win.
	DiscountAmount *decimal.Decimal
	FinalAmount    *decimal.Decimal
}

type OrderCommands interface {
	Create(ctx context.Context, in CreateOrderInput) (*order.Order, error)
	UpdateStatus(ctx context.Context, number, status string) (order.Status, error)
	Delete(ctx context.Context, number string) error
	Reset(ctx context.Context) error
}

type orderCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	numbers  order.NumberGenerator
	clock    clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, notifier shared.Notifier, numbers order.NumberGenerator, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{
		uow:      uow,
		notifier: notifier,
		numbers:  numbers,
		clock:    clk,
	}
}

func (uc *orderCommandsImpl) Create(ctx context.Context, in CreateOrderInput) (*order.Order, error) {
	now := uc.clock.Now()
	params, err := uc.buildParams(in, now)
	if err != nil {
		return nil, err
	}

	// Reject malformed input before opening a transaction.
	if _, err := order.NewOrder(withoutDiscount(params)); err != nil {
		return nil, errs.Validation(err)
	}

	var created *order.Order
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if params.CouponCode != nil {
			discount, err := uc.redeem(ctx, tx, *params.CouponCode, params.Total, now, in)
			if err != nil {
				return err
			}
			params.Discount = discount
		}

		o, err := order.NewOrder(params)
		if err != nil {
			return errs.Validation(err)
		}
		if err := tx.Orders().Create(ctx, o); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateOrderNumber
			}
			return errs.Wrap(err, "failed to create order")
		}
		if o.CouponCode() != nil {
			ok, err := tx.Coupons().IncrementUsage(ctx, *o.CouponCode())
			if err != nil {
				return errs.Wrap(err, "failed to record coupon usage")
			}
			if !ok {
				return &CouponRejectedError{
					Reason:  coupon.ReasonUsageLimitReached,
					Message: "This coupon has reached its usage limit",
				}
			}
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, created)
	return created, nil
}

func (uc *orderCommandsImpl) buildParams(in CreateOrderInput, now time.Time) (order.Params, error) {
	email, err := user.NewEmail(in.CustomerEmail)
	if err != nil {
		return order.Params{}, errs.Validation(err)
	}

	var code *coupon.Code
	if strings.TrimSpace(in.CouponCode) != "" {
		c := coupon.NormalizeCode(in.CouponCode)
		code = &c
	} else if in.DiscountAmount != nil && !in.DiscountAmount.IsZero() {
		return order.Params{}, errs.Validation(order.ErrDiscountWithoutCoupon)
	}

	number, err := uc.numbers.Next(now)
	if err != nil {
		return order.Params{}, errs.Wrap(err, "failed to generate order number")
	}

	items := make([]order.Item, len(in.Items))
	for i, it := range in.Items {
		items[i] = order.Item{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Image:     it.Image,
		}
	}

	return order.Params{
		Number: number,
		Customer: order.Customer{
			Name:  in.CustomerName,
			Email: email,
			Phone: in.CustomerPhone,
		},
		Shipping: order.ShippingAddress{
			Address: in.ShippingAddress,
			City:    in.City,
			State:   in.State,
			ZipCode: in.ZipCode,
		},
		Items:      items,
		Total:      in.TotalAmount,
		CouponCode: code,
		CreatedAt:  now,
	}, nil
}

func withoutDiscount(p order.Params) order.Params {
	p.Discount = decimal.Zero
	return p
}

// redeem locks the coupon row and evaluates it. The row stays locked until the
// surrounding transaction ends, so the usage increment sees the same state.
func (uc *orderCommandsImpl) redeem(ctx context.Context, tx shared.Tx, code coupon.Code, total decimal.Decimal, now time.Time, in CreateOrderInput) (decimal.Decimal, error) {
	c, err := tx.Coupons().FindByCodeForUpdate(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			ev := coupon.UnknownCode()
			return decimal.Zero, &CouponRejectedError{Reason: ev.Reason, Message: ev.Message}
		}
		return decimal.Zero, errs.Wrap(err, "failed to load coupon")
	}

	ev := c.Evaluate(total, now)
	if !ev.Valid() {
		return decimal.Zero, &CouponRejectedError{Reason: ev.Reason, Message: ev.Message}
	}

	if mismatch(in.DiscountAmount, ev.Discount) || mismatch(in.FinalAmount, ev.Final) {
		slog.WarnContext(ctx, "Client amounts differ from coupon evaluation",
			slog.String("coupon", code.String()),
			slog.String("client_discount", fmtOptional(in.DiscountAmount)),
			slog.String("client_final", fmtOptional(in.FinalAmount)),
			slog.String("discount", ev.Discount.StringFixed(coupon.MoneyPlaces)),
			slog.String("final", ev.Final.StringFixed(coupon.MoneyPlaces)))
	}
	return ev.Discount, nil
}

func mismatch(client *decimal.Decimal, computed decimal.Decimal) bool {
	return client != nil && !client.Round(coupon.MoneyPlaces).Equal(computed.Round(coupon.MoneyPlaces))
}

func fmtOptional(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return d.String()
}

// notify sends both notifications concurrently after commit. Failures and
// panics are logged; the order stands regardless.
func (uc *orderCommandsImpl) notify(ctx context.Context, o *order.Order) {
	ctx = context.WithoutCancel(ctx)
	var g errgroup.Group
	send := func(kind string, fn func(context.Context, *order.Order) error) {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("notifier panicked: %v", r)
				}
				if err != nil {
					slog.WarnContext(ctx, "Order notification failed",
						slog.String("kind", kind),
						slog.String("order_number", o.Number().String()),
						slog.String("error_kind", errs.Class(err).Error()),
						slog.String("error", err.Error()))
				}
				err = nil
			}()
			return fn(ctx, o)
		})
	}
	send("operator", uc.notifier.NotifyOperator)
	send("customer", uc.notifier.NotifyCustomer)
	_ = g.Wait()
}

func (uc *orderCommandsImpl) UpdateStatus(ctx context.Context, number, status string) (order.Status, error) {
	st, err := order.ParseStatus(status)
	if err != nil {
		return "", ErrInvalidStatus
	}
	n, err := parseNumber(number)
	if err != nil {
		return "", err
	}

	if err := uc.uow.NonTx().Orders().UpdateStatus(ctx, n, st); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrOrderNotFound
		}
		return "", errs.Wrap(err, "failed to update order status")
	}
	return st, nil
}

func (uc *orderCommandsImpl) Delete(ctx context.Context, number string) error {
	n, err := parseNumber(number)
	if err != nil {
		return err
	}
	if err := uc.uow.NonTx().Orders().Delete(ctx, n); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return errs.Wrap(err, "failed to delete order")
	}
	return nil
}

// Reset removes every order and restarts numbering of internal ids. Coupon
// usage counts are left as they are.
func (uc *orderCommandsImpl) Reset(ctx context.Context) error {
	if err := uc.uow.NonTx().Orders().Reset(ctx); err != nil {
		return errs.Wrap(err, "failed to reset orders")
	}
	return nil
}

func parseNumber(raw string) (order.Number, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrOrderNumberRequired
	}
	return order.Number(raw), nil
}
