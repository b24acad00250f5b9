package queries

import (
	"context"
	"strings"

	"storefront-backend/internal/infra"
	"storefront-backend/internal/pkg/errs"
)

var (
	ErrOrderNotFound       = errs.Sentinel("order not found", errs.ErrNotFound)
	ErrOrderNumberRequired = errs.Sentinel("order number is required", errs.ErrValidation)
	ErrEmailRequired       = errs.Sentinel("email is required", errs.ErrValidation)
)

type OrderReadStore interface {
	FindByNumber(ctx context.Context, orderNumber string) (*OrderView, error)
	ListByEmail(ctx context.Context, email string) ([]*OrderView, error)
	List(ctx context.Context) ([]*OrderView, error)
}

type OrderQueries interface {
	Track(ctx context.Context, orderNumber string) (*OrderView, error)
	ListForCustomer(ctx context.Context, email string) ([]*OrderView, error)
	List(ctx context.Context) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) Track(ctx context.Context, orderNumber string) (*OrderView, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, ErrOrderNumberRequired
	}
	o, err := q.readStore.FindByNumber(ctx, orderNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to track order")
	}
	return o, nil
}

// ListForCustomer returns the customer's orders newest first. Emails are
// matched case-insensitively.
func (q *orderQueriesImpl) ListForCustomer(ctx context.Context, email string) ([]*OrderView, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	orders, err := q.readStore.ListByEmail(ctx, email)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list customer orders")
	}
	return orders, nil
}

func (q *orderQueriesImpl) List(ctx context.Context) ([]*OrderView, error) {
	orders, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list orders")
	}
	return orders, nil
}
