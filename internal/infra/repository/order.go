package repository

import (
	"context"

	"storefront-backend/internal/domain/order"
	"storefront-backend/internal/infra"
	"storefront-backend/internal/infra/converter"
	sqlc "storefront-backend/internal/infra/sqlc/generated"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) (sqlc.Orders, error)
	UpdateOrderStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStatusParams) (int64, error)
	DeleteOrderByNumber(ctx context.Context, db sqlc.DBTX, orderNumber string) (int64, error)
	ResetOrders(ctx context.Context, db sqlc.DBTX) error
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	params, err := converter.OrderToCreateParams(o)
	if err != nil {
		return infra.WrapRepoErr("failed to encode order items", err)
	}
	if _, err := r.queries.CreateOrder(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, number order.Number, status order.Status) error {
	n, err := r.queries.UpdateOrderStatus(ctx, r.db, sqlc.UpdateOrderStatusParams{
		OrderNumber: number.String(),
		Status:      status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, number order.Number) error {
	n, err := r.queries.DeleteOrderByNumber(ctx, r.db, number.String())
	if err != nil {
		return infra.WrapRepoErr("failed to delete order", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) Reset(ctx context.Context) error {
	if err := r.queries.ResetOrders(ctx, r.db); err != nil {
		return infra.WrapRepoErr("failed to reset orders", err)
	}
	return nil
}
