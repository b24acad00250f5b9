package readstore

import (
	"context"

	"storefront-backend/internal/infra"
	"storefront-backend/internal/infra/converter"
	sqlc "storefront-backend/internal/infra/sqlc/generated"
	"storefront-backend/internal/pkg/pgconv"
	"storefront-backend/internal/usecase/queries"
)

type OrderViewQueries interface {
	GetOrderByNumber(ctx context.Context, db sqlc.DBTX, orderNumber string) (sqlc.Orders, error)
	ListOrdersByEmail(ctx context.Context, db sqlc.DBTX, customerEmail string) ([]sqlc.Orders, error)
	ListOrders(ctx context.Context, db sqlc.DBTX) ([]sqlc.Orders, error)
}

type OrderReadStore struct {
	queries OrderViewQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderViewQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByNumber(ctx context.Context, orderNumber string) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByNumber(ctx, r.db, orderNumber)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by number", err)
	}
	return toOrderView(row)
}

func (r *OrderReadStore) ListByEmail(ctx context.Context, email string) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListOrdersByEmail(ctx, r.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by email", err)
	}
	return toOrderViews(rows)
}

func (r *OrderReadStore) List(ctx context.Context) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListOrders(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	return toOrderViews(rows)
}

func toOrderViews(rows []sqlc.Orders) ([]*queries.OrderView, error) {
	views := make([]*queries.OrderView, 0, len(rows))
	for _, row := range rows {
		v, err := toOrderView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toOrderView(row sqlc.Orders) (*queries.OrderView, error) {
	records, err := converter.DecodeItems(row.Items)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt order items", err)
	}
	items := make([]queries.OrderItemView, len(records))
	for i, rec := range records {
		items[i] = queries.OrderItemView{
			ProductID: rec.ProductID,
			Name:      rec.Name,
			Quantity:  rec.Quantity,
			Price:     rec.PriceDecimal(),
			Image:     rec.Image,
		}
	}

	total, err := pgconv.DecimalFromNumeric(row.TotalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt order total", err)
	}
	discount, err := pgconv.DecimalFromNumeric(row.DiscountAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt order discount", err)
	}
	final, err := pgconv.DecimalFromNumeric(row.FinalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt order final amount", err)
	}

	return &queries.OrderView{
		ID:              row.ID,
		OrderNumber:     row.OrderNumber,
		CustomerName:    row.CustomerName,
		CustomerEmail:   row.CustomerEmail,
		CustomerPhone:   row.CustomerPhone,
		ShippingAddress: row.ShippingAddress,
		City:            row.City,
		State:           row.State,
		ZipCode:         row.ZipCode,
		Items:           items,
		TotalAmount:     total,
		CouponCode:      pgconv.StringPtrFromPgtype(row.CouponCode),
		DiscountAmount:  discount,
		FinalAmount:     final,
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
