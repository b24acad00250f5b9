package shared

import (
	"context"
	"time"

	"storefront-backend/internal/domain/cart"
	"storefront-backend/internal/domain/order"
)

// CartMirror is the replicated cart cache. Get reports found=false on a miss;
// an empty cart that was stored is a hit.
type CartMirror interface {
	Put(ctx context.Context, owner cart.Owner, items cart.Items, savedAt time.Time) error
	Get(ctx context.Context, owner cart.Owner) (cart.Items, bool, error)
}

type Feedback struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type Notifier interface {
	NotifyOperator(ctx context.Context, o *order.Order) error
	NotifyCustomer(ctx context.Context, o *order.Order) error
	NotifyFeedback(ctx context.Context, f Feedback) error
}
