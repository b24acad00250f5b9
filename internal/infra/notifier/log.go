package notifier

import (
	"context"
	"log/slog"

	"storefront-backend/internal/domain/order"
	"storefront-backend/internal/usecase/shared"
)

// LogNotifier records notifications in the log instead of sending them.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) NotifyOperator(ctx context.Context, o *order.Order) error {
	slog.InfoContext(ctx, "Operator notification (mail disabled)",
		slog.String("order_number", o.Number().String()),
		slog.String("final_amount", o.Final().StringFixed(2)))
	return nil
}

func (LogNotifier) NotifyCustomer(ctx context.Context, o *order.Order) error {
	slog.InfoContext(ctx, "Customer notification (mail disabled)",
		slog.String("order_number", o.Number().String()),
		slog.String("to", o.Customer().Email.Value()))
	return nil
}

func (LogNotifier) NotifyFeedback(ctx context.Context, f shared.Feedback) error {
	slog.InfoContext(ctx, "Feedback notification (mail disabled)",
		slog.String("from", f.Email),
		slog.String("name", f.Name))
	return nil
}
