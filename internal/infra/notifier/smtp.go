// Package notifier delivers order and feedback email. Delivery is best effort
// for orders; the caller decides whether a failure matters.
package notifier

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"mime"
	"net/smtp"
	"strconv"
	"time"

	"storefront-backend/internal/domain/order"
	"storefront-backend/internal/pkg/config"
	"storefront-backend/internal/pkg/errs"
	"storefront-backend/internal/pkg/timebox"
	"storefront-backend/internal/usecase/shared"
)

var ErrDeliveryFailed = errs.New("mail delivery failed")

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPNotifier struct {
	cfg  config.MailConfig
	loc  *time.Location
	send SendFunc
}

func NewSMTPNotifier(cfg config.MailConfig, loc *time.Location, send SendFunc) *SMTPNotifier {
	if send == nil {
		send = smtp.SendMail
	}
	if loc == nil {
		loc = time.UTC
	}
	return &SMTPNotifier{cfg: cfg, loc: loc, send: send}
}

// New picks SMTP delivery when a host is configured and log-only delivery
// otherwise.
func New(cfg config.Config) shared.Notifier {
	if !cfg.Mail.Enabled() {
		return NewLogNotifier()
	}
	return NewSMTPNotifier(cfg.Mail, cfg.Store.Location(), nil)
}

func (n *SMTPNotifier) NotifyOperator(ctx context.Context, o *order.Order) error {
	subject := "New Order #" + o.Number().String()
	return n.deliver(ctx, n.cfg.OperatorEmail, subject, operatorTemplate, newOrderMail(o, n.loc))
}

func (n *SMTPNotifier) NotifyCustomer(ctx context.Context, o *order.Order) error {
	subject := "Order Confirmation - #" + o.Number().String()
	return n.deliver(ctx, o.Customer().Email.Value(), subject, customerTemplate, newOrderMail(o, n.loc))
}

func (n *SMTPNotifier) NotifyFeedback(ctx context.Context, f shared.Feedback) error {
	return n.deliver(ctx, n.cfg.OperatorEmail, "New Feedback from "+f.Name, feedbackTemplate, f)
}

func (n *SMTPNotifier) deliver(ctx context.Context, to, subject string, tmpl *template.Template, data any) error {
	msg, err := n.compose(to, subject, tmpl, data)
	if err != nil {
		return err
	}

	addr := n.cfg.SMTPHost + ":" + strconv.Itoa(n.cfg.SMTPPort)
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.SMTPHost)
	}

	// smtp.SendMail takes no context, so the budget is enforced around it.
	err = timebox.Do(ctx, n.cfg.SendTimeout, func(context.Context) error {
		return n.send(addr, auth, n.cfg.From, []string{to}, msg)
	})
	if err != nil {
		err = errs.Mark(errs.Wrapf(err, "send %q to %s", subject, to), ErrDeliveryFailed)
		return errs.WithClass(err, errs.ErrDependencyUnavailable)
	}

	slog.InfoContext(ctx, "Mail sent", slog.String("to", to), slog.String("subject", subject))
	return nil
}

func (n *SMTPNotifier) compose(to, subject string, tmpl *template.Template, data any) ([]byte, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, errs.Wrap(err, "render mail template")
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())
	return msg.Bytes(), nil
}
