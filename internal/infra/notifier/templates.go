package notifier

import (
	"html/template"
	"time"

	"storefront-backend/internal/domain/order"

	"github.com/shopspring/decimal"
)

type itemLine struct {
	Name     string
	Quantity int
	Price    string
	Subtotal string
}

type orderMail struct {
	Number   string
	Date     string
	Name     string
	Email    string
	Phone    string
	Address  string
	City     string
	State    string
	ZipCode  string
	Items    []itemLine
	Total    string
	Coupon   string
	Discount string
	Final    string
	Status   string
}

func newOrderMail(o *order.Order, loc *time.Location) orderMail {
	c := o.Customer()
	s := o.Shipping()
	lines := make([]itemLine, len(o.Items()))
	for i, it := range o.Items() {
		lines[i] = itemLine{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    money(it.Price),
			Subtotal: money(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))),
		}
	}
	phone := c.Phone
	if phone == "" {
		phone = "N/A"
	}
	m := orderMail{
		Number:   o.Number().String(),
		Date:     o.CreatedAt().In(loc).Format("2006-01-02 15:04:05"),
		Name:     c.Name,
		Email:    c.Email.Value(),
		Phone:    phone,
		Address:  s.Address,
		City:     s.City,
		State:    s.State,
		ZipCode:  s.ZipCode,
		Items:    lines,
		Total:    money(o.Total()),
		Discount: money(o.Discount()),
		Final:    money(o.Final()),
		Status:   o.Status().String(),
	}
	if code := o.CouponCode(); code != nil {
		m.Coupon = code.String()
	}
	return m
}

func money(d decimal.Decimal) string {
	return "₹" + d.StringFixed(2)
}

const mailStyle = `<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background-color: #232f3e; color: white; padding: 20px; text-align: center; }
.box { background-color: white; padding: 15px; margin: 10px 0; border-radius: 5px; }
.item { border-bottom: 1px solid #ddd; padding: 10px 0; }
.total { font-size: 18px; font-weight: bold; color: #e67e22; margin-top: 15px; }
.footer { text-align: center; padding: 20px; color: #666; }
</style>`

const orderBody = `
<div class="box">
  <h2>Order Details</h2>
  <p><strong>Order Number:</strong> {{.Number}}</p>
  <p><strong>Order Date:</strong> {{.Date}}</p>
</div>
<div class="box">
  <h2>Shipping Address</h2>
  <p>{{.Name}}<br>{{.Address}}</p>
  <p>{{.City}}, {{.State}} {{.ZipCode}}</p>
</div>
<div class="box">
  <h2>Order Items</h2>
  {{range .Items}}<div class="item">
    <p><strong>{{.Name}}</strong></p>
    <p>Quantity: {{.Quantity}} × {{.Price}} = {{.Subtotal}}</p>
  </div>{{end}}
  {{if .Coupon}}<p>Subtotal: {{.Total}}</p>
  <p>Coupon {{.Coupon}}: -{{.Discount}}</p>{{end}}
  <div class="total"><p>Total Amount: {{.Final}}</p></div>
</div>`

var (
	operatorTemplate = template.Must(template.New("operator").Parse(`<!DOCTYPE html>
<html><head>` + mailStyle + `</head><body><div class="container">
<div class="header"><h1>New Order Received</h1></div>
<div class="box">
  <h2>Customer Information</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Phone:</strong> {{.Phone}}</p>
</div>` + orderBody + `
<div class="box"><p><strong>Status:</strong> {{.Status}}</p></div>
<div class="footer"><p>This is an automated email from your store.</p></div>
</div></body></html>`))

	customerTemplate = template.Must(template.New("customer").Parse(`<!DOCTYPE html>
<html><head>` + mailStyle + `</head><body><div class="container">
<div class="header"><h1>Thank you for your order!</h1></div>
<p>Hi {{.Name}}, we have received your order and will let you know when it ships.</p>` + orderBody + `
<div class="footer"><p>Track your order with number {{.Number}}.</p></div>
</div></body></html>`))

	feedbackTemplate = template.Must(template.New("feedback").Parse(`<!DOCTYPE html>
<html><head>` + mailStyle + `</head><body><div class="container">
<div class="header"><h1>New Feedback Received</h1></div>
<div class="box">
  <h2>Contact Information</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Phone:</strong> {{.Phone}}</p>
</div>
<div class="box">
  <h2>Query / Feedback</h2>
  <p style="white-space: pre-wrap;">{{.Message}}</p>
</div>
<div class="footer"><p>Submitted through the website contact form.</p></div>
</div></body></html>`))
)
