package notify

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/ElisioMassango/chelevi-sub001/internal/domain"
	"github.com/ElisioMassango/chelevi-sub001/internal/money"
	"github.com/ElisioMassango/chelevi-sub001/internal/phone"
)

// Renderer produces the customer-facing and owner-facing message bodies.
// Email bodies are HTML, WhatsApp bodies plain text.
type Renderer struct {
	storeName string
	html      *htmltemplate.Template
	text      *texttemplate.Template
}

var funcMap = map[string]any{
	"money": money.Format,
	"phone": phone.Format,
}

// NewRenderer parses the message templates once at startup.
func NewRenderer(storeName string) (*Renderer, error) {
	html, err := htmltemplate.New("email").Funcs(funcMap).Parse(emailTemplates)
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}
	text, err := texttemplate.New("text").Funcs(funcMap).Parse(textTemplates)
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	return &Renderer{storeName: storeName, html: html, text: text}, nil
}

type orderData struct {
	StoreName string
	Order     *domain.Order
}

type reservationData struct {
	StoreName   string
	Reservation *domain.Reservation
}

type contactData struct {
	StoreName string
	Name      string
	Email     string
	Phone     string
	Message   string
}

type newsletterData struct {
	StoreName string
	Email     string
}

// OrderConfirmationEmail renders the customer order confirmation.
func (r *Renderer) OrderConfirmationEmail(order *domain.Order) (subject, body string, err error) {
	body, err = r.renderHTML("order_confirmation", orderData{StoreName: r.storeName, Order: order})
	return fmt.Sprintf("%s - Confirmação de encomenda %s", r.storeName, order.ID), body, err
}

// OrderOwnerAlertEmail renders the new-order alert for the store owner.
func (r *Renderer) OrderOwnerAlertEmail(order *domain.Order) (subject, body string, err error) {
	body, err = r.renderHTML("order_owner_alert", orderData{StoreName: r.storeName, Order: order})
	return fmt.Sprintf("Nova encomenda %s", order.ID), body, err
}

// OrderConfirmationText renders the customer order confirmation for WhatsApp.
func (r *Renderer) OrderConfirmationText(order *domain.Order) (string, error) {
	return r.renderText("order_confirmation_text", orderData{StoreName: r.storeName, Order: order})
}

// ReservationReceivedEmail renders the customer reservation acknowledgement.
func (r *Renderer) ReservationReceivedEmail(res *domain.Reservation) (subject, body string, err error) {
	body, err = r.renderHTML("reservation_received", reservationData{StoreName: r.storeName, Reservation: res})
	return fmt.Sprintf("%s - Reserva recebida", r.storeName), body, err
}

// ReservationOwnerAlertEmail renders the new-reservation alert for the owner.
func (r *Renderer) ReservationOwnerAlertEmail(res *domain.Reservation) (subject, body string, err error) {
	body, err = r.renderHTML("reservation_owner_alert", reservationData{StoreName: r.storeName, Reservation: res})
	return fmt.Sprintf("Nova reserva: %s", res.ProductName), body, err
}

// ReservationOwnerAlertText renders the owner reservation alert for WhatsApp.
func (r *Renderer) ReservationOwnerAlertText(res *domain.Reservation) (string, error) {
	return r.renderText("reservation_owner_alert_text", reservationData{StoreName: r.storeName, Reservation: res})
}

// ContactOwnerEmail renders a contact-form submission for the owner inbox.
func (r *Renderer) ContactOwnerEmail(name, email, phoneNumber, message string) (subject, body string, err error) {
	body, err = r.renderHTML("contact_owner", contactData{
		StoreName: r.storeName,
		Name:      name,
		Email:     email,
		Phone:     phoneNumber,
		Message:   message,
	})
	return fmt.Sprintf("Contacto do site: %s", name), body, err
}

// ContactOwnerText renders a contact-form submission for the owner WhatsApp.
func (r *Renderer) ContactOwnerText(name, email, phoneNumber, message string) (string, error) {
	return r.renderText("contact_owner_text", contactData{
		StoreName: r.storeName,
		Name:      name,
		Email:     email,
		Phone:     phoneNumber,
		Message:   message,
	})
}

// NewsletterWelcomeEmail renders the subscription welcome message.
func (r *Renderer) NewsletterWelcomeEmail(email string) (subject, body string, err error) {
	body, err = r.renderHTML("newsletter_welcome", newsletterData{StoreName: r.storeName, Email: email})
	return fmt.Sprintf("Bem-vindo à newsletter %s", r.storeName), body, err
}

// NewsletterOwnerAlertText renders the new-subscriber alert for the owner
// WhatsApp.
func (r *Renderer) NewsletterOwnerAlertText(email string) (string, error) {
	return r.renderText("newsletter_owner_alert_text", newsletterData{StoreName: r.storeName, Email: email})
}

func (r *Renderer) renderHTML(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.html.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (r *Renderer) renderText(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.text.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

const emailTemplates = `
{{define "order_confirmation"}}
<h2>Obrigado pela sua encomenda, {{.Order.CustomerName}}!</h2>
<p>A sua encomenda <strong>{{.Order.ID}}</strong> foi confirmada.</p>
<table>
{{range .Order.Items}}<tr><td>{{.Name}}{{if .Variant}} ({{.Variant}}){{end}}</td><td>{{.Quantity}} x {{money .Price $.Order.Currency}}</td></tr>
{{end}}</table>
<p>Subtotal: {{money .Order.Subtotal .Order.Currency}}</p>
{{if gt .Order.Discount 0}}<p>Desconto: -{{money .Order.Discount .Order.Currency}}</p>{{end}}
<p><strong>Total: {{money .Order.Total .Order.Currency}}</strong></p>
<p>{{.StoreName}}</p>
{{end}}

{{define "order_owner_alert"}}
<h2>Nova encomenda {{.Order.ID}}</h2>
<p>Cliente: {{.Order.CustomerName}} ({{.Order.CustomerEmail}}, {{phone .Order.CustomerPhone}})</p>
<table>
{{range .Order.Items}}<tr><td>{{.Name}}{{if .Variant}} ({{.Variant}}){{end}}</td><td>{{.Quantity}} x {{money .Price $.Order.Currency}}</td></tr>
{{end}}</table>
<p><strong>Total: {{money .Order.Total .Order.Currency}}</strong></p>
<p>Pagamento: {{.Order.PaymentMethod}} ({{.Order.PaymentRef}})</p>
{{end}}

{{define "reservation_received"}}
<h2>Reserva recebida</h2>
<p>Olá {{.Reservation.CustomerName}},</p>
<p>Recebemos a sua reserva de <strong>{{.Reservation.ProductName}}</strong> (quantidade: {{.Reservation.Quantity}}). Entraremos em contacto em breve.</p>
<p>{{.StoreName}}</p>
{{end}}

{{define "reservation_owner_alert"}}
<h2>Nova reserva</h2>
<p>Produto: {{.Reservation.ProductName}} (quantidade: {{.Reservation.Quantity}})</p>
<p>Cliente: {{.Reservation.CustomerName}} ({{.Reservation.CustomerEmail}}, {{phone .Reservation.CustomerPhone}})</p>
<p>País: {{.Reservation.Country}}</p>
{{end}}

{{define "contact_owner"}}
<h2>Mensagem do formulário de contacto</h2>
<p>Nome: {{.Name}}</p>
<p>Email: {{.Email}}</p>
{{if .Phone}}<p>Telefone: {{phone .Phone}}</p>{{end}}
<p>Mensagem:</p>
<blockquote>{{.Message}}</blockquote>
{{end}}

{{define "newsletter_welcome"}}
<h2>Bem-vindo!</h2>
<p>O email {{.Email}} foi subscrito na newsletter {{.StoreName}}. Fique atento às novidades.</p>
{{end}}
`

const textTemplates = `
{{define "order_confirmation_text"}}
Obrigado pela sua encomenda, {{.Order.CustomerName}}!
Encomenda {{.Order.ID}} confirmada.
{{range .Order.Items}}- {{.Name}}{{if .Variant}} ({{.Variant}}){{end}}: {{.Quantity}} x {{money .Price $.Order.Currency}}
{{end}}Total: {{money .Order.Total .Order.Currency}}
{{.StoreName}}
{{end}}

{{define "reservation_owner_alert_text"}}
Nova reserva: {{.Reservation.ProductName}} (x{{.Reservation.Quantity}})
Cliente: {{.Reservation.CustomerName}} {{phone .Reservation.CustomerPhone}}
País: {{.Reservation.Country}}
{{end}}

{{define "contact_owner_text"}}
Contacto do site: {{.Name}}
Email: {{.Email}}
{{if .Phone}}Telefone: {{phone .Phone}}
{{end}}{{.Message}}
{{end}}

{{define "newsletter_owner_alert_text"}}
Nova subscrição da newsletter: {{.Email}}
{{end}}
`
