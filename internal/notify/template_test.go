package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElisioMassango/chelevi-sub001/internal/domain"
)

func testOrder() *domain.Order {
	return &domain.Order{
		ID:            "ord-1",
		CustomerName:  "Ana Silva",
		CustomerEmail: "ana@example.com",
		CustomerPhone: "+258841234567",
		Items: []domain.CartItem{
			{ProductID: "p1", Name: "Bolsa Maputo", Variant: "Preto", Price: 250000, Quantity: 1},
			{ProductID: "p2", Name: "Carteira", Price: 90000, Quantity: 2},
		},
		Subtotal:      430000,
		Discount:      43000,
		Total:         387000,
		Currency:      domain.CurrencyMZN,
		PaymentMethod: domain.PaymentMethodMpesa,
		PaymentRef:    "ref-1",
		Status:        domain.OrderStatusPaid,
		CreatedAt:     time.Now(),
	}
}

func TestOrderConfirmationEmail(t *testing.T) {
	r, err := NewRenderer("Chelevi")
	require.NoError(t, err)

	subject, body, err := r.OrderConfirmationEmail(testOrder())
	require.NoError(t, err)

	assert.Contains(t, subject, "ord-1")
	assert.Contains(t, body, "Ana Silva")
	assert.Contains(t, body, "Bolsa Maputo")
	assert.Contains(t, body, "Preto")
	assert.Contains(t, body, "4.300,00 MT")
	assert.Contains(t, body, "3.870,00 MT")
	assert.Contains(t, body, "Desconto")
}

func TestOrderConfirmationEmailNoDiscountLine(t *testing.T) {
	r, err := NewRenderer("Chelevi")
	require.NoError(t, err)

	order := testOrder()
	order.Discount = 0

	_, body, err := r.OrderConfirmationEmail(order)
	require.NoError(t, err)
	assert.NotContains(t, body, "Desconto")
}

func TestOrderConfirmationText(t *testing.T) {
	r, err := NewRenderer("Chelevi")
	require.NoError(t, err)

	text, err := r.OrderConfirmationText(testOrder())
	require.NoError(t, err)

	assert.Contains(t, text, "ord-1")
	assert.Contains(t, text, "3.870,00 MT")
	assert.Contains(t, text, "Chelevi")
}

func TestReservationTemplates(t *testing.T) {
	r, err := NewRenderer("Chelevi")
	require.NoError(t, err)

	res := &domain.Reservation{
		ID:            "res-1",
		ProductName:   "Sandálias Verão",
		CustomerName:  "João",
		CustomerEmail: "joao@example.com",
		CustomerPhone: "+351912345678",
		Quantity:      2,
		Country:       domain.CountryPortugal,
	}

	_, body, err := r.ReservationReceivedEmail(res)
	require.NoError(t, err)
	assert.Contains(t, body, "Sandálias Verão")
	assert.Contains(t, body, "João")

	subject, body, err := r.ReservationOwnerAlertEmail(res)
	require.NoError(t, err)
	assert.Contains(t, subject, "Sandálias Verão")
	assert.Contains(t, body, "+351 912 345 678")

	text, err := r.ReservationOwnerAlertText(res)
	require.NoError(t, err)
	assert.Contains(t, text, "Sandálias Verão")
	assert.Contains(t, text, "x2")
}

func TestContactOwnerEmailEscapesHTML(t *testing.T) {
	r, err := NewRenderer("Chelevi")
	require.NoError(t, err)

	_, body, err := r.ContactOwnerEmail("Eve", "eve@example.com", "", "<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.NotContains(t, body, "Telefone", "phone line omitted when empty")
}

func TestContactOwnerText(t *testing.T) {
	r, err := NewRenderer("Chelevi")
	require.NoError(t, err)

	text, err := r.ContactOwnerText("Ana", "ana@example.com", "+258841234567", "Olá")
	require.NoError(t, err)
	assert.Contains(t, text, "Contacto do site: Ana")
	assert.Contains(t, text, "ana@example.com")
	assert.Contains(t, text, "+258 84 123 4567")
	assert.Contains(t, text, "Olá")

	text, err = r.ContactOwnerText("Ana", "ana@example.com", "", "Olá")
	require.NoError(t, err)
	assert.NotContains(t, text, "Telefone", "phone line omitted when empty")
}

func TestNewsletterWelcomeEmail(t *testing.T) {
	r, err := NewRenderer("Chelevi")
	require.NoError(t, err)

	subject, body, err := r.NewsletterWelcomeEmail("ana@example.com")
	require.NoError(t, err)
	assert.Contains(t, subject, "Chelevi")
	assert.Contains(t, body, "ana@example.com")
}

func TestNewsletterOwnerAlertText(t *testing.T) {
	r, err := NewRenderer("Chelevi")
	require.NoError(t, err)

	text, err := r.NewsletterOwnerAlertText("ana@example.com")
	require.NoError(t, err)
	assert.Contains(t, text, "Nova subscrição da newsletter: ana@example.com")
}
