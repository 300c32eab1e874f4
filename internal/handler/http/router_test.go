package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElisioMassango/chelevi-sub001/internal/domain"
	"github.com/ElisioMassango/chelevi-sub001/internal/gateway"
	"github.com/ElisioMassango/chelevi-sub001/internal/notify"
	redisrepo "github.com/ElisioMassango/chelevi-sub001/internal/repository/redis"
	"github.com/ElisioMassango/chelevi-sub001/internal/service"
	"github.com/ElisioMassango/chelevi-sub001/pkg/health"
	"github.com/ElisioMassango/chelevi-sub001/pkg/logger"
	"github.com/ElisioMassango/chelevi-sub001/pkg/middleware"
)

// stubCommerce answers like a backend that has no summary and knows one
// coupon.
type stubCommerce struct{}

func (stubCommerce) CartSummary(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
	return nil, errors.New("no summary")
}

func (stubCommerce) Coupon(ctx context.Context, code string) (*domain.Coupon, error) {
	if code == "SAVE10" {
		return &domain.Coupon{ID: 7, Code: "SAVE10", DiscountType: domain.DiscountTypePercentage, DiscountNumber: 10}, nil
	}
	return &domain.Coupon{}, nil
}

func (stubCommerce) ShippingMethods(ctx context.Context) ([]domain.ShippingMethod, error) {
	return []domain.ShippingMethod{{ID: "std", Name: "Entrega padrão", Price: 15000}}, nil
}

func (stubCommerce) SubscribeNewsletter(ctx context.Context, email string) error {
	return nil
}

type stubEvents struct{}

func (stubEvents) CartUpdated(context.Context, *domain.Cart) error              { return nil }
func (stubEvents) CartCleared(context.Context, string) error                    { return nil }
func (stubEvents) ReservationCreated(context.Context, *domain.Reservation) error { return nil }
func (stubEvents) OrderPlaced(context.Context, *domain.Order) error             { return nil }
func (stubEvents) NewsletterSubscribed(context.Context, string) error           { return nil }

type stubEmail struct{}

func (stubEmail) Name() string                                           { return "email" }
func (stubEmail) Send(context.Context, gateway.EmailMessage) error       { return nil }

type stubWhatsApp struct{}

func (stubWhatsApp) Name() string                                        { return "whatsapp" }
func (stubWhatsApp) Send(context.Context, gateway.WhatsAppMessage) error { return nil }

type stubCharger struct{}

func (stubCharger) Name() string                                       { return "mpesa" }
func (stubCharger) Charge(context.Context, gateway.PaymentRequest) error { return nil }

type stubOrders struct{}

func (stubOrders) Create(context.Context, *domain.Order) error { return nil }
func (stubOrders) GetByID(context.Context, string) (*domain.Order, error) {
	return nil, errors.New("not implemented")
}

type stubReservations struct{}

func (stubReservations) Create(context.Context, *domain.Reservation) error { return nil }
func (stubReservations) GetByID(context.Context, string) (*domain.Reservation, error) {
	return nil, errors.New("not implemented")
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	log := logger.New("test", "error")

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	carts := redisrepo.NewCartRepository(client, time.Hour)
	prefs := redisrepo.NewPreferenceRepository(client)

	renderer, err := notify.NewRenderer("Chelevi")
	require.NoError(t, err)
	dispatcher := notify.NewDispatcher(log)

	owner := service.OwnerContacts{Email: "owner@example.com", WhatsApp: "+258840000000"}
	cartSvc := service.NewCartService(carts, prefs, stubCommerce{}, stubEvents{}, log)
	checkoutSvc := service.NewCheckoutService(cartSvc, stubOrders{}, stubCommerce{}, stubCharger{},
		stubEmail{}, stubWhatsApp{}, dispatcher, renderer, stubEvents{}, owner, log)
	reservationSvc := service.NewReservationService(stubReservations{}, stubEmail{}, stubWhatsApp{},
		dispatcher, renderer, stubEvents{}, owner, log)
	newsletterSvc := service.NewNewsletterService(prefs, stubCommerce{}, stubEmail{},
		stubWhatsApp{}, dispatcher, renderer, stubEvents{}, owner, log)
	contactSvc := service.NewContactService(stubEmail{}, stubWhatsApp{}, dispatcher, renderer, owner)
	prefSvc := service.NewPreferenceService(prefs)

	return NewRouter(RouterConfig{
		Logger:         log,
		ServiceName:    "storefront-test",
		RequestTimeout: 5 * time.Second,
		CORS:           middleware.DefaultCORSConfig(),
		Cart:           NewCartHandler(cartSvc, log),
		Checkout:       NewCheckoutHandler(checkoutSvc, log),
		Reservations:   NewReservationHandler(reservationSvc, log),
		Contact:        NewContactHandler(contactSvc, log),
		Newsletter:     NewNewsletterHandler(newsletterSvc, log),
		Preferences:    NewPreferencesHandler(prefSvc, log),
		Health:         health.NewHandler(),
	})
}

func doJSON(t *testing.T, router http.Handler, method, path, body string, session bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if session {
		req.Header.Set(HeaderSessionID, "sess-1")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCartRequiresSession(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/cart", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_SESSION")
}

func TestCartAddAndGetFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
		`{"product_id":"p1","name":"Bolsa","price":250000,"quantity":2}`, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/cart", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Cart struct {
				Items []domain.CartItem `json:"items"`
			} `json:"cart"`
			Totals domain.Totals `json:"totals"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Cart.Items, 1)
	assert.Equal(t, int64(500000), resp.Data.Totals.Subtotal)
}

func TestCartAddItemValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
		`{"name":"Bolsa","quantity":0}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestCartCouponFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
		`{"product_id":"p1","name":"Bolsa","price":10000,"quantity":1}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/cart/coupon", `{"code":"SAVE10"}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"discount":1000`)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/cart/coupon", `{"code":"DEAD"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/cart/coupon", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"discount":0`)
}

func TestPreferencesFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/preferences", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"currency":"MZN"`)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/preferences",
		`{"currency":"EUR","language":"en"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"currency":"EUR"`)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/preferences", `{"currency":"USD"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReservationEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/reservations",
		`{"product_id":"p1","product_name":"Bolsa","name":"Ana Silva","email":"ana@example.com","phone":"841234567","country":"mz"}`, false)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/reservations",
		`{"product_id":"p1","product_name":"Bolsa","name":"Ana Silva","email":"ana@example.com","phone":"841234567","country":"es"}`, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/reservations",
		`{"product_id":"p1","product_name":"Bolsa","name":"Ana Silva","email":"ana@example.com","phone":"912345678","country":"mz"}`, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestContactEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/contact",
		`{"name":"Ana Silva","email":"ana@example.com","message":"Quando chega a nova coleção?"}`, false)
	assert.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
}

func TestNewsletterEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/newsletter/subscribe",
		`{"email":"ana@example.com"}`, true)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/newsletter/subscribe",
		`{"email":"not-an-email"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/newsletter/dismiss", "", true)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCheckoutFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
		`{"product_id":"p1","name":"Bolsa","price":250000,"quantity":1}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/checkout",
		`{"name":"Ana Silva","email":"ana@example.com","phone":"841234567"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"status":"paid"`)

	// Non-M-Pesa phone is rejected before any charge attempt.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/checkout",
		`{"name":"Ana Silva","email":"ana@example.com","phone":"912345678"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/checkout",
		`{"name":"Ana Silva","email":"bad"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestShippingMethodsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/shipping-methods", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Entrega padr")
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health/live", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}
