package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ElisioMassango/chelevi-sub001/pkg/health"
	"github.com/ElisioMassango/chelevi-sub001/pkg/middleware"
)

// RouterConfig carries the handler set and cross-cutting settings for the
// storefront router.
type RouterConfig struct {
	Logger         *slog.Logger
	ServiceName    string
	RequestTimeout time.Duration
	CORS           middleware.CORSConfig
	TracingEnabled bool

	Cart         *CartHandler
	Checkout     *CheckoutHandler
	Reservations *ReservationHandler
	Contact      *ContactHandler
	Newsletter   *NewsletterHandler
	Preferences  *PreferencesHandler
	Health       *health.Handler
}

// NewRouter builds the storefront HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.Compress(5))
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics(cfg.ServiceName))
	if cfg.TracingEnabled {
		r.Use(middleware.Tracing(cfg.ServiceName))
	}
	r.Use(middleware.RequestLogger(cfg.Logger))

	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Session-scoped resources.
		r.Group(func(r chi.Router) {
			r.Use(RequireSession)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cfg.Cart.Get)
				r.Delete("/", cfg.Cart.Clear)
				r.Post("/items", cfg.Cart.AddItem)
				r.Put("/items/{productID}", cfg.Cart.UpdateItem)
				r.Delete("/items/{productID}", cfg.Cart.RemoveItem)
				r.Post("/coupon", cfg.Cart.ApplyCoupon)
				r.Delete("/coupon", cfg.Cart.RemoveCoupon)
			})

			r.Post("/checkout", cfg.Checkout.PlaceOrder)

			r.Route("/preferences", func(r chi.Router) {
				r.Get("/", cfg.Preferences.Get)
				r.Put("/", cfg.Preferences.Update)
			})

			r.Post("/newsletter/subscribe", cfg.Newsletter.Subscribe)
			r.Post("/newsletter/dismiss", cfg.Newsletter.Dismiss)
		})

		// Public resources.
		r.Get("/shipping-methods", cfg.Checkout.ShippingMethods)
		r.Post("/reservations", cfg.Reservations.Create)
		r.Post("/contact", cfg.Contact.Submit)
	})

	return r
}
