package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/greenkartlabs/greenkart-backend/api/controllers"
	"github.com/greenkartlabs/greenkart-backend/api/middleware"
	bookingsvc "github.com/greenkartlabs/greenkart-backend/internal/bookings"
	cartsvc "github.com/greenkartlabs/greenkart-backend/internal/cart"
	catalogsvc "github.com/greenkartlabs/greenkart-backend/internal/catalog"
	ordersvc "github.com/greenkartlabs/greenkart-backend/internal/orders"
	paymentsvc "github.com/greenkartlabs/greenkart-backend/internal/payments"
	"github.com/greenkartlabs/greenkart-backend/pkg/config"
	"github.com/greenkartlabs/greenkart-backend/pkg/logger"
	"github.com/greenkartlabs/greenkart-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	catalogService catalogsvc.Service,
	bookingService bookingsvc.Service,
	cartService cartsvc.Service,
	orderService ordersvc.Service,
	paymentService paymentsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Session(logg))

		r.Get("/categories", controllers.ListCategories(catalogService, logg))
		r.Get("/products", controllers.ListProducts(catalogService, logg))
		r.Get("/products/featured", controllers.FeaturedProducts(catalogService, logg))
		r.Get("/products/{slug}", controllers.ProductBySlug(catalogService, logg))
		r.Get("/services", controllers.ListServices(catalogService, logg))

		r.Post("/gardener-booking", controllers.CreateBooking(bookingService, logg))
		r.Get("/gardener-bookings", controllers.ListBookings(bookingService, logg))
		r.Put("/gardener-booking/{id}/review", controllers.ReviewBooking(bookingService, logg))

		r.Get("/cart", controllers.GetCart(cartService, logg))
		r.Post("/cart", controllers.AddCartItem(cartService, logg))
		r.Patch("/cart/{id}", controllers.UpdateCartItem(cartService, logg))
		r.Delete("/cart/{id}", controllers.RemoveCartItem(cartService, logg))
		r.Delete("/cart", controllers.ClearCart(cartService, logg))

		r.Get("/payment-methods", controllers.ListPaymentMethods(paymentService, logg))
		r.Post("/create-payment-intent", controllers.CreatePaymentIntent(paymentService, logg))

		r.Post("/orders", controllers.CreateOrder(orderService, logg))
		r.Get("/orders", controllers.ListOrders(orderService, logg))
		r.Get("/orders/{orderNumber}", controllers.OrderByNumber(orderService, logg))
	})

	return r
}
