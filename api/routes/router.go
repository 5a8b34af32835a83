package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wearloom/storefront-backend/api/controllers"
	"github.com/wearloom/storefront-backend/api/middleware"
	"github.com/wearloom/storefront-backend/internal/cart"
	"github.com/wearloom/storefront-backend/internal/catalog"
	"github.com/wearloom/storefront-backend/pkg/config"
	"github.com/wearloom/storefront-backend/pkg/db"
	"github.com/wearloom/storefront-backend/pkg/logger"
	"github.com/wearloom/storefront-backend/pkg/metrics"
	pkgredis "github.com/wearloom/storefront-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers. RedisClient may be
// nil; idempotency replay is skipped when it is.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             *db.Client
	RedisClient    *pkgredis.Client
	CatalogService catalog.Service
	CartService    cart.Service
	Registry       *prometheus.Registry
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	httpMetrics := metrics.NewHTTPMetrics(registry)

	var idempotencyStore pkgredis.IdempotencyStore
	var redisPinger controllers.Pinger
	if deps.RedisClient != nil {
		idempotencyStore = deps.RedisClient
		redisPinger = deps.RedisClient
	}

	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.Metrics(httpMetrics),
		middleware.CORS(deps.Config.CORS.AllowedOrigins),
		middleware.Idempotency(idempotencyStore, deps.Config.Idempotency.TTL, deps.Logger),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, deps.DB, redisPinger))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(deps.CatalogService, deps.Logger))
			r.Post("/", controllers.CreateProduct(deps.CatalogService, deps.Logger))
			r.Get("/{productId}", controllers.GetProduct(deps.CatalogService, deps.Logger))
			r.Post("/{productId}/variations", controllers.CreateVariation(deps.CatalogService, deps.Logger))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(deps.CartService, deps.Logger))
			r.Post("/items", controllers.AddCartItem(deps.CartService, deps.Logger))
			r.Patch("/items/{itemId}", controllers.UpdateCartItem(deps.CartService, deps.Logger))
			r.Delete("/items/{itemId}", controllers.RemoveCartItem(deps.CartService, deps.Logger))
		})

		r.Post("/seed/products", controllers.SeedProducts(deps.DB, deps.Logger))
	})

	return r
}
