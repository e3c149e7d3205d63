package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ZOMBIEx-z/ClothingStore/api/controllers"
	"github.com/ZOMBIEx-z/ClothingStore/api/middleware"
	"github.com/ZOMBIEx-z/ClothingStore/internal/cart"
	"github.com/ZOMBIEx-z/ClothingStore/internal/catalog"
	checkoutsvc "github.com/ZOMBIEx-z/ClothingStore/internal/checkout"
	"github.com/ZOMBIEx-z/ClothingStore/internal/orders"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/config"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/enums"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/kv"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store kv.Store,
	registry *prometheus.Registry,
	catalogService *catalog.Service,
	cartService *cart.Service,
	checkoutService *checkoutsvc.Service,
	ordersService *orders.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, store))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/stores", controllers.StoreList(catalogService, logg))
		r.Get("/stores/{storeID}/products", controllers.StoreProducts(catalogService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Use(middleware.Device(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(cartService, logg))
				r.Delete("/", controllers.CartClear(cartService, logg))
				r.Post("/items", controllers.CartAddItem(cartService, logg))
				r.Patch("/items/{productID}", controllers.CartSetQuantity(cartService, logg))
				r.Delete("/items/{productID}", controllers.CartRemoveItem(cartService, logg))
			})

			r.Post("/checkout", controllers.Checkout(checkoutService, logg))
			r.Post("/session/logout", controllers.SessionLogout(cartService, cfg.Cart, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(enums.RoleBuyer, logg))
				r.Get("/orders/my", controllers.BuyerOrders(ordersService, logg))
			})

			r.Route("/seller", func(r chi.Router) {
				r.Use(middleware.RequireRole(enums.RoleSeller, logg))
				r.Get("/stores", controllers.SellerStores(catalogService, logg))
				r.Post("/stores", controllers.SellerCreateStore(catalogService, logg))
				r.Post("/stores/{storeID}/products", controllers.SellerCreateProduct(catalogService, logg))
				r.Route("/orders", func(r chi.Router) {
					r.Get("/", controllers.SellerOrders(ordersService, logg))
					r.Put("/{orderID}/status", controllers.StageOrderStatus(ordersService, logg))
					r.Post("/{orderID}/status/commit", controllers.CommitOrderStatus(ordersService, logg))
				})
			})
		})
	})

	return r
}
