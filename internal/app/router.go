package app

import (
	"net/http"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"order-service/internal/handlers/rest/customer_orders_get"
	"order-service/internal/handlers/rest/deliveries_get"
	"order-service/internal/handlers/rest/delivery_claim_post"
	"order-service/internal/handlers/rest/delivery_status_put"
	"order-service/internal/handlers/rest/healthcheck_head"
	"order-service/internal/handlers/rest/order_get"
	"order-service/internal/handlers/rest/order_post"
	"order-service/internal/handlers/rest/order_status_put"
	"order-service/internal/handlers/rest/ping_get"
	"order-service/internal/pkg/config"
	"order-service/internal/pkg/middlewares/access_control"
	"order-service/internal/pkg/middlewares/authentication"
	"order-service/internal/pkg/middlewares/graceful_shutdown"
	"order-service/internal/pkg/middlewares/metrics"
	"order-service/internal/pkg/middlewares/rate_limiter"
	"order-service/internal/pkg/middlewares/timeout"
	"order-service/internal/service/access"
	"order-service/pkg/logger"
	"order-service/pkg/token_bucket"
)

// NewRouter собирает HTTP API сервиса. checkers попадают в /healthcheck.
func NewRouter(
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *Application,
	cfg config.HTTPServer,
	checkers ...healthcheck_head.Checker,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown))
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	if cfg.RateLimiterQPS > 0 {
		router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS))))
	}

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, checkers...)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	protect := func(op access.Operation, handler http.Handler) http.Handler {
		return authentication.Middleware(log, app.Verifier)(
			access_control.Middleware(log, app.Policy, op)(handler),
		)
	}

	router.Handle("/order", protect(access.PlaceOrder, order_post.New(log, app.ServiceOrder))).Methods(http.MethodPost)
	router.Handle("/order/customers/{customer_id}", protect(access.ListCustomerOrders, customer_orders_get.New(log, app.ServiceOrder))).Methods(http.MethodGet)
	router.Handle("/order/{order_id}", protect(access.GetOrder, order_get.New(log, app.ServiceOrder))).Methods(http.MethodGet)
	router.Handle("/order/{order_id}/status", protect(access.UpdateOrderStatus, order_status_put.New(log, app.ServiceOrder))).Methods(http.MethodPut)

	router.Handle("/delivery", protect(access.ListClaimableDeliveries, deliveries_get.New(log, app.ServiceDelivery))).Methods(http.MethodGet)
	router.Handle("/delivery/{order_id}", protect(access.ClaimDelivery, delivery_claim_post.New(log, app.ServiceDelivery))).Methods(http.MethodPost)
	router.Handle("/delivery/{delivery_id}", protect(access.UpdateDeliveryStatus, delivery_status_put.New(log, app.ServiceDelivery))).Methods(http.MethodPut)

	return router
}

// NewPprofRouter - отдельный роутер для pprof, слушает свой порт.
func NewPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
