package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hello-responder/internal/config"
	"hello-responder/internal/metrics"
)

// RegisterRoutes wires the responder onto the main listener for every method
// and every path. Any only covers echo's known methods; the RouteNotFound
// fallback catches the rest (PURGE, MKCOL, ...) instead of a 405.
func RegisterRoutes(e *echo.Echo, h *ResponderHandler) {
	e.Any("/", h.Handle)
	e.Any("/*", h.Handle)
	e.RouteNotFound("/*", h.Handle)
}

// RegisterAdminRoutes wires health, status, and metrics onto the admin listener.
func RegisterAdminRoutes(admin *echo.Echo, cfg *config.Config, health *HealthHandler, m *metrics.Metrics) {
	admin.GET("/healthz", health.Healthz)
	admin.GET("/status", health.Status)
	admin.GET(cfg.Admin.MetricsPath, echo.WrapHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{
		Registry: m.Registry,
	})))
}
