// Package handler contains the Echo handlers for the main and admin listeners.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hello-responder/internal/config"
	"hello-responder/internal/model"
)

// Version is a string type for dependency injection of the build version.
type Version string

// HealthHandler serves health and status endpoints on the admin listener.
type HealthHandler struct {
	cfg     *config.Config
	version Version
	variant model.Variant
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(cfg *config.Config, v Version, variant model.Variant) *HealthHandler {
	return &HealthHandler{cfg: cfg, version: v, variant: variant}
}

// Healthz returns a simple OK response for liveness probes.
func (h *HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Status returns which responder is running and, for the proxy, where it points.
func (h *HealthHandler) Status(c echo.Context) error {
	body := map[string]string{
		"status":  "ok",
		"version": string(h.version),
		"variant": string(h.variant),
	}
	if h.variant == model.VariantProxy {
		body["upstream_url"] = h.cfg.Upstream.URL
	}
	return c.JSON(http.StatusOK, body)
}
