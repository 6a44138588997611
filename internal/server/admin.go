package server

import (
	"log/slog"
	"net"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"hello-responder/internal/config"
	"hello-responder/internal/middleware"
)

// Admin is the health and metrics listener. It is a distinct type so the
// container can tell it apart from the main *echo.Echo.
type Admin struct {
	Echo *echo.Echo
}

// NewAdmin builds the admin listener.
func NewAdmin(logger *slog.Logger) *Admin {
	e := newBareEcho(logger)
	e.Use(middleware.AdminHeaders())
	return &Admin{Echo: e}
}

// Addr returns the bound admin address, or nil before start or when disabled.
func (a *Admin) Addr() net.Addr {
	return a.Echo.ListenerAddr()
}

// StartAdmin binds the admin listener when admin.enabled is set.
func StartAdmin(lc fx.Lifecycle, a *Admin, cfg *config.Config, logger *slog.Logger) {
	if !cfg.Admin.Enabled {
		return
	}
	appendServeHook(lc, a.Echo, cfg.Admin.Addr(), logger.With("listener", "admin"))
}
