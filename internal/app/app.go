// Package app assembles the fx graph shared by both responder programs.
package app

import (
	"fmt"
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"hello-responder/internal/client"
	"hello-responder/internal/config"
	"hello-responder/internal/handler"
	"hello-responder/internal/metrics"
	"hello-responder/internal/model"
	"hello-responder/internal/server"
	"hello-responder/internal/service"
)

// Options returns the application graph for the given variant. The proxy
// variant additionally owns the shared upstream client, whose start hook runs
// before the main listener binds and whose stop hook runs after it drains.
func Options(variant model.Variant, cfg *config.Config, version string) fx.Option {
	var responder fx.Option
	switch variant {
	case model.VariantStatic:
		responder = fx.Provide(newStaticResponder)
	case model.VariantProxy:
		responder = fx.Options(
			fx.Provide(client.NewUpstreamClient, newProxyResponder),
			fx.Invoke(startUpstreamClient),
		)
	default:
		return fx.Error(fmt.Errorf("unknown responder variant %q", variant))
	}

	return fx.Options(
		fx.Supply(cfg, variant, handler.Version(version)),
		fx.Provide(
			server.NewLogger,
			metrics.New,
			server.NewEcho,
			server.NewAdmin,
			handler.NewResponderHandler,
			handler.NewHealthHandler,
		),
		fx.WithLogger(newFxLogger),
		responder,
		fx.Invoke(
			handler.RegisterRoutes,
			registerAdminRoutes,
			warnConfigPermissions,
			server.Start,
			server.StartAdmin,
		),
	)
}

func newStaticResponder() service.Responder {
	return service.NewStaticResponder()
}

func newProxyResponder(c *client.UpstreamClient, logger *slog.Logger) service.Responder {
	return service.NewProxyResponder(c, logger)
}

func startUpstreamClient(lc fx.Lifecycle, c *client.UpstreamClient) {
	lc.Append(fx.StartStopHook(c.Start, c.Stop))
}

func registerAdminRoutes(a *server.Admin, cfg *config.Config, health *handler.HealthHandler, m *metrics.Metrics) {
	handler.RegisterAdminRoutes(a.Echo, cfg, health, m)
}

func warnConfigPermissions(cfg *config.Config, logger *slog.Logger) {
	cfg.WarnPermissions(logger)
}

// newFxLogger routes fx's own events through slog. Routine events go to debug;
// errors keep their level so startup failures are still reported.
func newFxLogger(logger *slog.Logger) fxevent.Logger {
	l := &fxevent.SlogLogger{Logger: logger.With("component", "fx")}
	l.UseLogLevel(slog.LevelDebug)
	return l
}
