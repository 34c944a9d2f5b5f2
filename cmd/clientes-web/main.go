package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-clientes"
	"github.com/goliatone/go-clientes/internal/settings"
	"github.com/goliatone/go-clientes/pkg/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run returns the process exit code so deferred cleanup finishes before the
// process exits.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	cfg, err := settings.FromArgs("clientes-web", args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger := cfg.Logger(stderr)

	app, bootErr := clientes.Bootstrap(ctx, cfg.Origin,
		clientes.WithLogger(logger),
		clientes.WithConfigPath(cfg.ConfigPath),
		clientes.WithProxyRoot(cfg.ProxyRoot),
		clientes.WithLocale(cfg.Locale),
		clientes.WithAlertTiming(cfg.Alert.Delay, cfg.Alert.Fade),
		clientes.WithThemeVariant(cfg.Theme.Variant),
	)
	if app == nil {
		logger.Error().Err(bootErr).Msg("bootstrap failed")
		return 1
	}
	defer app.Close()
	if bootErr != nil {
		logger.Error().Err(bootErr).Msg("configuration failed, serving blocked page")
	}

	renderer, err := app.Registry.Get(clientes.RendererHTML)
	if err != nil {
		logger.Error().Err(err).Msg("html renderer missing")
		return 1
	}

	srv, err := server.New(
		server.WithController(app.Controller),
		server.WithPresenter(app.Presenter),
		server.WithRenderer(renderer),
		server.WithRenderOptions(app.RenderOptions),
		server.WithAssets(clientes.AssetsFS()),
		server.WithLogger(logger),
		server.WithBootstrapError(bootErr),
	)
	if err != nil {
		logger.Error().Err(err).Msg("configure server")
		return 1
	}

	httpServer := &http.Server{
		Addr:              cfg.Listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info().Str("listen", cfg.Listen).Str("origin", cfg.Origin).Msg("serving")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("server stopped")
		return 1
	}
	return 0
}
