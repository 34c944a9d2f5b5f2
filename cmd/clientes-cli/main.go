package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"github.com/goliatone/go-clientes"
	"github.com/goliatone/go-clientes/internal/settings"
	"github.com/goliatone/go-clientes/pkg/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, isatty.IsTerminal(os.Stdout.Fd()))
	stop()
	os.Exit(code)
}

// run returns the process exit code so deferred cleanup finishes before the
// process exits.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, color bool) int {
	cfg, err := settings.FromArgs("clientes-cli", args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger := cfg.Logger(stderr)

	app, err := clientes.Bootstrap(ctx, cfg.Origin,
		clientes.WithLogger(logger),
		clientes.WithConfigPath(cfg.ConfigPath),
		clientes.WithProxyRoot(cfg.ProxyRoot),
		clientes.WithLocale(cfg.Locale),
		clientes.WithAlertTiming(cfg.Alert.Delay, cfg.Alert.Fade),
		clientes.WithTextColor(color),
	)
	if app != nil {
		defer app.Close()
	}
	if err != nil {
		if app != nil {
			if out, _, rerr := app.Render(ctx, clientes.RendererText); rerr == nil {
				_, _ = stdout.Write(out)
			}
		}
		logger.Error().Err(err).Msg("bootstrap failed")
		return 1
	}

	renderer, err := app.Registry.Get(clientes.RendererText)
	if err != nil {
		logger.Error().Err(err).Msg("text renderer missing")
		return 1
	}

	session, err := tui.NewSession(app.Controller,
		tui.WithPresenter(app.Presenter),
		tui.WithRenderer(renderer),
		tui.WithRenderOptions(app.RenderOptions),
		tui.WithLogger(logger),
	)
	if err != nil {
		logger.Error().Err(err).Msg("configure session")
		return 1
	}
	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("session ended")
		return 1
	}
	return 0
}
