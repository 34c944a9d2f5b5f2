// Package clientes wires the client for the Clientes table: it loads the
// proxy configuration, builds the record gateway and the form controller, and
// performs the first list fetch. Both front ends start from Bootstrap.
package clientes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-clientes/pkg/alert"
	"github.com/goliatone/go-clientes/pkg/config"
	"github.com/goliatone/go-clientes/pkg/contract"
	"github.com/goliatone/go-clientes/pkg/form"
	"github.com/goliatone/go-clientes/pkg/messages"
	"github.com/goliatone/go-clientes/pkg/records"
	"github.com/goliatone/go-clientes/pkg/render"
	"github.com/goliatone/go-clientes/pkg/renderers/text"
	"github.com/goliatone/go-clientes/pkg/renderers/vanilla"
)

// Renderer names registered by Bootstrap.
const (
	RendererHTML = "vanilla"
	RendererText = "text"
)

// Option configures Bootstrap.
type Option func(*options)

type options struct {
	httpClient   *http.Client
	logger       zerolog.Logger
	configPath   string
	proxyRoot    string
	locale       string
	alertDelay   time.Duration
	alertFade    time.Duration
	observers    []alert.Observer
	themeVariant string
	textColor    bool
	registry     *render.Registry
}

// WithHTTPClient sets the client used for the config endpoint and the proxy.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithLogger sets the logger handed to every component.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithConfigPath overrides the path of the config endpoint.
func WithConfigPath(path string) Option {
	return func(o *options) {
		o.configPath = path
	}
}

// WithProxyRoot overrides the path prefix of the record proxy.
func WithProxyRoot(root string) Option {
	return func(o *options) {
		o.proxyRoot = root
	}
}

// WithLocale selects the message catalog.
func WithLocale(locale string) Option {
	return func(o *options) {
		if locale = strings.TrimSpace(locale); locale != "" {
			o.locale = locale
		}
	}
}

// WithAlertTiming sets the visible and fade durations of alerts.
func WithAlertTiming(delay, fade time.Duration) Option {
	return func(o *options) {
		o.alertDelay = delay
		o.alertFade = fade
	}
}

// WithAlertObserver receives every alert transition.
func WithAlertObserver(fn alert.Observer) Option {
	return func(o *options) {
		if fn != nil {
			o.observers = append(o.observers, fn)
		}
	}
}

// WithThemeVariant selects a variant of the built-in theme.
func WithThemeVariant(variant string) Option {
	return func(o *options) {
		o.themeVariant = variant
	}
}

// WithTextColor enables ANSI colours in the text renderer.
func WithTextColor(enabled bool) Option {
	return func(o *options) {
		o.textColor = enabled
	}
}

// WithRegistry supplies a renderer registry. The built-in renderers are added
// when their names are free.
func WithRegistry(registry *render.Registry) Option {
	return func(o *options) {
		if registry != nil {
			o.registry = registry
		}
	}
}

// App is a bootstrapped session.
type App struct {
	// Endpoint is zero when configuration failed.
	Endpoint      config.Endpoint
	Gateway       *records.Client
	Controller    *form.Controller
	Presenter     *alert.Presenter
	Registry      *render.Registry
	RenderOptions render.RenderOptions

	logger zerolog.Logger
}

// Bootstrap loads the configuration from origin, derives the endpoint, builds
// the gateway and controller and runs the first refresh.
//
// A configuration failure is returned as a *config.Error together with a
// non-nil App whose Controller is nil: the presenter already shows the
// configuration alert and the registry can still render the blocked page.
// A failed first refresh is not an error; it is kept as the list error.
func Bootstrap(ctx context.Context, origin string, opts ...Option) (*App, error) {
	if ctx == nil {
		return nil, errors.New("clientes: context is required")
	}
	o := options{
		httpClient: http.DefaultClient,
		logger:     zerolog.Nop(),
		locale:     messages.DefaultLocale,
		alertDelay: alert.DefaultDelay,
		alertFade:  alert.DefaultFade,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	app := &App{logger: o.logger.With().Str("component", "bootstrap").Logger()}

	alertOpts := []alert.Option{
		alert.WithDelay(o.alertDelay),
		alert.WithFade(o.alertFade),
		alert.WithLogger(o.logger.With().Str("component", "alert").Logger()),
	}
	for _, fn := range o.observers {
		alertOpts = append(alertOpts, alert.WithObserver(fn))
	}
	app.Presenter = alert.New(alertOpts...)

	themeCfg, err := render.ResolveTheme(render.DefaultThemeManifest(), o.themeVariant)
	if err != nil {
		return nil, fmt.Errorf("clientes: %w", err)
	}
	app.RenderOptions = render.RenderOptions{Locale: o.locale, Theme: themeCfg}

	app.Registry = o.registry
	if app.Registry == nil {
		app.Registry = render.NewRegistry()
	}
	if err := registerDefaults(app.Registry, o.textColor); err != nil {
		return nil, err
	}

	loader, err := config.NewLoader(origin,
		config.WithHTTPClient(o.httpClient),
		config.WithConfigPath(o.configPath),
		config.WithProxyRoot(o.proxyRoot),
		config.WithLogger(o.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("clientes: %w", err)
	}

	endpoint, err := loader.Load(ctx)
	if err != nil {
		app.Presenter.Show(messages.T(nil, o.locale, messages.KeyAlertConfigFailed), alert.KindError)
		return app, err
	}
	app.Endpoint = endpoint

	app.Gateway, err = records.NewClient(endpoint,
		records.WithHTTPClient(o.httpClient),
		records.WithLogger(o.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("clientes: %w", err)
	}

	ct, err := contract.Default()
	if err != nil {
		return nil, fmt.Errorf("clientes: %w", err)
	}

	app.Controller, err = form.New(app.Gateway, app.Presenter,
		form.WithLocale(o.locale),
		form.WithLogger(o.logger),
		form.WithContract(ct),
		form.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("clientes: %w", err)
	}

	if err := app.Controller.Refresh(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return app, err
		}
		app.logger.Warn().Err(err).Msg("initial list load failed")
	}
	app.logger.Info().Str("endpoint", endpoint.URL()).Msg("session ready")
	return app, nil
}

func registerDefaults(registry *render.Registry, color bool) error {
	existing := make(map[string]bool)
	for _, name := range registry.List() {
		existing[name] = true
	}
	if !existing[RendererHTML] {
		html, err := vanilla.New()
		if err != nil {
			return fmt.Errorf("clientes: %w", err)
		}
		if err := registry.Register(html); err != nil {
			return fmt.Errorf("clientes: %w", err)
		}
	}
	if !existing[RendererText] {
		if err := registry.Register(text.New(text.WithColor(color))); err != nil {
			return fmt.Errorf("clientes: %w", err)
		}
	}
	return nil
}

// Ready reports whether configuration succeeded.
func (a *App) Ready() bool {
	return a != nil && a.Controller != nil
}

// Page builds the current page, or the blocked page when configuration
// failed.
func (a *App) Page() render.Page {
	if !a.Ready() {
		return render.BlockedPage(a.RenderOptions)
	}
	return a.Controller.Page(a.Presenter.Current())
}

// Render draws the current page with the named renderer and returns the
// output and its content type.
func (a *App) Render(ctx context.Context, renderer string) ([]byte, string, error) {
	return a.Registry.Render(ctx, renderer, a.Page(), a.RenderOptions)
}

// Close stops pending alert timers.
func (a *App) Close() {
	if a != nil && a.Presenter != nil {
		a.Presenter.Close()
	}
}
