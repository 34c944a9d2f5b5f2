package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// ErrorKind classifies configuration failures.
type ErrorKind string

const (
	ErrorTransport ErrorKind = "transport"
	ErrorStatus    ErrorKind = "status"
	ErrorDecode    ErrorKind = "decode"
	ErrorMissing   ErrorKind = "missing"
)

// ErrMissingBaseID is wrapped by Error when the endpoint answers without a
// base identifier.
var ErrMissingBaseID = errors.New("config: AIRTABLE_BASE_ID is empty")

// Error is returned for every failed load. It is fatal for the session.
type Error struct {
	Kind       ErrorKind
	URL        string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ErrorStatus:
		return fmt.Sprintf("config: %s answered status %d", e.URL, e.StatusCode)
	case ErrorMissing:
		return fmt.Sprintf("config: %s: %v", e.URL, ErrMissingBaseID)
	default:
		return fmt.Sprintf("config: %s load %s: %v", e.Kind, e.URL, e.Err)
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	if e.Kind == ErrorMissing && e.Err == nil {
		return ErrMissingBaseID
	}
	return e.Err
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient overrides the client used for the single config request.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		if client != nil {
			l.client = client
		}
	}
}

// WithConfigPath overrides DefaultConfigPath.
func WithConfigPath(path string) Option {
	return func(l *Loader) {
		if path = strings.TrimSpace(path); path != "" {
			l.configPath = path
		}
	}
}

// WithProxyRoot overrides DefaultProxyRoot.
func WithProxyRoot(root string) Option {
	return func(l *Loader) {
		if root = strings.TrimSpace(root); root != "" {
			l.proxyRoot = root
		}
	}
}

// WithLogger sets the logger used to report load results.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// Loader fetches the configuration once at startup.
type Loader struct {
	origin     *url.URL
	client     *http.Client
	configPath string
	proxyRoot  string
	logger     zerolog.Logger
}

// NewLoader builds a Loader for the host serving both the configuration and
// the proxy.
func NewLoader(origin string, options ...Option) (*Loader, error) {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return nil, errors.New("config: origin is required")
	}
	parsed, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("config: invalid origin: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("config: origin %q must be absolute", origin)
	}

	l := &Loader{
		origin:     parsed,
		client:     http.DefaultClient,
		configPath: DefaultConfigPath,
		proxyRoot:  DefaultProxyRoot,
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l, nil
}

// URL returns the absolute configuration endpoint.
func (l *Loader) URL() string {
	ref, err := url.Parse(l.configPath)
	if err != nil {
		return strings.TrimRight(l.origin.String(), "/") + l.configPath
	}
	return l.origin.ResolveReference(ref).String()
}

// Load performs the single configuration request. There is no retry; callers
// must not create a record gateway when it fails.
func (l *Loader) Load(ctx context.Context) (Endpoint, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	target := l.URL()

	cfg, err := l.fetch(ctx, target)
	if err != nil {
		l.logger.Error().Err(err).Str("url", target).Msg("configuration load failed")
		return Endpoint{}, err
	}

	endpoint := NewEndpoint(l.origin, l.proxyRoot, cfg)
	l.logger.Info().
		Str("base_id", endpoint.BaseID).
		Str("proxy_url", endpoint.URL()).
		Msg("configuration loaded")
	return endpoint, nil
}

func (l *Loader) fetch(ctx context.Context, target string) (Config, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Config{}, &Error{Kind: ErrorTransport, URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return Config{}, &Error{Kind: ErrorTransport, URL: target, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return Config{}, &Error{Kind: ErrorStatus, URL: target, StatusCode: resp.StatusCode}
	}

	var cfg Config
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return Config{}, &Error{Kind: ErrorDecode, URL: target, StatusCode: resp.StatusCode, Err: err}
	}
	if strings.TrimSpace(cfg.BaseID) == "" {
		return Config{}, &Error{Kind: ErrorMissing, URL: target, StatusCode: resp.StatusCode, Err: ErrMissingBaseID}
	}
	return cfg, nil
}
