// Package server is the web front end: one page rendered on the server, plain
// HTML forms and Post/Redirect/Get over a single shared session.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-clientes/pkg/alert"
	"github.com/goliatone/go-clientes/pkg/form"
	"github.com/goliatone/go-clientes/pkg/render"
)

// Form field names posted by the page.
const (
	FieldName  = "nome"
	FieldEmail = "email"
	FieldPhone = "telefone"
)

// AssetsPrefix is where static assets are mounted.
const AssetsPrefix = "/assets/"

type Option func(*Server)

// WithController attaches the session controller.
func WithController(c *form.Controller) Option {
	return func(s *Server) {
		s.controller = c
	}
}

// WithPresenter attaches the alert presenter shown on the page.
func WithPresenter(p *alert.Presenter) Option {
	return func(s *Server) {
		s.presenter = p
	}
}

// WithRenderer sets the page renderer.
func WithRenderer(r render.Renderer) Option {
	return func(s *Server) {
		s.renderer = r
	}
}

// WithRenderOptions sets locale, theme and asset path for every page.
func WithRenderOptions(opts render.RenderOptions) Option {
	return func(s *Server) {
		s.renderOptions = opts
	}
}

// WithAssets serves files under AssetsPrefix.
func WithAssets(files fs.FS) Option {
	return func(s *Server) {
		s.assets = files
	}
}

// WithLogger sets the logger used for access logs and handler errors.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithBootstrapError puts the server in blocked mode: the page only shows
// the configuration alert and every POST answers 503.
func WithBootstrapError(err error) Option {
	return func(s *Server) {
		s.bootstrapErr = err
	}
}

// Server owns the routes of the web front end.
type Server struct {
	controller    *form.Controller
	presenter     *alert.Presenter
	renderer      render.Renderer
	renderOptions render.RenderOptions
	assets        fs.FS
	logger        zerolog.Logger
	bootstrapErr  error
}

// New validates the wiring. A controller is required unless the server is
// blocked.
func New(options ...Option) (*Server, error) {
	s := &Server{logger: zerolog.Nop()}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.renderer == nil {
		return nil, errors.New("server: renderer is required")
	}
	if s.bootstrapErr == nil && s.controller == nil {
		return nil, errors.New("server: controller is required")
	}
	if s.presenter == nil {
		s.presenter = alert.New()
	}
	s.logger = s.logger.With().Str("component", "server").Logger()
	return s, nil
}

// Blocked reports whether bootstrap failed.
func (s *Server) Blocked() bool {
	return s.bootstrapErr != nil
}

// Handler returns the router wrapped with access logging and panic
// recovery.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	router.Handle("/", handlers.MethodHandler{
		http.MethodGet:  http.HandlerFunc(s.page),
		http.MethodHead: http.HandlerFunc(s.page),
	})
	router.Handle("/healthz", handlers.MethodHandler{
		http.MethodGet: http.HandlerFunc(s.health),
	})

	s.post(router, "/clientes", s.submit)
	s.post(router, "/clientes/{id}/editar", s.edit)
	s.post(router, "/clientes/{id}/excluir", s.remove)
	s.post(router, "/cancelar", s.cancel)
	s.post(router, "/recarregar", s.reload)
	s.post(router, "/alerta/fechar", s.dismiss)

	if s.assets != nil {
		router.PathPrefix(AssetsPrefix).Handler(handlers.MethodHandler{
			http.MethodGet: http.StripPrefix(AssetsPrefix, http.FileServer(http.FS(s.assets))),
		})
	}

	var h http.Handler = router
	h = handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{logger: s.logger}),
		handlers.PrintRecoveryStack(false),
	)(h)
	return handlers.LoggingHandler(accessLog{logger: s.logger}, h)
}

// post registers a mutating route followed by a redirect to the page.
func (s *Server) post(router *mux.Router, path string, fn func(w http.ResponseWriter, r *http.Request) error) {
	router.Handle(path, handlers.MethodHandler{
		http.MethodPost: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s.Blocked() {
				http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
				return
			}
			if err := fn(w, r); err != nil {
				writeError(w, err)
				return
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
		}),
	})
}

func (s *Server) page(w http.ResponseWriter, r *http.Request) {
	var page render.Page
	if s.Blocked() {
		page = render.BlockedPage(s.renderOptions)
	} else {
		page = s.controller.Page(s.presenter.Current())
	}

	body, err := s.renderer.Render(r.Context(), page, s.renderOptions)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", s.renderer.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	if s.Blocked() {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	resp := healthResponse{Status: "ok"}
	code := http.StatusOK
	if s.Blocked() {
		resp = healthResponse{Status: "blocked", Error: s.bootstrapErr.Error()}
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

// Outcomes the controller already reported through an alert are not HTTP
// errors: the redirect shows them.

func (s *Server) submit(_ http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("server: parse form: %w", err)}
	}
	input := form.Input{
		Name:  r.PostForm.Get(FieldName),
		Email: r.PostForm.Get(FieldEmail),
		Phone: r.PostForm.Get(FieldPhone),
	}
	if err := s.controller.Submit(r.Context(), input); err != nil {
		s.logger.Debug().Err(err).Msg("submit failed")
	}
	return nil
}

func (s *Server) edit(_ http.ResponseWriter, r *http.Request) error {
	id := mux.Vars(r)["id"]
	if err := s.controller.Edit(id); err != nil {
		if errors.Is(err, form.ErrUnknownRecord) {
			return StatusError{Code: http.StatusNotFound, Err: err}
		}
		return err
	}
	return nil
}

func (s *Server) remove(_ http.ResponseWriter, r *http.Request) error {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	if err := s.controller.Delete(r.Context(), id); err != nil {
		s.logger.Debug().Err(err).Str("id", id).Msg("delete failed")
	}
	return nil
}

func (s *Server) cancel(_ http.ResponseWriter, _ *http.Request) error {
	s.controller.Reset()
	return nil
}

func (s *Server) reload(_ http.ResponseWriter, r *http.Request) error {
	if err := s.controller.Refresh(r.Context()); err != nil {
		s.logger.Debug().Err(err).Msg("reload failed")
	}
	return nil
}

func (s *Server) dismiss(_ http.ResponseWriter, _ *http.Request) error {
	s.presenter.Dismiss()
	return nil
}
