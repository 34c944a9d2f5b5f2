// Package tui is the interactive terminal front end. A Session loops over a
// menu and drives the same form controller the web front end uses.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-clientes/pkg/alert"
	"github.com/goliatone/go-clientes/pkg/form"
	"github.com/goliatone/go-clientes/pkg/messages"
	"github.com/goliatone/go-clientes/pkg/records"
	"github.com/goliatone/go-clientes/pkg/render"
	"github.com/goliatone/go-clientes/pkg/renderers/text"
)

// Menu actions in display order.
const (
	ActionCreate = iota
	ActionEdit
	ActionDelete
	ActionReload
	ActionQuit
)

type Option func(*Session)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithRenderer overrides the list renderer (plain text by default).
func WithRenderer(r render.Renderer) Option {
	return func(s *Session) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithRenderOptions sets the locale used for prompts and output.
func WithRenderOptions(opts render.RenderOptions) Option {
	return func(s *Session) {
		s.renderOptions = opts
	}
}

// WithPresenter shows presenter alerts above the list.
func WithPresenter(p *alert.Presenter) Option {
	return func(s *Session) {
		s.presenter = p
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

type Session struct {
	controller    *form.Controller
	presenter     *alert.Presenter
	driver        PromptDriver
	renderer      render.Renderer
	renderOptions render.RenderOptions
	logger        zerolog.Logger
}

// NewSession wires a session around controller.
func NewSession(controller *form.Controller, options ...Option) (*Session, error) {
	if controller == nil {
		return nil, errors.New("tui: controller is required")
	}
	s := &Session{
		controller: controller,
		renderer:   text.New(),
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	if s.presenter == nil {
		s.presenter = alert.New()
	}
	s.logger = s.logger.With().Str("component", "tui").Logger()
	return s, nil
}

func (s *Session) msg(key string, args ...any) string {
	return messages.T(s.renderOptions.ResolvedTranslator(), s.renderOptions.ResolvedLocale(), key, args...)
}

// Run draws the list and executes menu actions until the user quits or
// aborts. Aborting is not an error.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := s.draw(ctx); err != nil {
			return err
		}

		choice, err := s.driver.Select(ctx, SelectConfig{
			Message: s.msg(messages.KeyMenuPrompt),
			Options: []string{
				s.msg(messages.KeyMenuCreate),
				s.msg(messages.KeyMenuEdit),
				s.msg(messages.KeyMenuDelete),
				s.msg(messages.KeyMenuReload),
				s.msg(messages.KeyMenuQuit),
			},
		})
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case ActionCreate:
			s.controller.Reset()
			err = s.fill(ctx)
		case ActionEdit:
			err = s.edit(ctx)
		case ActionDelete:
			err = s.remove(ctx)
		case ActionReload:
			if rerr := s.controller.Refresh(ctx); rerr != nil {
				s.logger.Debug().Err(rerr).Msg("reload failed")
			}
		case ActionQuit:
			return nil
		default:
			err = fmt.Errorf("tui: unknown menu choice %d", choice)
		}

		switch {
		case err == nil, errors.Is(err, ErrNoRecords):
		case errors.Is(err, ErrAborted), errors.Is(err, context.Canceled):
			return s.finish(err)
		default:
			s.logger.Debug().Err(err).Msg("action failed")
		}
	}
}

func (s *Session) finish(err error) error {
	if errors.Is(err, ErrAborted) {
		return nil
	}
	return err
}

// draw prints the current page. A visible alert is printed once and then
// dismissed.
func (s *Session) draw(ctx context.Context) error {
	current := s.presenter.Current()
	page := s.controller.Page(current)
	out, err := s.renderer.Render(ctx, page, s.renderOptions)
	if err != nil {
		return fmt.Errorf("tui: render: %w", err)
	}
	if current.Visible() {
		s.presenter.Dismiss()
	}
	return s.driver.Info(ctx, strings.TrimRight(string(out), "\n"))
}

// fill prompts for every field, using the current values as defaults, and
// submits.
func (s *Session) fill(ctx context.Context) error {
	values := s.controller.State().Values

	name, err := s.driver.Input(ctx, InputConfig{Message: s.msg(messages.KeyFormName), Default: values.Name, Help: s.msg(messages.KeyFormNameHint)})
	if err != nil {
		return err
	}
	email, err := s.driver.Input(ctx, InputConfig{Message: s.msg(messages.KeyFormEmail), Default: values.Email, Help: s.msg(messages.KeyFormEmailHint)})
	if err != nil {
		return err
	}
	phone, err := s.driver.Input(ctx, InputConfig{Message: s.msg(messages.KeyFormPhone), Default: values.Phone, Help: s.msg(messages.KeyFormPhoneHint)})
	if err != nil {
		return err
	}
	return s.controller.Submit(ctx, form.Input{Name: name, Email: email, Phone: phone})
}

func (s *Session) edit(ctx context.Context) error {
	id, err := s.pick(ctx)
	if err != nil {
		return err
	}
	if err := s.controller.Edit(id); err != nil {
		return err
	}
	return s.fill(ctx)
}

func (s *Session) remove(ctx context.Context) error {
	id, err := s.pick(ctx)
	if err != nil {
		return err
	}
	ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: s.msg(messages.KeyDeleteConfirm)})
	if err != nil || !ok {
		return err
	}
	return s.controller.Delete(ctx, id)
}

func (s *Session) pick(ctx context.Context) (string, error) {
	list := s.controller.State().Records
	if len(list) == 0 {
		if err := s.driver.Info(ctx, s.msg(messages.KeyListEmptyTitle)); err != nil {
			return "", err
		}
		return "", ErrNoRecords
	}

	options := make([]string, len(list))
	for i, rec := range list {
		options[i] = label(rec, s.msg(messages.KeyCardNoName))
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: s.msg(messages.KeyMenuPick), Options: options, PageSize: 10})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(list) {
		return "", fmt.Errorf("tui: choice %d out of range", idx)
	}
	return list[idx].ID, nil
}

func label(rec records.Record, noName string) string {
	name := strings.TrimSpace(rec.Fields.Name)
	if name == "" {
		name = noName
	}
	if email := strings.TrimSpace(rec.Fields.Email); email != "" {
		return fmt.Sprintf("%s <%s> (%s)", name, email, rec.ID)
	}
	return fmt.Sprintf("%s (%s)", name, rec.ID)
}
