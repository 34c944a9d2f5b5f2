// Package form owns the application state shared by every front end: the
// record collection, the create/edit cursor and the form values. All network
// work goes through a Gateway; user feedback goes through a Notifier.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-clientes/pkg/alert"
	"github.com/goliatone/go-clientes/pkg/config"
	"github.com/goliatone/go-clientes/pkg/contract"
	"github.com/goliatone/go-clientes/pkg/listing"
	"github.com/goliatone/go-clientes/pkg/messages"
	"github.com/goliatone/go-clientes/pkg/records"
	"github.com/goliatone/go-clientes/pkg/render"
)

var (
	// ErrValidation is returned by Submit when a value is missing or rejected
	// by the proxy contract. No request is sent.
	ErrValidation = errors.New("form: validation failed")
	// ErrUnknownRecord is returned by Edit for ids outside the collection.
	ErrUnknownRecord = errors.New("form: unknown record")
)

// Gateway is the record store the controller drives. *records.Client and
// the records/mock package satisfy it.
type Gateway interface {
	List(ctx context.Context) ([]records.Record, error)
	Create(ctx context.Context, fields records.Fields) (records.Record, error)
	Update(ctx context.Context, id string, fields records.Fields) (records.Record, error)
	Remove(ctx context.Context, id string) error
}

// Notifier shows transient messages. *alert.Presenter satisfies it.
type Notifier interface {
	Show(message string, kind alert.Kind)
}

// Input carries raw form values.
type Input struct {
	Name  string
	Email string
	Phone string
}

func (in Input) trimmed() Input {
	return Input{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Phone: strings.TrimSpace(in.Phone),
	}
}

func (in Input) complete() bool {
	return in.Name != "" && in.Email != "" && in.Phone != ""
}

func (in Input) fields() records.Fields {
	return records.Fields{Name: in.Name, Email: in.Email, Phone: in.Phone}
}

// ListError describes a failed list load for inline display.
type ListError struct {
	Message   string
	Transport bool
	ProxyURL  string
	BaseID    string
	Table     string
	Err       error
}

// State is a snapshot of the controller.
type State struct {
	Mode        string
	EditingID   string
	Values      Input
	SubmitLabel string
	Submitting  bool
	Loading     bool
	Records     []records.Record
	ListError   *ListError
}

// Editing reports whether the form targets an existing record.
func (s State) Editing() bool {
	return s.Mode == render.ModeEdit
}

type Option func(*Controller)

// WithLocale selects the language of alerts and labels.
func WithLocale(locale string) Option {
	return func(c *Controller) {
		if locale = strings.TrimSpace(locale); locale != "" {
			c.locale = locale
		}
	}
}

// WithTranslator overrides the built-in message catalog.
func WithTranslator(t messages.Translator) Option {
	return func(c *Controller) {
		if t != nil {
			c.translator = t
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithContract validates write payloads against the proxy contract before
// they are sent.
func WithContract(ct *contract.Contract) Option {
	return func(c *Controller) {
		c.contract = ct
	}
}

// WithEndpoint records the proxy endpoint shown while the list is loading.
func WithEndpoint(endpoint config.Endpoint) Option {
	return func(c *Controller) {
		c.endpoint = endpoint
	}
}

// WithListOptions forwards options to listing.Project when building pages.
func WithListOptions(opts ...listing.Option) Option {
	return func(c *Controller) {
		c.listOptions = append(c.listOptions, opts...)
	}
}

// Controller serialises state changes with a mutex. Network calls run
// outside the lock; refresh results are sequenced so an older fetch never
// overwrites a newer one.
type Controller struct {
	gateway  Gateway
	notifier Notifier

	locale      string
	translator  messages.Translator
	logger      zerolog.Logger
	contract    *contract.Contract
	endpoint    config.Endpoint
	listOptions []listing.Option

	mu         sync.Mutex
	collection []records.Record
	cursor     *string
	values     Input
	listErr    *ListError
	submitting bool
	inflight   int
	issued     uint64
	applied    uint64
}

// New builds a controller in Create mode with an empty collection.
func New(gateway Gateway, notifier Notifier, options ...Option) (*Controller, error) {
	if gateway == nil {
		return nil, errors.New("form: gateway is required")
	}
	if notifier == nil {
		return nil, errors.New("form: notifier is required")
	}
	c := &Controller{
		gateway:    gateway,
		notifier:   notifier,
		locale:     messages.DefaultLocale,
		translator: messages.Default(),
		logger:     zerolog.Nop(),
		collection: []records.Record{},
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	c.logger = c.logger.With().Str("component", "form").Logger()
	return c, nil
}

func (c *Controller) msg(key string, args ...any) string {
	return messages.T(c.translator, c.locale, key, args...)
}

// Refresh fetches the collection and replaces it wholesale. A failure is kept
// as the list error and returned; a result older than one already applied is
// discarded.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.inflight++
	c.mu.Unlock()

	list, err := c.gateway.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--

	if seq <= c.applied {
		c.logger.Debug().Uint64("seq", seq).Uint64("applied", c.applied).Msg("discarding stale refresh")
		if err != nil {
			return fmt.Errorf("form: refresh: %w", err)
		}
		return nil
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		c.applied = seq
		c.listErr = c.listError(err)
		c.logger.Error().Err(err).Msg("failed to load records")
		return fmt.Errorf("form: refresh: %w", err)
	}

	c.applied = seq
	if list == nil {
		list = []records.Record{}
	}
	c.collection = list
	c.listErr = nil
	c.logger.Debug().Int("records", len(list)).Msg("records loaded")
	return nil
}

func (c *Controller) listError(err error) *ListError {
	out := &ListError{Message: err.Error(), Err: err}

	var transportErr *records.TransportError
	if errors.As(err, &transportErr) {
		out.Transport = true
		out.Message = transportErr.Err.Error()
		out.ProxyURL = transportErr.URL
		out.BaseID = transportErr.BaseID
		out.Table = transportErr.Table
		return out
	}

	var statusErr *records.StatusError
	if errors.As(err, &statusErr) {
		out.Message = c.msg(messages.KeyStatusError, statusErr.StatusCode, c.msg(statusKey(statusErr.Category())))
	}
	return out
}

func statusKey(category records.Category) string {
	switch category {
	case records.CategoryUnauthorized:
		return messages.KeyStatusUnauthorized
	case records.CategoryForbidden:
		return messages.KeyStatusForbidden
	case records.CategoryNotFound:
		return messages.KeyStatusNotFound
	case records.CategoryUnprocessable:
		return messages.KeyStatusUnprocessable
	default:
		return messages.KeyStatusUnknown
	}
}

// Edit switches to Edit mode for id and copies its values into the form.
// Absent fields become empty strings.
func (c *Controller) Edit(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, rec := range c.collection {
		if rec.ID != id {
			continue
		}
		cursor := rec.ID
		c.cursor = &cursor
		c.values = Input{
			Name:  rec.Fields.Name,
			Email: rec.Fields.Email,
			Phone: rec.Fields.Phone,
		}
		c.logger.Debug().Str("id", id).Msg("editing record")
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownRecord, id)
}

// Reset returns to Create mode and clears the form.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

func (c *Controller) resetLocked() {
	c.cursor = nil
	c.values = Input{}
}

// Submit validates and saves the form. Create mode issues a create, Edit
// mode an update of the cursor record. On success the form is reset and the
// collection refreshed; refresh failures are left to the list error.
func (c *Controller) Submit(ctx context.Context, input Input) error {
	in := input.trimmed()

	c.mu.Lock()
	c.values = in
	if !in.complete() {
		c.mu.Unlock()
		c.notifier.Show(c.msg(messages.KeyAlertValidation), alert.KindError)
		return ErrValidation
	}
	if c.contract != nil {
		if err := c.contract.ValidateFields(in.fields()); err != nil {
			c.mu.Unlock()
			c.logger.Warn().Err(err).Msg("payload rejected by contract")
			c.notifier.Show(c.msg(messages.KeyAlertValidation), alert.KindError)
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}
	var id string
	editing := c.cursor != nil
	if editing {
		id = *c.cursor
	}
	c.submitting = true
	c.mu.Unlock()

	var err error
	if editing {
		_, err = c.gateway.Update(ctx, id, in.fields())
	} else {
		_, err = c.gateway.Create(ctx, in.fields())
	}

	c.mu.Lock()
	c.submitting = false
	if err != nil {
		c.mu.Unlock()
		c.logger.Error().Err(err).Str("id", id).Bool("editing", editing).Msg("failed to save record")
		c.notifier.Show(c.msg(messages.KeyAlertSaveFailed), alert.KindError)
		return fmt.Errorf("form: save: %w", err)
	}
	c.resetLocked()
	c.mu.Unlock()

	if editing {
		c.logger.Info().Str("id", id).Msg("record updated")
		c.notifier.Show(c.msg(messages.KeyAlertUpdated), alert.KindSuccess)
	} else {
		c.logger.Info().Msg("record created")
		c.notifier.Show(c.msg(messages.KeyAlertCreated), alert.KindSuccess)
	}

	_ = c.Refresh(ctx)
	return nil
}

// Delete removes id and refreshes the collection.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return records.ErrMissingID
	}
	if err := c.gateway.Remove(ctx, id); err != nil {
		c.logger.Error().Err(err).Str("id", id).Msg("failed to delete record")
		c.notifier.Show(c.msg(messages.KeyAlertDeleteFailed), alert.KindError)
		return fmt.Errorf("form: delete: %w", err)
	}
	c.logger.Info().Str("id", id).Msg("record deleted")
	c.notifier.Show(c.msg(messages.KeyAlertDeleted), alert.KindSuccess)

	_ = c.Refresh(ctx)
	return nil
}

// State returns a snapshot safe to use after the lock is released.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := State{
		Mode:        render.ModeCreate,
		Values:      c.values,
		SubmitLabel: c.msg(messages.KeySubmitCreate),
		Submitting:  c.submitting,
		Loading:     c.inflight > 0 && c.applied == 0,
		Records:     append([]records.Record(nil), c.collection...),
	}
	if st.Records == nil {
		st.Records = []records.Record{}
	}
	if c.cursor != nil {
		st.Mode = render.ModeEdit
		st.EditingID = *c.cursor
		st.SubmitLabel = c.msg(messages.KeySubmitUpdate)
	}
	if c.listErr != nil {
		le := *c.listErr
		st.ListError = &le
	}
	return st
}

// Page builds the render model from the current state and the alert
// snapshot.
func (c *Controller) Page(current alert.Alert) render.Page {
	st := c.State()

	listOpts := append([]listing.Option{
		listing.WithLocale(c.locale),
		listing.WithTranslator(c.translator),
	}, c.listOptions...)

	page := render.Page{
		Form: render.FormView{
			Mode:        st.Mode,
			EditingID:   st.EditingID,
			Name:        st.Values.Name,
			Email:       st.Values.Email,
			Phone:       st.Values.Phone,
			SubmitLabel: st.SubmitLabel,
			Disabled:    st.Submitting,
		},
		List:    listing.Project(st.Records, listOpts...),
		Loading: st.Loading,
		Alert:   AlertView(current),
	}
	if st.Loading && c.endpoint.Valid() {
		page.LoadingDetail = c.msg(messages.KeyListLoadingVia, c.endpoint.URL())
	}
	if st.ListError != nil {
		page.ListError = &render.ListErrorView{
			Message:   st.ListError.Message,
			Transport: st.ListError.Transport,
			ProxyURL:  st.ListError.ProxyURL,
			BaseID:    st.ListError.BaseID,
			Table:     st.ListError.Table,
		}
	}
	return page
}

// AlertView converts an alert snapshot into its render model.
func AlertView(a alert.Alert) render.AlertView {
	return render.AlertView{
		Message: a.Message,
		Kind:    string(a.Kind),
		Visible: a.Visible(),
		Hiding:  a.Phase == alert.PhaseHiding,
	}
}
