// Package listing projects the in-memory collection into the view rendered by
// every front end. Project never touches the network.
package listing

import (
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-clientes/pkg/messages"
	"github.com/goliatone/go-clientes/pkg/records"
)

// DefaultStagger is the per-card animation offset.
const DefaultStagger = 100 * time.Millisecond

// Card is one rendered record.
type Card struct {
	ID           string `json:"id"`
	Index        int    `json:"index"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	MissingName  bool   `json:"missing_name"`
	MissingEmail bool   `json:"missing_email"`
	MissingPhone bool   `json:"missing_phone"`
	Delay        string `json:"delay"`
}

// View is the projection of a whole collection.
type View struct {
	Empty      bool   `json:"empty"`
	EmptyTitle string `json:"empty_title,omitempty"`
	EmptyHint  string `json:"empty_hint,omitempty"`
	Cards      []Card `json:"cards"`
}

// Option configures Project.
type Option func(*config)

type config struct {
	locale     string
	translator messages.Translator
	stagger    time.Duration
}

// WithLocale selects the placeholder language.
func WithLocale(locale string) Option {
	return func(cfg *config) {
		if locale = strings.TrimSpace(locale); locale != "" {
			cfg.locale = locale
		}
	}
}

// WithTranslator overrides the message catalog.
func WithTranslator(t messages.Translator) Option {
	return func(cfg *config) {
		if t != nil {
			cfg.translator = t
		}
	}
}

// WithStagger sets the animation offset between consecutive cards.
func WithStagger(d time.Duration) Option {
	return func(cfg *config) {
		if d >= 0 {
			cfg.stagger = d
		}
	}
}

// Project builds the view for collection, preserving its order.
func Project(collection []records.Record, options ...Option) View {
	cfg := config{
		locale:     messages.DefaultLocale,
		translator: messages.Default(),
		stagger:    DefaultStagger,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(collection) == 0 {
		return View{
			Empty:      true,
			EmptyTitle: messages.T(cfg.translator, cfg.locale, messages.KeyListEmptyTitle),
			EmptyHint:  messages.T(cfg.translator, cfg.locale, messages.KeyListEmptyHint),
			Cards:      []Card{},
		}
	}

	noName := messages.T(cfg.translator, cfg.locale, messages.KeyCardNoName)
	notInformed := messages.T(cfg.translator, cfg.locale, messages.KeyCardNotInformed)

	cards := make([]Card, 0, len(collection))
	for i, rec := range collection {
		card := Card{
			ID:    rec.ID,
			Index: i,
			Delay: formatDelay(time.Duration(i) * cfg.stagger),
		}
		card.Name, card.MissingName = valueOr(rec.Fields.Name, noName)
		card.Email, card.MissingEmail = valueOr(rec.Fields.Email, notInformed)
		card.Phone, card.MissingPhone = valueOr(rec.Fields.Phone, notInformed)
		cards = append(cards, card)
	}
	return View{Cards: cards}
}

func valueOr(value, placeholder string) (string, bool) {
	if strings.TrimSpace(value) == "" {
		return placeholder, true
	}
	return value, false
}

func formatDelay(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}
