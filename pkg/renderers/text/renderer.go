// Package text renders a page as plain terminal text. It is the list view of
// the interactive CLI.
package text

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/mgutz/ansi"

	"github.com/goliatone/go-clientes/pkg/messages"
	"github.com/goliatone/go-clientes/pkg/render"
)

type Option func(*Renderer)

// WithColor enables ANSI colours for headings, alerts and placeholders.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		r.color = enabled
	}
}

type Renderer struct {
	color bool
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, page render.Page, options render.RenderOptions) ([]byte, error) {
	locale := options.ResolvedLocale()
	translator := options.ResolvedTranslator()
	label := func(key string, args ...any) string {
		return messages.T(translator, locale, key, args...)
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, r.paint(label(messages.KeyPageTitle), "cyan+b"))

	if page.Alert.Visible {
		style := "green"
		if page.Alert.Kind == "error" {
			style = "red"
		}
		fmt.Fprintln(&buf, r.paint("! "+page.Alert.Message, style))
	}
	if page.Blocked {
		return buf.Bytes(), nil
	}

	if page.Form.Editing() {
		fmt.Fprintf(&buf, "%s: %s\n", page.Form.SubmitLabel, page.Form.EditingID)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, r.paint(label(messages.KeyListTitle), "b"))

	switch {
	case page.Loading:
		fmt.Fprintln(&buf, label(messages.KeyListLoading))
		if page.LoadingDetail != "" {
			fmt.Fprintln(&buf, page.LoadingDetail)
		}
	case page.ListError != nil:
		r.writeError(&buf, page.ListError, label)
	case page.List.Empty:
		fmt.Fprintln(&buf, page.List.EmptyTitle)
		fmt.Fprintln(&buf, page.List.EmptyHint)
	default:
		for _, card := range page.List.Cards {
			fmt.Fprintf(&buf, "%2d. %s\n", card.Index+1, r.value(card.Name, card.MissingName))
			fmt.Fprintf(&buf, "    %s: %s\n", label(messages.KeyFormEmail), r.value(card.Email, card.MissingEmail))
			fmt.Fprintf(&buf, "    %s: %s\n", label(messages.KeyFormPhone), r.value(card.Phone, card.MissingPhone))
			fmt.Fprintf(&buf, "    id: %s\n", card.ID)
		}
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeError(buf *bytes.Buffer, view *render.ListErrorView, label func(string, ...any) string) {
	fmt.Fprintln(buf, r.paint(label(messages.KeyListErrorTitle)+" "+view.Message, "red"))
	if !view.Transport {
		return
	}
	fmt.Fprintln(buf, label(messages.KeyDiagTitle))
	fmt.Fprintf(buf, "  - %s\n", label(messages.KeyDiagConnection))
	fmt.Fprintf(buf, "  - %s\n", label(messages.KeyDiagServer))
	fmt.Fprintf(buf, "  - %s\n", label(messages.KeyDiagEnvironment))
	fmt.Fprintln(buf, label(messages.KeyDiagSettings))
	fmt.Fprintf(buf, "  %s: %s\n", label(messages.KeyDiagProxyURL), view.ProxyURL)
	fmt.Fprintf(buf, "  %s: %s\n", label(messages.KeyDiagBaseID), view.BaseID)
	fmt.Fprintf(buf, "  %s: %s\n", label(messages.KeyDiagTable), view.Table)
}

func (r *Renderer) value(v string, placeholder bool) string {
	v = stripControl(v)
	if placeholder {
		return r.paint(v, "black+h")
	}
	return v
}

func (r *Renderer) paint(s, style string) string {
	if !r.color {
		return s
	}
	return ansi.Color(s, style)
}

// stripControl drops control characters so remote values cannot move the
// cursor or inject escape sequences.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
