package render

import (
	"strings"

	"github.com/goliatone/go-clientes/pkg/messages"
)

// RenderOptions describe per-request data that renderers use to customise
// their output without touching the page model.
type RenderOptions struct {
	// Locale selects the message catalog; empty means messages.DefaultLocale.
	Locale string
	// Translator overrides the built-in catalog.
	Translator messages.Translator
	// Theme carries resolved design tokens and the stylesheet URL.
	Theme *ThemeConfig
	// AssetsPath prefixes static asset URLs (defaults to "/assets").
	AssetsPath string
}

// ResolvedLocale returns Locale or the default.
func (o RenderOptions) ResolvedLocale() string {
	if locale := strings.TrimSpace(o.Locale); locale != "" {
		return locale
	}
	return messages.DefaultLocale
}

// ResolvedTranslator returns Translator or the built-in catalog.
func (o RenderOptions) ResolvedTranslator() messages.Translator {
	if o.Translator != nil {
		return o.Translator
	}
	return messages.Default()
}

// Labels flattens every message key for the locale into a map keyed by the
// message key with dots replaced by underscores, which is how templates
// address them (labels.form_submit_create).
func (o RenderOptions) Labels() map[string]string {
	locale := o.ResolvedLocale()
	translator := o.ResolvedTranslator()

	keys := messages.Default()[messages.DefaultLocale]
	out := make(map[string]string, len(keys))
	for key := range keys {
		out[LabelKey(key)] = messages.T(translator, locale, key)
	}
	return out
}

// LabelKey converts a message key into its template form.
func LabelKey(key string) string {
	return strings.ReplaceAll(key, ".", "_")
}
