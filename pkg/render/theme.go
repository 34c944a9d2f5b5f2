package render

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// StylesheetAsset is the manifest asset key of the page stylesheet.
const StylesheetAsset = "clientes.stylesheet"

// ThemeConfig is a resolved theme selection ready for templates.
type ThemeConfig struct {
	Theme      string            `json:"theme"`
	Variant    string            `json:"variant,omitempty"`
	Tokens     map[string]string `json:"tokens"`
	CSSVars    map[string]string `json:"css_vars"`
	Stylesheet string            `json:"stylesheet,omitempty"`
}

// DefaultThemeManifest describes the built-in look: the palette of the
// light page plus a dark variant.
func DefaultThemeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "clientes",
		Version: "1.0.0",
		Tokens: map[string]string{
			"primary":       "#4f46e5",
			"primary-dark":  "#4338ca",
			"success":       "#10b981",
			"danger":        "#ef4444",
			"warning":       "#f59e0b",
			"gray":          "#6b7280",
			"light":         "#f9fafb",
			"surface":       "#ffffff",
			"text":          "#111827",
			"radius":        "10px",
			"card-shadow":   "0 4px 6px rgba(0, 0, 0, 0.07)",
			"font-family":   "'Segoe UI', Tahoma, Geneva, Verdana, sans-serif",
			"alert-offset":  "20px",
			"page-maxwidth": "1100px",
		},
		Assets: theme.Assets{
			Prefix: "/assets",
			Files: map[string]string{
				StylesheetAsset: "clientes.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"light":   "#111827",
					"surface": "#1f2937",
					"text":    "#f9fafb",
					"gray":    "#9ca3af",
				},
			},
		},
	}
}

// ResolveTheme registers manifest in a go-theme registry and selects the
// requested variant through a theme.Selector. An unknown variant is an error;
// an empty one selects the base theme.
func ResolveTheme(manifest *theme.Manifest, variant string) (*ThemeConfig, error) {
	if manifest == nil {
		return nil, errors.New("render: theme manifest is required")
	}
	registry := theme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return nil, fmt.Errorf("render: register theme %q: %w", manifest.Name, err)
	}

	variant = strings.TrimSpace(variant)
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("render: theme %q has no variant %q", manifest.Name, variant)
		}
	}

	selector := theme.Selector{Registry: registry, DefaultTheme: manifest.Name}
	selection, err := selector.Select(manifest.Name, variant)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	cfg := &ThemeConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  selection.Tokens(),
		CSSVars: selection.CSSVariables(""),
	}
	if stylesheet, ok := selection.Asset(StylesheetAsset); ok {
		cfg.Stylesheet = stylesheet
	}
	return cfg, nil
}
