package gotemplate

import (
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"
)

var (
	filtersOnce  sync.Once
	strictPolicy *bluemonday.Policy
)

func registerDefaultFilters() {
	filtersOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
		if !pongo2.FilterExists("trim") {
			_ = pongo2.RegisterFilter("trim", filterTrim)
		}
		if !pongo2.FilterExists("sanitize") {
			_ = pongo2.RegisterFilter("sanitize", filterSanitize)
		}
	})
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterSanitize strips every tag from remote record values and returns
// escaped, template-safe text.
func filterSanitize(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsNil() {
		return pongo2.AsSafeValue(""), nil
	}
	return pongo2.AsSafeValue(SanitizeText(in.String())), nil
}

// SanitizeText applies the strict policy used by the sanitize filter.
func SanitizeText(raw string) string {
	registerDefaultFilters()
	return strings.TrimSpace(strictPolicy.Sanitize(raw))
}
