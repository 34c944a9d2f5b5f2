// Package messages holds every user facing string shown by the front ends.
// The pt-BR catalog is the default; en exists for operators that prefer it.
package messages

import (
	"errors"
	"fmt"
	"strings"
)

// Supported locales.
const (
	LocalePTBR    = "pt-BR"
	LocaleEN      = "en"
	DefaultLocale = LocalePTBR
)

// Message keys.
const (
	KeyPageTitle    = "page.title"
	KeyPageSubtitle = "page.subtitle"

	KeyFormName        = "form.name"
	KeyFormEmail       = "form.email"
	KeyFormPhone       = "form.phone"
	KeyFormNameHint    = "form.name.placeholder"
	KeyFormEmailHint   = "form.email.placeholder"
	KeyFormPhoneHint   = "form.phone.placeholder"
	KeyFormCancel      = "form.cancel"
	KeySubmitCreate    = "form.submit.create"
	KeySubmitUpdate    = "form.submit.update"
	KeyListTitle       = "list.title"
	KeyListEmptyTitle  = "list.empty.title"
	KeyListEmptyHint   = "list.empty.hint"
	KeyListLoading     = "list.loading"
	KeyListLoadingVia  = "list.loading.via"
	KeyListErrorTitle  = "list.error.title"
	KeyListRetry       = "list.retry"
	KeyDiagTitle       = "list.diagnostic.title"
	KeyDiagConnection  = "list.diagnostic.connection"
	KeyDiagServer      = "list.diagnostic.server"
	KeyDiagEnvironment = "list.diagnostic.environment"
	KeyDiagSettings    = "list.diagnostic.settings"
	KeyDiagProxyURL    = "list.diagnostic.proxy_url"
	KeyDiagBaseID      = "list.diagnostic.base_id"
	KeyDiagTable       = "list.diagnostic.table"

	KeyCardNoName      = "card.no_name"
	KeyCardNotInformed = "card.not_informed"
	KeyCardEdit        = "card.edit"
	KeyCardDelete      = "card.delete"
	KeyDeleteConfirm   = "card.delete.confirm"

	KeyAlertValidation   = "alert.validation"
	KeyAlertCreated      = "alert.created"
	KeyAlertUpdated      = "alert.updated"
	KeyAlertDeleted      = "alert.deleted"
	KeyAlertSaveFailed   = "alert.save_failed"
	KeyAlertDeleteFailed = "alert.delete_failed"
	KeyAlertConfigFailed = "alert.config_failed"
	KeyAlertDismiss      = "alert.dismiss"

	KeyStatusError         = "status.error"
	KeyStatusUnauthorized  = "status.unauthorized"
	KeyStatusForbidden     = "status.forbidden"
	KeyStatusNotFound      = "status.not_found"
	KeyStatusUnprocessable = "status.unprocessable"
	KeyStatusUnknown       = "status.unknown"

	KeyMenuPrompt = "menu.prompt"
	KeyMenuCreate = "menu.create"
	KeyMenuEdit   = "menu.edit"
	KeyMenuDelete = "menu.delete"
	KeyMenuReload = "menu.reload"
	KeyMenuQuit   = "menu.quit"
	KeyMenuPick   = "menu.pick"
)

// ErrMissingTranslation is returned when neither the locale nor its base
// language carry the requested key.
var ErrMissingTranslation = errors.New("messages: missing translation")

// Translator resolves a message key for a locale. args are applied with
// fmt.Sprintf when present.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// Catalog maps locale -> key -> message.
type Catalog map[string]map[string]string

// Translate implements Translator. Lookups fall back from a regional locale
// ("en-US") to its base language ("en").
func (c Catalog) Translate(locale, key string, args ...any) (string, error) {
	for _, candidate := range localeCandidates(locale) {
		entries, ok := c[candidate]
		if !ok {
			continue
		}
		msg, ok := entries[key]
		if !ok {
			continue
		}
		if len(args) > 0 {
			return fmt.Sprintf(msg, args...), nil
		}
		return msg, nil
	}
	return "", fmt.Errorf("%w: %s/%s", ErrMissingTranslation, locale, key)
}

// T translates key using t, falling back to the default catalog and finally
// to the key itself so callers always get something printable.
func T(t Translator, locale, key string, args ...any) string {
	if t != nil {
		if msg, err := t.Translate(locale, key, args...); err == nil && msg != "" {
			return msg
		}
	}
	if msg, err := defaultCatalog.Translate(DefaultLocale, key, args...); err == nil {
		return msg
	}
	return key
}

// Default returns the built-in catalog.
func Default() Catalog {
	return defaultCatalog
}

// Supported reports whether locale (or its base language) has a catalog.
func Supported(locale string) bool {
	for _, candidate := range localeCandidates(locale) {
		if _, ok := defaultCatalog[candidate]; ok {
			return true
		}
	}
	return false
}

func localeCandidates(locale string) []string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return []string{DefaultLocale}
	}
	out := []string{locale}
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		out = append(out, locale[:idx])
	}
	return out
}
