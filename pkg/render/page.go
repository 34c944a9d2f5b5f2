package render

import (
	"github.com/goliatone/go-clientes/pkg/listing"
	"github.com/goliatone/go-clientes/pkg/messages"
)

// Form modes.
const (
	ModeCreate = "create"
	ModeEdit   = "edit"
)

// FormView is the state of the create/edit form.
type FormView struct {
	Mode        string `json:"mode"`
	EditingID   string `json:"editing_id,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	SubmitLabel string `json:"submit_label"`
	Disabled    bool   `json:"disabled"`
}

// Editing reports whether the form targets an existing record.
func (f FormView) Editing() bool {
	return f.Mode == ModeEdit
}

// ListErrorView is the inline panel shown when the list could not be loaded.
// Transport failures carry the diagnostic settings and everything offers a
// retry action.
type ListErrorView struct {
	Message   string `json:"message"`
	Transport bool   `json:"transport"`
	ProxyURL  string `json:"proxy_url,omitempty"`
	BaseID    string `json:"base_id,omitempty"`
	Table     string `json:"table,omitempty"`
}

// AlertView is the banner state.
type AlertView struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
	Visible bool   `json:"visible"`
	Hiding  bool   `json:"hiding"`
}

// Page is everything a renderer needs to draw one screen.
type Page struct {
	Form          FormView       `json:"form"`
	List          listing.View   `json:"list"`
	ListError     *ListErrorView `json:"list_error,omitempty"`
	Loading       bool           `json:"loading"`
	LoadingDetail string         `json:"loading_detail,omitempty"`
	Alert         AlertView      `json:"alert"`
	// Blocked is set when the configuration could not be loaded; the page then
	// only shows the alert.
	Blocked bool `json:"blocked"`
}

// BlockedPage is shown when the configuration could not be loaded: a
// persistent error alert and nothing else.
func BlockedPage(options RenderOptions) Page {
	return Page{
		Blocked: true,
		Alert: AlertView{
			Message: messages.T(options.ResolvedTranslator(), options.ResolvedLocale(), messages.KeyAlertConfigFailed),
			Kind:    "error",
			Visible: true,
		},
	}
}
