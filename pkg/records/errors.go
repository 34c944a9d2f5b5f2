package records

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotConfigured is returned by NewClient for an endpoint without a base
	// id or table.
	ErrNotConfigured = errors.New("records: endpoint is not configured")
	// ErrMissingID is returned by Update and Remove for an empty record id.
	ErrMissingID = errors.New("records: record id is required")
)

// Category groups proxy statuses by what the user can do about them.
type Category string

const (
	CategoryUnauthorized  Category = "unauthorized"
	CategoryForbidden     Category = "forbidden"
	CategoryNotFound      Category = "not_found"
	CategoryUnprocessable Category = "unprocessable"
	CategoryUnknown       Category = "unknown"
)

// Status categories shown to users in the default locale.
const (
	MessageUnauthorized  = "Chave de API inválida ou expirada"
	MessageForbidden     = "Acesso negado - verifique as permissões da API"
	MessageNotFound      = "Base ou tabela não encontrada"
	MessageUnprocessable = "Parâmetros da requisição inválidos"
	MessageUnknown       = "Erro desconhecido"
)

var categoryMessages = map[Category]string{
	CategoryUnauthorized:  MessageUnauthorized,
	CategoryForbidden:     MessageForbidden,
	CategoryNotFound:      MessageNotFound,
	CategoryUnprocessable: MessageUnprocessable,
	CategoryUnknown:       MessageUnknown,
}

// Categorize maps an HTTP status to its Category.
func Categorize(status int) Category {
	switch status {
	case http.StatusUnauthorized:
		return CategoryUnauthorized
	case http.StatusForbidden:
		return CategoryForbidden
	case http.StatusNotFound:
		return CategoryNotFound
	case http.StatusUnprocessableEntity:
		return CategoryUnprocessable
	default:
		return CategoryUnknown
	}
}

// Classify maps an HTTP status to its user facing category message.
func Classify(status int) string {
	return categoryMessages[Categorize(status)]
}

// StatusError represents a non-2xx answer from the proxy.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

// Category is the Category of StatusCode.
func (e *StatusError) Category() Category {
	if e == nil {
		return CategoryUnknown
	}
	return Categorize(e.StatusCode)
}

// Message is the category message for StatusCode.
func (e *StatusError) Message() string {
	if e == nil {
		return ""
	}
	return Classify(e.StatusCode)
}

func (e *StatusError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Status %d: %s", e.StatusCode, e.Message())
}

// TransportError wraps a failure to reach the proxy at all.
type TransportError struct {
	Method string
	URL    string
	BaseID string
	Table  string
	Err    error
}

func (e *TransportError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("records: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsStatus reports whether err carries a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}
