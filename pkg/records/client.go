package records

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-clientes/pkg/config"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client. The default client has no
// timeout; requests are bounded only by the caller's context.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithLogger sets the logger for request failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// Client issues record operations against a derived endpoint.
type Client struct {
	endpoint   config.Endpoint
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a Client for endpoint.
func NewClient(endpoint config.Endpoint, opts ...Option) (*Client, error) {
	if !endpoint.Valid() {
		return nil, ErrNotConfigured
	}

	c := &Client{
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// Endpoint returns the endpoint the client was built for.
func (c *Client) Endpoint() config.Endpoint {
	return c.endpoint
}

// List fetches every record of the table. A body without "records" yields an
// empty, non-nil slice.
func (c *Client) List(ctx context.Context) ([]Record, error) {
	var payload listResponse
	if err := c.do(ctx, http.MethodGet, c.endpoint.URL(), nil, &payload); err != nil {
		return nil, err
	}
	if payload.Offset != "" {
		c.logger.Debug().Str("offset", payload.Offset).Msg("proxy reported more pages; only the first is used")
	}
	if payload.Records == nil {
		return []Record{}, nil
	}
	return payload.Records, nil
}

// Create inserts a record.
func (c *Client) Create(ctx context.Context, fields Fields) (Record, error) {
	var out Record
	if err := c.do(ctx, http.MethodPost, c.endpoint.URL(), writeRequest{Fields: fields}, &out); err != nil {
		return Record{}, err
	}
	return out, nil
}

// Update patches the record identified by id.
func (c *Client) Update(ctx context.Context, id string, fields Fields) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, ErrMissingID
	}
	var out Record
	if err := c.do(ctx, http.MethodPatch, c.endpoint.RecordURL(id), writeRequest{Fields: fields}, &out); err != nil {
		return Record{}, err
	}
	return out, nil
}

// Remove deletes the record identified by id.
func (c *Client) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrMissingID
	}
	return c.do(ctx, http.MethodDelete, c.endpoint.RecordURL(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, target string, body any, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("records: encode body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("records: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			return ctxErr
		}
		transportErr := &TransportError{
			Method: method,
			URL:    target,
			BaseID: c.endpoint.BaseID,
			Table:  c.endpoint.Table,
			Err:    err,
		}
		c.logger.Error().Err(err).Str("method", method).Str("url", target).Msg("proxy unreachable")
		return transportErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		statusErr := &StatusError{
			Method:     method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Body:       data,
		}
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("url", target).
			Bytes("body", data).
			Msg("proxy answered with an error")
		return statusErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("records: read response: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("records: decode response: %w", err)
	}
	return nil
}
