package testsupport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/goliatone/go-clientes/pkg/config"
	"github.com/goliatone/go-clientes/pkg/contract"
	"github.com/goliatone/go-clientes/pkg/records"
)

// Request is one call received by the fake proxy.
type Request struct {
	Method string
	Path   string
	Body   string
}

type ProxyOption func(*Proxy)

// WithBaseID sets the base id served by the config endpoint.
func WithBaseID(id string) ProxyOption {
	return func(p *Proxy) {
		p.baseID = id
	}
}

// WithRecords seeds the table.
func WithRecords(list ...records.Record) ProxyOption {
	return func(p *Proxy) {
		p.records = append(p.records, list...)
	}
}

// WithRawList makes every list call answer body verbatim.
func WithRawList(body string) ProxyOption {
	return func(p *Proxy) {
		p.rawList = body
	}
}

// Proxy fakes the config endpoint and the record proxy in front of the
// Clientes table. Write payloads are validated against the proxy contract.
type Proxy struct {
	server *httptest.Server

	mu       sync.Mutex
	baseID   string
	records  []records.Record
	rawList  string
	requests []Request
	fail     map[string][]int
	seq      int
}

// NewProxy starts the fake and stops it when the test ends.
func NewProxy(t testing.TB, opts ...ProxyOption) *Proxy {
	t.Helper()
	p := &Proxy{
		baseID: "base123",
		fail:   make(map[string][]int),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	ct, err := contract.Default()
	if err != nil {
		t.Fatalf("load contract: %v", err)
	}

	router := mux.NewRouter()
	router.HandleFunc(config.DefaultConfigPath, p.serveConfig).Methods(http.MethodGet)
	table := config.DefaultProxyRoot + "/{base}/{table}"
	router.HandleFunc(table, p.serveList).Methods(http.MethodGet)
	router.HandleFunc(table, p.serveWrite(ct, "")).Methods(http.MethodPost)
	router.HandleFunc(table+"/{id}", p.serveWrite(ct, http.MethodPatch)).Methods(http.MethodPatch)
	router.HandleFunc(table+"/{id}", p.serveDelete).Methods(http.MethodDelete)

	p.server = httptest.NewServer(p.record(router))
	t.Cleanup(p.server.Close)
	return p
}

// URL is the origin of the fake.
func (p *Proxy) URL() string {
	return p.server.URL
}

// Client returns an HTTP client bound to the fake.
func (p *Proxy) Client() *http.Client {
	return p.server.Client()
}

// Close stops the server early, turning later calls into transport errors.
func (p *Proxy) Close() {
	p.server.Close()
}

// FailNext makes the next request with method (GET, POST, PATCH, DELETE, or
// "CONFIG" for the config endpoint) answer status.
func (p *Proxy) FailNext(method string, status int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fail[method] = append(p.fail[method], status)
}

// Requests returns every request received so far.
func (p *Proxy) Requests() []Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Request(nil), p.requests...)
}

// Records returns the current table contents.
func (p *Proxy) Records() []records.Record {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]records.Record(nil), p.records...)
}

func (p *Proxy) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		p.mu.Lock()
		p.requests = append(p.requests, Request{Method: r.Method, Path: r.URL.EscapedPath(), Body: string(body)})
		p.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (p *Proxy) popFailure(key string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	queue := p.fail[key]
	if len(queue) == 0 {
		return 0
	}
	p.fail[key] = queue[1:]
	return queue[0]
}

func (p *Proxy) serveConfig(w http.ResponseWriter, _ *http.Request) {
	if status := p.popFailure("CONFIG"); status != 0 {
		writeJSON(w, status, map[string]any{"error": http.StatusText(status)})
		return
	}
	p.mu.Lock()
	baseID := p.baseID
	p.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{
		"AIRTABLE_BASE_ID": baseID,
		"AIRTABLE_API_KEY": "ignored",
	})
}

// route checks the base and table and pops scripted failures. It returns
// false when a response was already written.
func (p *Proxy) route(w http.ResponseWriter, r *http.Request) bool {
	vars := mux.Vars(r)
	p.mu.Lock()
	known := vars["base"] == p.baseID && vars["table"] == config.TableName
	p.mu.Unlock()
	if !known {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		return false
	}
	if status := p.popFailure(r.Method); status != 0 {
		writeJSON(w, status, map[string]any{"error": http.StatusText(status)})
		return false
	}
	return true
}

func (p *Proxy) serveList(w http.ResponseWriter, r *http.Request) {
	if !p.route(w, r) {
		return
	}
	p.mu.Lock()
	raw := p.rawList
	list := append([]records.Record{}, p.records...)
	p.mu.Unlock()

	if raw != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, raw)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": list})
}

func (p *Proxy) serveWrite(ct *contract.Contract, method string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !p.route(w, r) {
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
			return
		}
		if err := ct.ValidateWriteRequest(body); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": err.Error()})
			return
		}
		var payload struct {
			Fields records.Fields `json:"fields"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": err.Error()})
			return
		}

		p.mu.Lock()
		defer p.mu.Unlock()
		if method == http.MethodPatch {
			id := mux.Vars(r)["id"]
			for i := range p.records {
				if p.records[i].ID == id {
					p.records[i].Fields = payload.Fields
					writeJSON(w, http.StatusOK, p.records[i])
					return
				}
			}
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
			return
		}
		p.seq++
		rec := records.Record{
			ID:          fmt.Sprintf("recFake%03d", p.seq),
			CreatedTime: "2024-01-01T00:00:00.000Z",
			Fields:      payload.Fields,
		}
		p.records = append(p.records, rec)
		writeJSON(w, http.StatusOK, rec)
	}
}

func (p *Proxy) serveDelete(w http.ResponseWriter, r *http.Request) {
	if !p.route(w, r) {
		return
	}
	id := mux.Vars(r)["id"]
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.records {
		if p.records[i].ID == id {
			p.records = append(p.records[:i], p.records[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]any{"id": id, "deleted": true})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
