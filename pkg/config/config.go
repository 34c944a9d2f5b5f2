// Package config loads the runtime configuration served by the proxy host and
// derives the record endpoint every gateway call goes through.
package config

import (
	"net/url"
	"strings"
)

const (
	// TableName is the fixed table every record operation targets.
	TableName = "Clientes"
	// DefaultConfigPath is the startup configuration endpoint.
	DefaultConfigPath = "/api/config"
	// DefaultProxyRoot prefixes every record path.
	DefaultProxyRoot = "/api/airtable"
)

// Config is the payload served by the configuration endpoint. Unknown keys
// (the proxy host may also expose its credentials) are ignored.
type Config struct {
	BaseID string `json:"AIRTABLE_BASE_ID"`
}

// Endpoint is the derived, immutable location of the record table.
type Endpoint struct {
	Origin    *url.URL
	ProxyRoot string
	BaseID    string
	Table     string
}

// NewEndpoint derives the record endpoint for cfg.
func NewEndpoint(origin *url.URL, proxyRoot string, cfg Config) Endpoint {
	root := strings.TrimRight(strings.TrimSpace(proxyRoot), "/")
	if root == "" {
		root = DefaultProxyRoot
	}
	if !strings.HasPrefix(root, "/") {
		root = "/" + root
	}
	return Endpoint{
		Origin:    origin,
		ProxyRoot: root,
		BaseID:    strings.TrimSpace(cfg.BaseID),
		Table:     TableName,
	}
}

// Path returns "{proxyRoot}/{baseID}/{table}".
func (e Endpoint) Path() string {
	return e.ProxyRoot + "/" + url.PathEscape(e.BaseID) + "/" + url.PathEscape(e.Table)
}

// RecordPath returns the path addressing a single record.
func (e Endpoint) RecordPath(id string) string {
	return e.Path() + "/" + url.PathEscape(id)
}

// URL resolves Path against the origin. Without an origin the bare path is
// returned, which is what a same-origin caller needs.
func (e Endpoint) URL() string {
	return e.resolve(e.Path())
}

// RecordURL resolves RecordPath against the origin.
func (e Endpoint) RecordURL(id string) string {
	return e.resolve(e.RecordPath(id))
}

// Valid reports whether the endpoint can address records.
func (e Endpoint) Valid() bool {
	return e.BaseID != "" && e.Table != "" && e.ProxyRoot != ""
}

func (e Endpoint) resolve(path string) string {
	if e.Origin == nil {
		return path
	}
	ref, err := url.Parse(path)
	if err != nil {
		return strings.TrimRight(e.Origin.String(), "/") + path
	}
	return e.Origin.ResolveReference(ref).String()
}
