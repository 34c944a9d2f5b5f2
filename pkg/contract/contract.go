// Package contract embeds the OpenAPI description of the proxy and validates
// record payloads against it before they leave the process.
package contract

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-clientes/pkg/records"
)

//go:embed openapi.yaml
var embeddedDocument []byte

// Schema names used by the validators.
const (
	SchemaFields       = "Fields"
	SchemaWriteRequest = "WriteRequest"
	SchemaRecordList   = "RecordList"
)

// ErrInvalidPayload wraps every schema violation.
var ErrInvalidPayload = errors.New("contract: invalid payload")

// Route is one proxy operation.
type Route struct {
	OperationID string
	Method      string
	Path        string
}

// Contract is a loaded and validated proxy document.
type Contract struct {
	doc *openapi3.T
}

var (
	defaultOnce     sync.Once
	defaultContract *Contract
	defaultErr      error
)

// Default returns the embedded contract, loading it once.
func Default() (*Contract, error) {
	defaultOnce.Do(func() {
		defaultContract, defaultErr = Load(context.Background(), embeddedDocument)
	})
	return defaultContract, defaultErr
}

// Document returns the raw embedded document.
func Document() []byte {
	out := make([]byte, len(embeddedDocument))
	copy(out, embeddedDocument)
	return out
}

// Load parses and validates an OpenAPI document.
func Load(ctx context.Context, data []byte) (*Contract, error) {
	if len(data) == 0 {
		return nil, errors.New("contract: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("contract: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("contract: validate document: %w", err)
	}
	return &Contract{doc: doc}, nil
}

// Routes lists the proxy operations sorted by operation id.
func (c *Contract) Routes() []Route {
	if c == nil || c.doc == nil || c.doc.Paths == nil {
		return nil
	}
	var out []Route
	for path, item := range c.doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil {
				continue
			}
			out = append(out, Route{OperationID: op.OperationID, Method: strings.ToUpper(method), Path: path})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OperationID < out[j].OperationID })
	return out
}

// ValidateFields checks the editable columns before a create or update.
func (c *Contract) ValidateFields(fields records.Fields) error {
	return c.validateValue(SchemaFields, fields)
}

// ValidateWriteRequest checks a raw create/update body.
func (c *Contract) ValidateWriteRequest(body []byte) error {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return c.visit(SchemaWriteRequest, payload)
}

// ValidateRecordList checks a raw list body.
func (c *Contract) ValidateRecordList(body []byte) error {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return c.visit(SchemaRecordList, payload)
}

func (c *Contract) validateValue(schema string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("contract: encode %s: %w", schema, err)
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("contract: decode %s: %w", schema, err)
	}
	return c.visit(schema, payload)
}

func (c *Contract) visit(name string, payload any) error {
	schema, err := c.schema(name)
	if err != nil {
		return err
	}
	if err := schema.VisitJSON(payload); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPayload, name, err)
	}
	return nil
}

func (c *Contract) schema(name string) (*openapi3.Schema, error) {
	if c == nil || c.doc == nil {
		return nil, errors.New("contract: document not loaded")
	}
	ref, ok := c.doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("contract: schema %q not found", name)
	}
	return ref.Value, nil
}
