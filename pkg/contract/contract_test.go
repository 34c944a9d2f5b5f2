package contract_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-clientes/pkg/contract"
	"github.com/goliatone/go-clientes/pkg/records"
)

func mustDefault(t *testing.T) *contract.Contract {
	t.Helper()
	c, err := contract.Default()
	if err != nil {
		t.Fatalf("load contract: %v", err)
	}
	return c
}

func TestDefault_Routes(t *testing.T) {
	got := mustDefault(t).Routes()
	want := []contract.Route{
		{OperationID: "createRecord", Method: "POST", Path: "/api/airtable/{baseId}/{table}"},
		{OperationID: "deleteRecord", Method: "DELETE", Path: "/api/airtable/{baseId}/{table}/{recordId}"},
		{OperationID: "getConfig", Method: "GET", Path: "/api/config"},
		{OperationID: "listRecords", Method: "GET", Path: "/api/airtable/{baseId}/{table}"},
		{OperationID: "updateRecord", Method: "PATCH", Path: "/api/airtable/{baseId}/{table}/{recordId}"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("routes mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateFields(t *testing.T) {
	c := mustDefault(t)

	if err := c.ValidateFields(records.Fields{Name: "Bob", Email: "b@x.com", Phone: "123"}); err != nil {
		t.Fatalf("expected valid fields, got %v", err)
	}

	err := c.ValidateFields(records.Fields{Name: "Bob", Email: "", Phone: "123"})
	if !errors.Is(err, contract.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}

	long := records.Fields{Name: strings.Repeat("A", 256), Email: "b@x.com", Phone: strings.Repeat("9", 65)}
	if err := c.ValidateFields(long); err != nil {
		t.Fatalf("long values are not a contract violation, got %v", err)
	}
}

func TestValidateWriteRequest(t *testing.T) {
	c := mustDefault(t)

	if err := c.ValidateWriteRequest([]byte(`{"fields":{"Nome":"Bob","Email":"b@x.com","Telefone":"123"}}`)); err != nil {
		t.Fatalf("expected valid body, got %v", err)
	}
	for _, body := range []string{`{}`, `{"fields":{"Nome":"Bob"}}`, `not json`} {
		if err := c.ValidateWriteRequest([]byte(body)); !errors.Is(err, contract.ErrInvalidPayload) {
			t.Errorf("body %q: expected ErrInvalidPayload, got %v", body, err)
		}
	}
}

func TestValidateRecordList(t *testing.T) {
	c := mustDefault(t)
	if err := c.ValidateRecordList([]byte(`{"records":[{"id":"r1","fields":{"Nome":"Ana"}}]}`)); err != nil {
		t.Fatalf("expected valid list, got %v", err)
	}
	if err := c.ValidateRecordList([]byte(`{"records":[{"fields":{}}]}`)); !errors.Is(err, contract.ErrInvalidPayload) {
		t.Fatalf("expected missing id violation, got %v", err)
	}
}

func TestLoad_RejectsEmptyDocument(t *testing.T) {
	if _, err := contract.Load(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if len(contract.Document()) == 0 {
		t.Fatalf("expected embedded document")
	}
}
