package mock_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-clientes/pkg/records"
	"github.com/goliatone/go-clientes/pkg/records/mock"
)

func TestMock_CRUDKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	m := mock.New(mock.WithRecords(records.Record{ID: "r1", Fields: records.Fields{Name: "Ana"}}))

	created, err := m.Create(ctx, records.Fields{Name: "Bob", Email: "b@x.com", Phone: "123"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.Update(ctx, "r1", records.Fields{Name: "Ana Maria"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	list, err := m.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var names []string
	for _, rec := range list {
		names = append(names, rec.Fields.Name)
	}
	if diff := cmp.Diff([]string{"Ana Maria", "Bob"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	if err := m.Remove(ctx, created.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := m.Remove(ctx, created.ID); !records.IsStatus(err, http.StatusNotFound) {
		t.Fatalf("expected 404 on second remove, got %v", err)
	}
	if got := m.CallCount(mock.OpRemove); got != 2 {
		t.Fatalf("expected 2 remove calls, got %d", got)
	}
}

func TestMock_FailNext(t *testing.T) {
	boom := errors.New("boom")
	m := mock.New()
	m.FailNext(mock.OpList, boom)

	if _, err := m.List(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected scripted failure, got %v", err)
	}
	if _, err := m.List(context.Background()); err != nil {
		t.Fatalf("second list should succeed: %v", err)
	}
}
