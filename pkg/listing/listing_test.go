package listing_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-clientes/pkg/listing"
	"github.com/goliatone/go-clientes/pkg/messages"
	"github.com/goliatone/go-clientes/pkg/records"
)

func TestProject_EmptyCollection(t *testing.T) {
	for _, collection := range [][]records.Record{nil, {}} {
		view := listing.Project(collection)
		if !view.Empty {
			t.Fatalf("expected empty view")
		}
		if len(view.Cards) != 0 {
			t.Fatalf("empty view must not carry cards, got %d", len(view.Cards))
		}
		if view.EmptyTitle != "Nenhum cliente cadastrado" {
			t.Fatalf("unexpected empty title %q", view.EmptyTitle)
		}
		if view.EmptyHint == "" {
			t.Fatalf("expected guidance text")
		}
	}
}

func TestProject_PlaceholdersAndOrder(t *testing.T) {
	collection := []records.Record{
		{ID: "r1", Fields: records.Fields{Name: "Ana"}},
		{ID: "r2", Fields: records.Fields{Email: "x@y.z", Phone: "  "}},
		{ID: "r3", Fields: records.Fields{Name: "Caio", Email: "c@x.com", Phone: "99"}},
		{ID: "r4", Fields: records.Fields{Name: "Duda", Email: "d@x.com", Phone: "98"}},
	}

	view := listing.Project(collection)
	want := listing.View{
		Cards: []listing.Card{
			{ID: "r1", Index: 0, Name: "Ana", Email: "Não informado", Phone: "Não informado", MissingEmail: true, MissingPhone: true, Delay: "0s"},
			{ID: "r2", Index: 1, Name: "Sem nome", Email: "x@y.z", Phone: "Não informado", MissingName: true, MissingPhone: true, Delay: "0.1s"},
			{ID: "r3", Index: 2, Name: "Caio", Email: "c@x.com", Phone: "99", Delay: "0.2s"},
			{ID: "r4", Index: 3, Name: "Duda", Email: "d@x.com", Phone: "98", Delay: "0.3s"},
		},
	}
	if diff := cmp.Diff(want, view); diff != "" {
		t.Fatalf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestProject_LocaleAndStagger(t *testing.T) {
	view := listing.Project(
		[]records.Record{{ID: "r1"}, {ID: "r2"}},
		listing.WithLocale(messages.LocaleEN),
		listing.WithStagger(250*time.Millisecond),
	)
	if view.Cards[0].Name != "No name" || view.Cards[0].Email != "Not informed" {
		t.Fatalf("expected english placeholders, got %+v", view.Cards[0])
	}
	if view.Cards[1].Delay != "0.25s" {
		t.Fatalf("unexpected delay %q", view.Cards[1].Delay)
	}
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	collection := []records.Record{{ID: "r1"}}
	_ = listing.Project(collection)
	if collection[0].Fields.Name != "" {
		t.Fatalf("projection must not write placeholders back into the collection")
	}
}
