package text

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-clientes/pkg/listing"
	"github.com/goliatone/go-clientes/pkg/records"
	"github.com/goliatone/go-clientes/pkg/render"
	"github.com/goliatone/go-clientes/pkg/testsupport"
)

func renderText(t *testing.T, r *Renderer, page render.Page) string {
	t.Helper()
	out, err := r.Render(context.Background(), page, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderer_Cards(t *testing.T) {
	page := render.Page{
		Form: render.FormView{Mode: render.ModeCreate},
		List: listing.Project([]records.Record{
			{ID: "rec1", Fields: records.Fields{Name: "Ana"}},
			{ID: "rec2", Fields: records.Fields{Email: "b@x.com", Phone: "555"}},
		}),
	}
	got := renderText(t, New(), page)

	golden := filepath.Join("testdata", "cards.golden")
	if testsupport.WriteMaybeGolden(t, golden, []byte(got)) {
		return
	}
	want := testsupport.MustReadGoldenString(t, golden)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_EmptyState(t *testing.T) {
	got := renderText(t, New(), render.Page{List: listing.Project(nil)})
	if !strings.Contains(got, "Nenhum cliente cadastrado") {
		t.Fatalf("expected empty state, got:\n%s", got)
	}
	if strings.Contains(got, "id:") {
		t.Fatalf("empty state must not render cards:\n%s", got)
	}
}

func TestRenderer_TransportDiagnostics(t *testing.T) {
	page := render.Page{ListError: &render.ListErrorView{
		Message:   "dial tcp: connection refused",
		Transport: true,
		ProxyURL:  "http://localhost:8080/api/airtable/base123/Clientes",
		BaseID:    "base123",
		Table:     "Clientes",
	}}
	got := renderText(t, New(), page)
	for _, fragment := range []string{
		"Erro ao carregar clientes: dial tcp: connection refused",
		"Diagnóstico:",
		"URL do Proxy: http://localhost:8080/api/airtable/base123/Clientes",
		"Base ID: base123",
		"Tabela: Clientes",
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected %q in:\n%s", fragment, got)
		}
	}
}

func TestRenderer_BlockedShowsOnlyAlert(t *testing.T) {
	page := render.Page{
		Blocked: true,
		Alert:   render.AlertView{Message: "Erro ao carregar configurações.", Kind: "error", Visible: true},
	}
	got := renderText(t, New(), page)
	want := "Cadastro de Clientes\n! Erro ao carregar configurações.\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_StripsControlCharacters(t *testing.T) {
	page := render.Page{List: listing.Project([]records.Record{
		{ID: "rec1", Fields: records.Fields{Name: "Ana\x1b[2J"}},
	})}
	got := renderText(t, New(), page)
	if strings.Contains(got, "\x1b") {
		t.Fatalf("escape sequence leaked: %q", got)
	}
}

func TestRenderer_ColorWrapsHeadings(t *testing.T) {
	got := renderText(t, New(WithColor(true)), render.Page{List: listing.Project(nil)})
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI sequences, got %q", got)
	}
}
