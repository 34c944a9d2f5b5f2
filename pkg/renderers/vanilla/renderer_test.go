package vanilla

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-clientes/pkg/listing"
	"github.com/goliatone/go-clientes/pkg/messages"
	"github.com/goliatone/go-clientes/pkg/records"
	"github.com/goliatone/go-clientes/pkg/render"
)

func newRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func renderPage(t *testing.T, page render.Page, opts render.RenderOptions) string {
	t.Helper()
	out, err := newRenderer(t).Render(context.Background(), page, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func createForm() render.FormView {
	return render.FormView{Mode: render.ModeCreate, SubmitLabel: "Cadastrar Cliente"}
}

func assertContains(t *testing.T, html string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, html)
		}
	}
}

func assertNotContains(t *testing.T, html string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if strings.Contains(html, fragment) {
			t.Fatalf("expected output not to contain %q\n%s", fragment, html)
		}
	}
}

func TestRenderer_Metadata(t *testing.T) {
	r := newRenderer(t)
	if r.Name() != "vanilla" {
		t.Fatalf("unexpected name %q", r.Name())
	}
	if r.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
}

func TestRenderer_EmptyStateNeverRendersCards(t *testing.T) {
	page := render.Page{
		Form: createForm(),
		List: listing.Project(nil),
	}
	html := renderPage(t, page, render.RenderOptions{})

	assertContains(t, html,
		`class="empty-state"`,
		"Nenhum cliente cadastrado",
		"Adicione seu primeiro cliente usando o formulário acima.",
	)
	assertNotContains(t, html, `class="client-card"`)
}

func TestRenderer_CardsWithPlaceholders(t *testing.T) {
	collection := []records.Record{
		{ID: "rec1", Fields: records.Fields{Name: "Ana"}},
		{ID: "rec2", Fields: records.Fields{Email: "b@x.com", Phone: "555"}},
	}
	page := render.Page{
		Form: createForm(),
		List: listing.Project(collection),
	}
	html := renderPage(t, page, render.RenderOptions{})

	if got := strings.Count(html, `class="client-card"`); got != 2 {
		t.Fatalf("expected 2 cards, got %d", got)
	}
	assertContains(t, html,
		`data-id="rec1"`,
		">Ana</h3>",
		"Não informado",
		"Sem nome",
		"b@x.com",
		`action="/clientes/rec1/editar"`,
		`action="/clientes/rec2/excluir"`,
		"animation-delay: 0s",
		"animation-delay: 0.1s",
		"return confirm(",
	)
	assertNotContains(t, html, `class="empty-state"`)
}

func TestRenderer_EscapesRecordValues(t *testing.T) {
	collection := []records.Record{
		{ID: "rec1", Fields: records.Fields{Name: `<img src=x onerror=alert(1)>Eve`}},
	}
	html := renderPage(t, render.Page{Form: createForm(), List: listing.Project(collection)}, render.RenderOptions{})

	assertContains(t, html, "&lt;img src=x onerror=alert(1)&gt;Eve</h3>")
	assertNotContains(t, html, "<img")
}

func TestRenderer_ValuesThatLookLikeMarkupStayVisible(t *testing.T) {
	collection := []records.Record{
		{ID: "rec1", Fields: records.Fields{Name: "<Ana>", Email: "Ana <ana@x.com>", Phone: "555"}},
	}
	html := renderPage(t, render.Page{Form: createForm(), List: listing.Project(collection)}, render.RenderOptions{})

	assertContains(t, html,
		`<h3 class="client-name">&lt;Ana&gt;</h3>`,
		`<p class="client-email">Ana &lt;ana@x.com&gt;</p>`,
	)
	assertNotContains(t, html, "Sem nome", "Não informado")
}

func TestRenderer_EditModeShowsCancelAndValues(t *testing.T) {
	page := render.Page{
		Form: render.FormView{
			Mode:        render.ModeEdit,
			EditingID:   "rec1",
			Name:        "Ana",
			Email:       "a@x.com",
			SubmitLabel: "Atualizar Cliente",
		},
		List: listing.Project([]records.Record{{ID: "rec1", Fields: records.Fields{Name: "Ana"}}}),
	}
	html := renderPage(t, page, render.RenderOptions{})

	assertContains(t, html,
		`data-mode="edit"`,
		`value="Ana"`,
		`value="a@x.com"`,
		`value=""`,
		`placeholder="Digite o telefone"`,
		"Atualizar Cliente",
		`action="/cancelar"`,
	)
}

func TestRenderer_CreateModeHidesCancel(t *testing.T) {
	html := renderPage(t, render.Page{Form: createForm(), List: listing.Project(nil)}, render.RenderOptions{})
	assertContains(t, html, "Cadastrar Cliente", `data-mode="create"`)
	assertNotContains(t, html, `action="/cancelar"`)
}

func TestRenderer_TransportErrorPanel(t *testing.T) {
	page := render.Page{
		Form: createForm(),
		ListError: &render.ListErrorView{
			Message:   "connection refused",
			Transport: true,
			ProxyURL:  "/api/airtable/base123/Clientes",
			BaseID:    "base123",
			Table:     "Clientes",
		},
	}
	html := renderPage(t, page, render.RenderOptions{})

	assertContains(t, html,
		"Erro ao carregar clientes:",
		"connection refused",
		"Diagnóstico:",
		"<code>/api/airtable/base123/Clientes</code>",
		"<code>base123</code>",
		"<code>Clientes</code>",
		`action="/recarregar"`,
	)
	assertNotContains(t, html, `class="empty-state"`)
}

func TestRenderer_StatusErrorPanelHasNoDiagnostics(t *testing.T) {
	page := render.Page{
		Form:      createForm(),
		ListError: &render.ListErrorView{Message: "Status 404: Base ou tabela não encontrada"},
	}
	html := renderPage(t, page, render.RenderOptions{})

	assertContains(t, html, "Status 404: Base ou tabela não encontrada", `action="/recarregar"`)
	assertNotContains(t, html, `class="diagnostic"`)
}

func TestRenderer_LoadingState(t *testing.T) {
	page := render.Page{
		Form:          createForm(),
		Loading:       true,
		LoadingDetail: "Conectando via proxy local: /api/airtable/base123/Clientes",
	}
	html := renderPage(t, page, render.RenderOptions{})
	assertContains(t, html, "Carregando clientes...", "Conectando via proxy local")
}

func TestRenderer_AlertBanner(t *testing.T) {
	page := render.Page{
		Form:  createForm(),
		List:  listing.Project(nil),
		Alert: render.AlertView{Message: "Cliente cadastrado com sucesso!", Kind: "success", Visible: true},
	}
	html := renderPage(t, page, render.RenderOptions{})
	assertContains(t, html, `class="alert alert-success"`, "Cliente cadastrado com sucesso!", `action="/alerta/fechar"`)

	page.Alert = render.AlertView{}
	html = renderPage(t, page, render.RenderOptions{})
	assertNotContains(t, html, `role="alert"`)
}

func TestRenderer_BlockedPageOnlyShowsAlert(t *testing.T) {
	page := render.Page{
		Blocked: true,
		Alert: render.AlertView{
			Message: messages.T(nil, messages.DefaultLocale, messages.KeyAlertConfigFailed),
			Kind:    "error",
			Visible: true,
		},
	}
	html := renderPage(t, page, render.RenderOptions{})
	assertContains(t, html, "Erro ao carregar configurações")
	assertNotContains(t, html, `class="client-form"`, `id="clientsList"`)
}

func TestRenderer_EnglishLocaleAndTheme(t *testing.T) {
	themeCfg, err := render.ResolveTheme(render.DefaultThemeManifest(), "dark")
	if err != nil {
		t.Fatalf("resolve theme: %v", err)
	}
	page := render.Page{
		Form: render.FormView{Mode: render.ModeCreate, SubmitLabel: "Register"},
		List: listing.Project(nil, listing.WithLocale(messages.LocaleEN)),
	}
	html := renderPage(t, page, render.RenderOptions{Locale: messages.LocaleEN, Theme: themeCfg})

	assertContains(t, html,
		`<html lang="en">`,
		"No customers yet",
		"Register",
		`data-theme-variant="dark"`,
		"--surface: #1f2937;",
		`href="/assets/clientes.css"`,
	)
}

func TestRenderer_PartialIncludesResolveFromIncludingFile(t *testing.T) {
	files := fstest.MapFS{
		"templates/page.tmpl":          {Data: []byte(`[{% include "partials/list.tmpl" %}]`)},
		"templates/partials/list.tmpl": {Data: []byte(`{% for card in page.list.cards %}{% include "card.tmpl" %}{% endfor %}`)},
		"templates/partials/card.tmpl": {Data: []byte(`({{ card.name }})`)},
	}
	collection := []records.Record{{ID: "rec1", Fields: records.Fields{Name: "Ana"}}}
	r := newRenderer(t, WithTemplatesFS(files))
	out, err := r.Render(context.Background(), render.Page{Form: createForm(), List: listing.Project(collection)}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "[(Ana)]" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderer_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"templates/page.tmpl": {Data: []byte(`{{ page.form.submit_label }}|{{ labels.list_title }}`)},
	}
	r := newRenderer(t, WithTemplatesFS(files))
	out, err := r.Render(context.Background(), render.Page{Form: createForm()}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "Cadastrar Cliente|Clientes Cadastrados" {
		t.Fatalf("unexpected output %q", out)
	}
}
