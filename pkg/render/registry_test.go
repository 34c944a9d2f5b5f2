package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-clientes/pkg/messages"
	"github.com/goliatone/go-clientes/pkg/render"
)

type stubRenderer struct {
	name string
	page render.Page
}

func (s *stubRenderer) Name() string        { return s.name }
func (s *stubRenderer) ContentType() string { return "text/plain" }
func (s *stubRenderer) Render(_ context.Context, page render.Page, _ render.RenderOptions) ([]byte, error) {
	s.page = page
	return []byte(page.Form.SubmitLabel), nil
}

func TestRegistry_RegisterAndRender(t *testing.T) {
	registry := render.NewRegistry()
	stub := &stubRenderer{name: "stub"}
	registry.MustRegister(stub)
	registry.MustRegister(&stubRenderer{name: "another"})

	if err := registry.Register(&stubRenderer{name: "stub"}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer to fail")
	}

	out, contentType, err := registry.Render(context.Background(), "stub", render.Page{
		Form: render.FormView{SubmitLabel: "Cadastrar Cliente"},
	}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "Cadastrar Cliente" || contentType != "text/plain" {
		t.Fatalf("unexpected output %q (%s)", out, contentType)
	}

	if diff := cmp.Diff([]string{"another", "stub"}, registry.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if _, _, err := registry.Render(context.Background(), "missing", render.Page{}, render.RenderOptions{}); err == nil {
		t.Fatalf("expected missing renderer error")
	}
}

func TestRenderOptions_Labels(t *testing.T) {
	labels := render.RenderOptions{Locale: messages.LocaleEN}.Labels()
	if labels["form_submit_create"] != "Register" || labels["form_submit_update"] != "Update" {
		t.Fatalf("unexpected english labels: %q / %q", labels["form_submit_create"], labels["form_submit_update"])
	}
	labels = render.RenderOptions{}.Labels()
	if labels["card_no_name"] != "Sem nome" {
		t.Fatalf("unexpected default label %q", labels["card_no_name"])
	}
}

func TestBlockedPage(t *testing.T) {
	page := render.BlockedPage(render.RenderOptions{Locale: messages.LocaleEN})
	if !page.Blocked || !page.Alert.Visible || page.Alert.Kind != "error" {
		t.Fatalf("unexpected blocked page %+v", page)
	}
	if page.Alert.Message != "Could not load configuration. Check the environment variables." {
		t.Fatalf("unexpected message %q", page.Alert.Message)
	}
}
