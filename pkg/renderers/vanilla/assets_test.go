package vanilla

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-clientes/pkg/render"
)

func TestAssetsFSStylesheetDeclaresThemeTokens(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	css := string(data)
	for key := range render.DefaultThemeManifest().Tokens {
		if !strings.Contains(css, "--"+key+":") {
			t.Fatalf("stylesheet does not declare token %q", key)
		}
	}
}
