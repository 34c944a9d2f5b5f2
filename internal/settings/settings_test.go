package settings

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func TestParse_MergesOverDefaults(t *testing.T) {
	got, err := Parse([]byte(`
origin: http://proxy.local
locale: en
alert:
  delay: 2s
theme:
  variant: dark
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := Default()
	want.Origin = "http://proxy.local"
	want.Locale = "en"
	want.Alert.Delay = 2 * time.Second
	want.Theme.Variant = "dark"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("listen: [")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestFromArgs_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clientes.yaml")
	data := "origin: http://file.local\nlog_level: debug\nlisten: \":9000\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	got, err := FromArgs("test", []string{"-settings", path, "-origin", "http://flag.local", "-alert-fade", "1s"}, io.Discard)
	if err != nil {
		t.Fatalf("from args: %v", err)
	}
	if got.Origin != "http://flag.local" {
		t.Fatalf("expected flag origin, got %q", got.Origin)
	}
	if got.LogLevel != "debug" || got.Listen != ":9000" {
		t.Fatalf("expected file values kept, got %+v", got)
	}
	if got.Alert.Fade != time.Second || got.Alert.Delay != 5*time.Second {
		t.Fatalf("unexpected alert timings %+v", got.Alert)
	}
}

func TestFromArgs_Defaults(t *testing.T) {
	got, err := FromArgs("test", nil, io.Discard)
	if err != nil {
		t.Fatalf("from args: %v", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestFromArgs_Errors(t *testing.T) {
	cases := map[string][]string{
		"missing file":  {"-settings", filepath.Join(t.TempDir(), "missing.yaml")},
		"bad locale":    {"-locale", "fr"},
		"bad log level": {"-log-level", "verbose"},
		"bad alert":     {"-alert-delay", "0s"},
		"empty origin":  {"-origin", " "},
		"unknown flag":  {"-nope"},
	}
	for name, args := range cases {
		if _, err := FromArgs("test", args, io.Discard); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"INFO":  zerolog.InfoLevel,
		"":      zerolog.InfoLevel,
		"Warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
	}
	for input, want := range cases {
		got, err := ParseLevel(input)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", input, got, err, want)
		}
	}
	if _, err := ParseLevel("trace"); err == nil {
		t.Fatalf("expected error for unsupported level")
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf strings.Builder
	s := Default()
	s.LogLevel = "warn"
	logger := s.Logger(&buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected log output %q", out)
	}
}
