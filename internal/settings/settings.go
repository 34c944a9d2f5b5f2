// Package settings loads the runtime settings shared by the commands: a YAML
// file with defaults, then command line flags on top.
package settings

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-clientes/pkg/alert"
	"github.com/goliatone/go-clientes/pkg/config"
	"github.com/goliatone/go-clientes/pkg/messages"
)

// Defaults.
const (
	DefaultListen   = ":8080"
	DefaultOrigin   = "http://localhost:3000"
	DefaultLogLevel = "info"
)

type AlertSettings struct {
	Delay time.Duration `yaml:"delay"`
	Fade  time.Duration `yaml:"fade"`
}

type ThemeSettings struct {
	Variant string `yaml:"variant"`
}

// Settings is the full runtime configuration.
type Settings struct {
	Listen     string        `yaml:"listen"`
	Origin     string        `yaml:"origin"`
	ConfigPath string        `yaml:"config_path"`
	ProxyRoot  string        `yaml:"proxy_root"`
	Locale     string        `yaml:"locale"`
	LogLevel   string        `yaml:"log_level"`
	Alert      AlertSettings `yaml:"alert"`
	Theme      ThemeSettings `yaml:"theme"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Listen:     DefaultListen,
		Origin:     DefaultOrigin,
		ConfigPath: config.DefaultConfigPath,
		ProxyRoot:  config.DefaultProxyRoot,
		Locale:     messages.DefaultLocale,
		LogLevel:   DefaultLogLevel,
		Alert: AlertSettings{
			Delay: alert.DefaultDelay,
			Fade:  alert.DefaultFade,
		},
	}
}

// Parse decodes YAML over the defaults. Keys absent from data keep their
// default value.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("settings: decode: %w", err)
	}
	return s, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: read %s: %w", path, err)
	}
	return Parse(data)
}

// FromArgs parses command line arguments. -settings names an optional YAML
// file; any flag set explicitly overrides the file.
func FromArgs(name string, args []string, output io.Writer) (Settings, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}

	def := Default()
	path := fs.String("settings", "", "YAML settings file")
	listen := fs.String("listen", def.Listen, "HTTP listen address")
	origin := fs.String("origin", def.Origin, "origin serving the config endpoint and the proxy")
	configPath := fs.String("config-path", def.ConfigPath, "path of the config endpoint")
	proxyRoot := fs.String("proxy-root", def.ProxyRoot, "path prefix of the record proxy")
	locale := fs.String("locale", def.Locale, "message locale (pt-BR, en)")
	logLevel := fs.String("log-level", def.LogLevel, "log level (debug, info, warn, error)")
	delay := fs.Duration("alert-delay", def.Alert.Delay, "how long alerts stay visible")
	fade := fs.Duration("alert-fade", def.Alert.Fade, "alert fade out duration")
	variant := fs.String("theme-variant", def.Theme.Variant, "theme variant (empty or dark)")

	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}

	s := def
	if strings.TrimSpace(*path) != "" {
		loaded, err := Load(*path)
		if err != nil {
			return Settings{}, err
		}
		s = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "listen":
			s.Listen = *listen
		case "origin":
			s.Origin = *origin
		case "config-path":
			s.ConfigPath = *configPath
		case "proxy-root":
			s.ProxyRoot = *proxyRoot
		case "locale":
			s.Locale = *locale
		case "log-level":
			s.LogLevel = *logLevel
		case "alert-delay":
			s.Alert.Delay = *delay
		case "alert-fade":
			s.Alert.Fade = *fade
		case "theme-variant":
			s.Theme.Variant = *variant
		}
	})

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports the first invalid setting.
func (s Settings) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Origin) == "" {
		errs = append(errs, errors.New("origin is required"))
	}
	if !messages.Supported(s.Locale) {
		errs = append(errs, fmt.Errorf("unsupported locale %q", s.Locale))
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if s.Alert.Delay <= 0 || s.Alert.Fade < 0 {
		errs = append(errs, fmt.Errorf("invalid alert timing %s/%s", s.Alert.Delay, s.Alert.Fade))
	}
	if len(errs) > 0 {
		return fmt.Errorf("settings: %w", errors.Join(errs...))
	}
	return nil
}

// ParseLevel maps a level name to its zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zerolog.DebugLevel, nil
	case "INFO", "":
		return zerolog.InfoLevel, nil
	case "WARN":
		return zerolog.WarnLevel, nil
	case "ERROR":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// Logger builds the console logger the commands write to stderr.
func (s Settings) Logger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, _ := ParseLevel(s.LogLevel)
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
