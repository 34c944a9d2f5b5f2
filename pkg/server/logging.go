package server

import (
	"bytes"
	"fmt"

	"github.com/rs/zerolog"
)

// accessLog adapts zerolog to the io.Writer gorilla/handlers writes Apache
// style lines to.
type accessLog struct {
	logger zerolog.Logger
}

func (a accessLog) Write(p []byte) (int, error) {
	a.logger.Info().Str("access", string(bytes.TrimRight(p, "\n"))).Msg("http request")
	return len(p), nil
}

type recoveryLogger struct {
	logger zerolog.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Error().Str("panic", fmt.Sprint(v...)).Msg("recovered from panic")
}
