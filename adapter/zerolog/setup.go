package zerolog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/taglog"
)

// Config is an explicit, code-first configuration for zerolog + taglog.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer            io.Writer // default: os.Stdout
	Pattern           string    // initial filter expression; "" disables filtering
	Console           bool      // pretty console output instead of JSON
	ConsoleTimeFormat string    // only used if Console==true; default time.RFC3339Nano
}

// Use builds a zerolog-backed taglog logger from Config, wires it as the
// global taglog logger, and returns it. It fails only when the initial
// pattern does not compile.
func Use(cfg Config) (*taglog.Logger, error) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	var zl zerolog.Logger
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w}
		if cfg.ConsoleTimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		} else {
			cw.TimeFormat = cfg.ConsoleTimeFormat
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}

	l, err := taglog.NewBuilder().
		WithSink(New(zl)).
		WithPattern(cfg.Pattern).
		Build()
	if err != nil {
		return nil, err
	}
	taglog.SetGlobal(l)
	return l, nil
}
