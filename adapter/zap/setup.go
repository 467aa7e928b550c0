package zap

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/taglog"
)

// Config is an explicit, code-first configuration for zap + taglog.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer        io.Writer             // default: os.Stdout
	Pattern       string                // initial filter expression; "" disables filtering
	Console       bool                  // console encoder instead of JSON
	EncoderConfig zapcore.EncoderConfig // if zero, a sensible default is used
}

// Use builds a zap-backed taglog logger from Config, wires it as the
// global taglog logger, and returns it. It fails only when the initial
// pattern does not compile.
func Use(cfg Config) (*taglog.Logger, error) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	// Encoder defaults: taglog supplies its own "ts" field, so zap's time
	// key stays empty to avoid a duplicate timestamp.
	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" {
		encCfg = zapcore.EncoderConfig{
			TimeKey:        "",
			LevelKey:       "level",
			MessageKey:     "message",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	} else {
		encCfg.TimeKey = ""
	}

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.InfoLevel)

	l, err := taglog.NewBuilder().
		WithSink(New(zap.New(core))).
		WithPattern(cfg.Pattern).
		Build()
	if err != nil {
		return nil, err
	}
	taglog.SetGlobal(l)
	return l, nil
}
