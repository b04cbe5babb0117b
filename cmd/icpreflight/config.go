package main

import (
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	flagRoot       string
	flagLayout     string
	flagDebug      bool
	flagBackendURL string
	flagCanister   string
	flagTimeout    time.Duration
)

// Config is read from the environment; flags set on the command line win.
type Config struct {
	Root       string        `env:"ICPREFLIGHT_ROOT"`
	Layout     string        `env:"ICPREFLIGHT_LAYOUT"`
	Debug      bool          `env:"ICPREFLIGHT_DEBUG"`
	BackendURL string        `env:"ICPREFLIGHT_BACKEND_URL"`
	Canister   string        `env:"ICPREFLIGHT_CANISTER" envDefault:"backend"`
	Timeout    time.Duration `env:"ICPREFLIGHT_TIMEOUT" envDefault:"5s"`
}

func loadConfig(cmd *cobra.Command) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Root = flagRoot
	}
	if flags.Changed("layout") {
		cfg.Layout = flagLayout
	}
	if flags.Changed("debug") {
		cfg.Debug = flagDebug
	}
	if flags.Changed("backend-url") {
		cfg.BackendURL = flagBackendURL
	}
	if flags.Changed("canister") {
		cfg.Canister = flagCanister
	}
	if flags.Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	return cfg, nil
}

// newLogger returns a console logger writing to w.
func newLogger(w io.Writer, debug bool) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
