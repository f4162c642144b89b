package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/veiled-path/internal/config"
	"github.com/vovakirdan/veiled-path/internal/core"
	"github.com/vovakirdan/veiled-path/internal/game"
	"github.com/vovakirdan/veiled-path/internal/i18n"
	"github.com/vovakirdan/veiled-path/internal/tutorial"
)

// app holds what every command needs after flags and config are resolved.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	catalog *i18n.Catalog
	closer  io.Closer
}

// loadApp reads the config, applies flag overrides and configures the levels.
// Interactive sessions log to the configured file so output does not tear
// the terminal UI; other commands log to stderr.
func loadApp(interactive bool) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagFPS > 0 {
		cfg.Game.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLang != "" {
		cfg.Game.Language = flagLang
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	a := &app{cfg: cfg}

	var out io.Writer = os.Stderr
	if interactive {
		out = io.Discard
		if path := config.ExpandHome(cfg.Log.File); path != "" {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
				if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); err == nil {
					out = f
					a.closer = f
				}
			}
		}
	}
	a.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "veiled",
		Level:           cfg.LogLevel(),
	})

	lang := cfg.Game.Language
	if lang == "" {
		lang = os.Getenv("LANG")
	}
	a.catalog = i18n.MustLoad(lang)
	if a.catalog.Language() != i18n.DefaultLanguage {
		a.logger.Debug("language", "lang", a.catalog.Language())
	}

	script := tutorial.DefaultScript()
	if cfg.Tutorial.Script != "" {
		s, err := tutorial.LoadScript(config.ExpandHome(cfg.Tutorial.Script))
		if err != nil {
			return nil, fmt.Errorf("tutorial script: %w", err)
		}
		script = s
	}

	game.Configure(game.Settings{
		Catalog:   a.catalog,
		Script:    script,
		ShowOther: cfg.Terminal.ShowOther,
		Logger:    a.logger,
	})
	return a, nil
}

// Close releases the log file, if any.
func (a *app) Close() {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

// runtimeConfig sizes the simulation to the current terminal.
func (a *app) runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: a.cfg.Game.TickRate,
	}
}

// screenshotDir is where the terminal UI saves ctrl+s screenshots.
func screenshotDir() string {
	return config.UserPath("screenshots")
}

// fail prints an error and exits, as the other commands do.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
