package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pawhaven/pawdeck/internal/api"
	"github.com/pawhaven/pawdeck/internal/config"
	"github.com/pawhaven/pawdeck/internal/creds"
	"github.com/pawhaven/pawdeck/internal/notify"
	"github.com/pawhaven/pawdeck/internal/state"
	"github.com/pawhaven/pawdeck/internal/ui"
)

// Options configure the pawdeck application.
type Options struct {
	ConfigPath string
	CredsPath  string // empty uses default ~/.config/pawdeck/credentials.toml
	APIURL     string // overrides the configured backend origin
	PollEvery  int    // seconds; zero uses default
}

// Run boots the pawdeck TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if strings.TrimSpace(opts.APIURL) != "" {
		cfg.APIURL = strings.TrimSpace(opts.APIURL)
	}

	// The TUI owns the terminal, so diagnostics go to a file.
	if logFile := openLogFile(cfg); logFile != nil {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	credStore := creds.Open(opts.CredsPath)

	gateway, err := api.NewGateway(cfg.APIURL, credStore)
	if err != nil {
		return fmt.Errorf("init gateway: %w", err)
	}
	client, err := api.NewClient(gateway, credStore)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := state.New(client, credStore.Session())
	gateway.OnUnauthorized(store.ExpireSession)

	aggregator := notify.New(store)

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}
	StartPoller(ctx, store, interval)

	uiOpts := ui.Options{
		Context:    ctx,
		Store:      store,
		Alerts:     aggregator,
		Config:     &cfg,
		ConfigPath: opts.ConfigPath,
		ThemeName:  cfg.Theme,
	}
	return ui.Run(uiOpts)
}

func openLogFile(cfg config.Config) *os.File {
	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil
	}
	return file
}
