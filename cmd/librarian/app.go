package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/xriskon/librarian/internal/assets"
	"github.com/xriskon/librarian/internal/config"
	"github.com/xriskon/librarian/internal/fetch"
	"github.com/xriskon/librarian/internal/library"
	"github.com/xriskon/librarian/internal/plex"
	"github.com/xriskon/librarian/internal/reconcile"
	"github.com/xriskon/librarian/internal/resolve"
	"github.com/xriskon/librarian/internal/tmdb"
)

// app holds the wired-up collaborators for one CLI invocation.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	plex   *plex.Client
	driver *reconcile.Driver
}

// newApp loads configuration and connects the clients. A config or
// validation problem is fatal here, before any library work starts.
func newApp() (*app, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.Discover()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config %s:\n  - %s", path, strings.Join(errs, "\n  - "))
	}

	log := newLogger(cfg.Log.Level)
	plexClient := plex.NewClient(cfg.Plex.URL, cfg.Plex.Token, log)
	tmdbClient := tmdb.NewClient(cfg.TMDB.APIKey,
		tmdb.WithLanguage(cfg.TMDB.Language),
		tmdb.WithImageLanguage(cfg.TMDB.ImageLanguage),
	)
	fetcher := fetch.New(log, fetch.WithBinaries(cfg.Tools.YtDlp, cfg.Tools.FFmpeg))

	a := &app{cfg: cfg, log: log, plex: plexClient}

	var observer reconcile.Observer = reconcile.NopObserver{}
	if !headless {
		observer = newProgress()
	}

	a.driver = reconcile.NewDriver(reconcile.Deps{
		Sections: plexClient,
		Scanner:  library.NewScanner(log),
		Resolver: resolve.New(tmdbClient, log),
		Selector: assets.New(tmdbClient, log),
		Fetcher:  fetcher,
		Finder:   tmdbClient,
		Observer: observer,
		Log:      log,
	})
	return a, nil
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// runPass executes one asset reconciliation pass and prints the
// failure report, if any, to stdout.
func (a *app) runPass(ctx context.Context, asset reconcile.AssetKind, refresh bool) error {
	report, err := a.driver.Run(ctx, asset)
	if err != nil {
		return err
	}
	report.Render(os.Stdout)

	if refresh {
		return a.refreshSections(ctx)
	}
	return nil
}

// refreshSections asks Plex to rescan every known section so new
// assets show up without waiting for the scheduled scan.
func (a *app) refreshSections(ctx context.Context) error {
	sections, err := a.plex.Sections(ctx)
	if err != nil {
		return err
	}
	for _, s := range sections {
		if err := a.plex.RefreshSection(ctx, s.ID); err != nil {
			a.log.Warn("section refresh failed", "section", s.ID, "error", err)
		}
	}
	return nil
}
