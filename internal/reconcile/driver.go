// Package reconcile drives the scan → resolve → fetch → place loop
// that fills in missing library assets.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/xriskon/librarian/internal/assets"
	"github.com/xriskon/librarian/internal/library"
	"github.com/xriskon/librarian/internal/resolve"
	"github.com/xriskon/librarian/internal/tmdb"
	"github.com/xriskon/librarian/pkg/medianame"
)

//go:generate mockgen -destination=mocks/deps.go -package=mocks github.com/xriskon/librarian/internal/reconcile SectionSource,Fetcher,Finder

// AssetKind selects which asset a reconciliation pass fills in.
type AssetKind string

const (
	AssetPoster   AssetKind = "poster"
	AssetBackdrop AssetKind = "backdrop"
	AssetTrailer  AssetKind = "trailer"
)

// SectionSource lists the library sections a run operates over.
type SectionSource interface {
	Sections(ctx context.Context) ([]library.Section, error)
}

// Fetcher downloads assets to their destination.
type Fetcher interface {
	Image(ctx context.Context, url, dest string) error
	Trailer(ctx context.Context, watchURL, dir string) error
}

// Finder looks up the catalog detail record for a known id. Used by
// the rename flow to get the canonical title.
type Finder interface {
	Find(ctx context.Context, id int64, kind library.Kind) (*tmdb.Title, error)
}

// Deps bundles the Driver's collaborators.
type Deps struct {
	Sections SectionSource
	Scanner  *library.Scanner
	Resolver *resolve.Resolver
	Selector *assets.Selector
	Fetcher  Fetcher
	Finder   Finder
	Observer Observer
	Log      *slog.Logger
}

// Driver owns the per-run reconciliation state machine. Items are
// processed strictly sequentially; all per-item failures are recorded
// and never abort the run.
type Driver struct {
	deps Deps
	log  *slog.Logger
}

// NewDriver creates a Driver.
func NewDriver(deps Deps) *Driver {
	if deps.Log == nil {
		deps.Log = slog.Default()
	}
	if deps.Observer == nil {
		deps.Observer = NopObserver{}
	}
	return &Driver{
		deps: deps,
		log:  deps.Log.With("component", "driver"),
	}
}

// kindOrder fixes the processing order so reports are deterministic.
var kindOrder = []library.Kind{library.KindMovie, library.KindShow}

// Run performs one reconciliation pass for the given asset kind across
// all sections. The returned report lists only failures; a library
// with nothing missing yields an empty report.
func (d *Driver) Run(ctx context.Context, asset AssetKind) (*Report, error) {
	media, err := d.scan(ctx)
	if err != nil {
		return nil, err
	}

	report := NewReport("Failed Downloads")
	for _, kind := range kindOrder {
		var missing []library.Item
		for _, item := range media[kind] {
			if !hasAsset(asset, item) {
				missing = append(missing, item)
			}
		}
		if len(missing) == 0 {
			continue
		}

		d.log.Info("starting downloads", "asset", string(asset), "kind", string(kind), "missing", len(missing))
		d.deps.Observer.Start(kind, len(missing))
		for _, item := range missing {
			d.processItem(ctx, item, asset, report)
			d.deps.Observer.Advance()
		}
		d.deps.Observer.Finish()
	}
	return report, nil
}

func (d *Driver) scan(ctx context.Context) (map[library.Kind][]library.Item, error) {
	sections, err := d.deps.Sections.Sections(ctx)
	if err != nil {
		return nil, fmt.Errorf("no sections available: %w", err)
	}
	return d.deps.Scanner.Scan(sections), nil
}

func hasAsset(asset AssetKind, item library.Item) bool {
	switch asset {
	case AssetPoster:
		return library.HasPoster(item)
	case AssetBackdrop:
		return library.HasBackdrop(item)
	case AssetTrailer:
		return library.HasTrailer(item)
	}
	return true
}

// parseItem dispatches on the item's kind. A parse failure is fatal
// for the item only.
func parseItem(item library.Item) (*medianame.Info, error) {
	if item.Kind == library.KindShow {
		return medianame.ParseShow(item.Name())
	}
	return medianame.ParseMovie(item.Name())
}

func (d *Driver) processItem(ctx context.Context, item library.Item, asset AssetKind, report *Report) {
	info, err := parseItem(item)
	if err != nil {
		report.Add(Failure{Title: item.Name(), Kind: item.Kind, Reason: "name not recognized"})
		return
	}

	id, err := d.deps.Resolver.Resolve(ctx, info, item.Kind)
	if err != nil {
		report.Add(Failure{Title: info.Title, Year: info.Year, Kind: item.Kind, Reason: "not found in TMDB"})
		return
	}

	if err := d.fetchAsset(ctx, item, asset, id); err != nil {
		report.Add(Failure{Title: info.Title, Year: info.Year, TMDBID: id, Kind: item.Kind, Reason: err.Error()})
	}
}

// fetchAsset selects the remote asset and places it at the
// convention path inside the item directory.
func (d *Driver) fetchAsset(ctx context.Context, item library.Item, asset AssetKind, id int64) error {
	switch asset {
	case AssetPoster:
		locator, err := d.deps.Selector.Poster(ctx, id, item.Kind)
		if err != nil {
			return fmt.Errorf("no poster available")
		}
		return d.placeImage(ctx, locator, item, "poster")

	case AssetBackdrop:
		locator, err := d.deps.Selector.Backdrop(ctx, id, item.Kind)
		if err != nil {
			return fmt.Errorf("no backdrop available")
		}
		return d.placeImage(ctx, locator, item, "backdrop")

	case AssetTrailer:
		key, err := d.deps.Selector.Trailer(ctx, id, item.Kind)
		if err != nil {
			return fmt.Errorf("no trailer available")
		}
		dir := filepath.Join(item.Path, library.TrailersDir)
		if err := d.deps.Fetcher.Trailer(ctx, tmdb.WatchURL(key), dir); err != nil {
			d.log.Warn("trailer download failed", "item", item.Name(), "error", err)
			return fmt.Errorf("download failed")
		}
		return nil
	}
	return fmt.Errorf("unknown asset kind %q", asset)
}

// placeImage keeps the remote locator's extension: poster.jpg stays
// poster.jpg, poster.png stays poster.png.
func (d *Driver) placeImage(ctx context.Context, locator string, item library.Item, prefix string) error {
	dest := filepath.Join(item.Path, prefix+path.Ext(locator))
	if err := d.deps.Fetcher.Image(ctx, tmdb.ImageURL(locator), dest); err != nil {
		d.log.Warn("image download failed", "item", item.Name(), "error", err)
		return fmt.Errorf("download failed")
	}
	return nil
}

// ClearImages deletes every image file directly under every media
// item. Per-item failures are logged and skipped.
func (d *Driver) ClearImages(ctx context.Context) error {
	media, err := d.scan(ctx)
	if err != nil {
		return err
	}
	for _, kind := range kindOrder {
		for _, item := range media[kind] {
			if err := library.ClearImages(item); err != nil {
				d.log.Warn("clear images failed", "item", item.Name(), "error", err)
			}
		}
	}
	return nil
}

// ClearTrailers removes every media item's Trailers directory.
func (d *Driver) ClearTrailers(ctx context.Context) error {
	media, err := d.scan(ctx)
	if err != nil {
		return err
	}
	for _, kind := range kindOrder {
		for _, item := range media[kind] {
			if err := library.ClearTrailers(item); err != nil {
				d.log.Warn("clear trailers failed", "item", item.Name(), "error", err)
			}
		}
	}
	return nil
}
