// Package assets picks which remote artwork or trailer to download for
// a resolved title.
package assets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/xriskon/librarian/internal/library"
	"github.com/xriskon/librarian/internal/tmdb"
)

//go:generate mockgen -destination=mocks/catalog.go -package=mocks github.com/xriskon/librarian/internal/assets Catalog

// ErrNoAsset is returned when the catalog has nothing usable for the
// requested asset kind.
var ErrNoAsset = errors.New("no matching asset")

// Catalog is the asset-listing surface of the metadata catalog.
type Catalog interface {
	Images(ctx context.Context, id int64, kind library.Kind) (*tmdb.ImageSet, error)
	Videos(ctx context.Context, id int64, kind library.Kind) ([]tmdb.Video, error)
}

// Selector applies the pick policies over catalog asset listings.
type Selector struct {
	catalog Catalog
	log     *slog.Logger
}

// New creates a Selector.
func New(catalog Catalog, log *slog.Logger) *Selector {
	if log == nil {
		log = slog.Default()
	}
	return &Selector{
		catalog: catalog,
		log:     log.With("component", "selector"),
	}
}

// Poster returns the locator of the first poster in the catalog's own
// ordering. The catalog ranks by quality; we do not re-rank.
func (s *Selector) Poster(ctx context.Context, id int64, kind library.Kind) (string, error) {
	set, err := s.catalog.Images(ctx, id, kind)
	if err != nil {
		return "", errNoAsset(err)
	}
	if len(set.Posters) == 0 {
		return "", ErrNoAsset
	}
	return set.Posters[0].FilePath, nil
}

// Backdrop returns the locator of the first backdrop in the catalog's
// own ordering.
func (s *Selector) Backdrop(ctx context.Context, id int64, kind library.Kind) (string, error) {
	set, err := s.catalog.Images(ctx, id, kind)
	if err != nil {
		return "", errNoAsset(err)
	}
	if len(set.Backdrops) == 0 {
		return "", ErrNoAsset
	}
	return set.Backdrops[0].FilePath, nil
}

// Trailer returns the video key of the preferred trailer. Among the
// entries typed exactly "Trailer": a single candidate wins outright;
// otherwise candidates are ordered by declared size ascending and the
// first whose name contains "official trailer" (case-insensitive)
// wins; failing that, the smallest candidate is the fallback. The
// size-ascending fallback is a pinned behavior; do not "fix" it to
// size-descending.
func (s *Selector) Trailer(ctx context.Context, id int64, kind library.Kind) (string, error) {
	videos, err := s.catalog.Videos(ctx, id, kind)
	if err != nil {
		return "", errNoAsset(err)
	}

	var trailers []tmdb.Video
	for _, v := range videos {
		if v.Type == "Trailer" {
			trailers = append(trailers, v)
		}
	}
	if len(trailers) == 0 {
		return "", ErrNoAsset
	}
	if len(trailers) == 1 {
		return trailers[0].Key, nil
	}

	sort.SliceStable(trailers, func(i, j int) bool {
		return trailers[i].Size < trailers[j].Size
	})
	for _, v := range trailers {
		if strings.Contains(strings.ToLower(v.Name), "official trailer") {
			return v.Key, nil
		}
	}
	return trailers[0].Key, nil
}

func errNoAsset(err error) error {
	return fmt.Errorf("%w: %v", ErrNoAsset, err)
}
