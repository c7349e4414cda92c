// Package resolve reconciles parsed media names against the TMDB
// catalog to obtain stable ids.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/xriskon/librarian/internal/library"
	"github.com/xriskon/librarian/pkg/medianame"
)

//go:generate mockgen -destination=mocks/catalog.go -package=mocks github.com/xriskon/librarian/internal/resolve Catalog

// ErrNotResolved is returned when the catalog has no match for an
// identity and when the search itself fails. Callers record a failure
// for the item and move on; resolution errors are never fatal.
var ErrNotResolved = errors.New("identity not resolved")

// Catalog is the search surface of the metadata catalog.
type Catalog interface {
	Search(ctx context.Context, title string, year int, kind library.Kind) ([]int64, error)
}

// Resolver turns parsed identities into TMDB ids. Results are memoized
// per run keyed by (title, year, kind), so the poster, backdrop and
// trailer passes share one search per title.
type Resolver struct {
	catalog Catalog
	log     *slog.Logger

	mu    sync.Mutex
	memo  map[string]int64
	group singleflight.Group
}

// New creates a Resolver.
func New(catalog Catalog, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{
		catalog: catalog,
		log:     log.With("component", "resolver"),
		memo:    make(map[string]int64),
	}
}

// Resolve returns the TMDB id for a parsed identity. An embedded id is
// trusted as-is without a remote call. Otherwise the catalog is
// searched by title and year scoped to the kind, and the first result
// in the catalog's own ranking wins.
func (r *Resolver) Resolve(ctx context.Context, info *medianame.Info, kind library.Kind) (int64, error) {
	if info.TMDBID != 0 {
		return info.TMDBID, nil
	}

	key := fmt.Sprintf("%s/%s/%d", kind, info.Title, info.Year)
	r.mu.Lock()
	if id, ok := r.memo[key]; ok {
		r.mu.Unlock()
		return id, nil
	}
	r.mu.Unlock()

	v, err, _ := r.group.Do(key, func() (any, error) {
		ids, err := r.catalog.Search(ctx, info.Title, info.Year, kind)
		if err != nil {
			r.log.Warn("catalog search failed", "title", info.Title, "year", info.Year, "error", err)
			return nil, fmt.Errorf("%w: %s", ErrNotResolved, err)
		}
		if len(ids) == 0 {
			return nil, fmt.Errorf("%w: no results for %q", ErrNotResolved, info.Title)
		}
		return ids[0], nil
	})
	if err != nil {
		return 0, err
	}

	id := v.(int64)
	r.mu.Lock()
	r.memo[key] = id
	r.mu.Unlock()
	return id, nil
}
