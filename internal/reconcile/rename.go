package reconcile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xriskon/librarian/internal/library"
	"github.com/xriskon/librarian/pkg/medianame"
)

// Rename brings item directories onto the canonical
// "Title (Year) {tmdb-N}" naming convention. Only directories are
// touched; bare video files keep their names. The catalog's own title
// is used for the new name, but only when it agrees with the parsed
// title at high confidence, so a bad search hit can't rename a folder
// to the wrong film. With dryRun set, the planned renames are logged
// and nothing is moved.
func (d *Driver) Rename(ctx context.Context, dryRun bool) (*Report, error) {
	media, err := d.scan(ctx)
	if err != nil {
		return nil, err
	}

	report := NewReport("Failed Renames")
	for _, kind := range kindOrder {
		for _, item := range media[kind] {
			if medianame.IsCanonical(item.Name()) {
				continue
			}
			fi, err := os.Stat(item.Path)
			if err != nil || !fi.IsDir() {
				continue
			}
			d.renameItem(ctx, item, dryRun, report)
		}
	}
	return report, nil
}

func (d *Driver) renameItem(ctx context.Context, item library.Item, dryRun bool, report *Report) {
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

	title, err := d.deps.Finder.Find(ctx, id, item.Kind)
	if err != nil {
		report.Add(Failure{Title: info.Title, Year: info.Year, TMDBID: id, Kind: item.Kind, Reason: "catalog lookup failed"})
		return
	}

	if match := medianame.Match(info.Title, title.Name()); match.Confidence < medianame.ConfidenceHigh {
		report.Add(Failure{
			Title: info.Title, Year: info.Year, TMDBID: id, Kind: item.Kind,
			Reason: fmt.Sprintf("low title confidence (%s)", match.Confidence),
		})
		return
	}

	year := title.Year()
	if year == 0 {
		year = info.Year
	}
	newName := fmt.Sprintf("%s (%d) {tmdb-%d}", medianame.SanitizeFilename(title.Name()), year, id)
	if newName == item.Name() {
		return
	}

	if dryRun {
		d.log.Info("would rename", "from", item.Name(), "to", newName)
		return
	}

	dest := filepath.Join(filepath.Dir(item.Path), newName)
	if err := os.Rename(item.Path, dest); err != nil {
		d.log.Warn("rename failed", "item", item.Name(), "error", err)
		report.Add(Failure{Title: info.Title, Year: info.Year, TMDBID: id, Kind: item.Kind, Reason: "rename failed"})
		return
	}
	d.log.Info("renamed", "from", item.Name(), "to", newName)
}
