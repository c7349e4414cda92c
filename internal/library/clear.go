package library

import (
	"fmt"
	"os"
	"path/filepath"
)

// ClearImages deletes every image file directly under the item,
// regardless of filename prefix. Non-image files are left alone.
func ClearImages(item Item) error {
	entries, err := os.ReadDir(item.Path)
	if err != nil {
		return fmt.Errorf("list %s: %w", item.Path, err)
	}
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !IsImageFile(entry.Name()) {
			continue
		}
		if err := os.Remove(filepath.Join(item.Path, entry.Name())); err != nil {
			return fmt.Errorf("remove %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// ClearTrailers removes the item's Trailers directory and everything
// in it. A missing directory is not an error.
func ClearTrailers(item Item) error {
	dir := filepath.Join(item.Path, TrailersDir)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove %s: %w", dir, err)
	}
	return nil
}
