package library

import (
	"os"
	"path/filepath"
	"strings"
)

// TrailersDir is the directory name the media server reads trailers from.
const TrailersDir = "Trailers"

// HasPoster reports whether the item directory contains a non-empty
// image file whose name starts with "poster".
func HasPoster(item Item) bool {
	return hasImageWithPrefix(item.Path, "poster")
}

// HasBackdrop reports whether the item directory contains a non-empty
// image file whose name starts with "backdrop".
func HasBackdrop(item Item) bool {
	return hasImageWithPrefix(item.Path, "backdrop")
}

func hasImageWithPrefix(dir, prefix string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(strings.ToLower(name), prefix) || !IsImageFile(name) {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || info.Size() == 0 {
			continue
		}
		return true
	}
	return false
}

// HasTrailer reports whether the item contains a "Trailers" directory
// with at least one video file in it. Unlike the image checks, a
// zero-byte trailer file still counts.
func HasTrailer(item Item) bool {
	dir := filepath.Join(item.Path, TrailersDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.Type().IsRegular() && IsVideoFile(entry.Name()) {
			return true
		}
	}
	return false
}
