package library

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var videoExtensions = []string{".mp4", ".mkv", ".mpg", ".mov", ".webm"}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp"}

// IsVideoFile reports whether the filename has a recognized video extension.
func IsVideoFile(name string) bool {
	return hasExtension(name, videoExtensions)
}

// IsImageFile reports whether the filename has a recognized image extension.
func IsImageFile(name string) bool {
	return hasExtension(name, imageExtensions)
}

func hasExtension(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Scanner enumerates media items under section roots.
type Scanner struct {
	log *slog.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(log *slog.Logger) *Scanner {
	if log == nil {
		log = slog.Default()
	}
	return &Scanner{log: log.With("component", "scanner")}
}

// Scan lists the direct children of every root of every section and
// returns the media items per kind. A child qualifies if it is a
// directory, or a regular file with a recognized video extension.
// Ordering follows directory listing order. Unreadable roots are logged
// and skipped.
func (s *Scanner) Scan(sections []Section) map[Kind][]Item {
	media := make(map[Kind][]Item)
	for _, section := range sections {
		items := media[section.Kind]
		for _, root := range section.Roots {
			entries, err := os.ReadDir(root)
			if err != nil {
				s.log.Warn("skipping unreadable library root", "root", root, "error", err)
				continue
			}
			for _, entry := range entries {
				if !entry.IsDir() && !(entry.Type().IsRegular() && IsVideoFile(entry.Name())) {
					continue
				}
				items = append(items, Item{
					Path: filepath.Join(root, entry.Name()),
					Kind: section.Kind,
				})
			}
		}
		media[section.Kind] = items
	}
	return media
}
