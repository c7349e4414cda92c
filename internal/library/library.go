// Package library models Plex library sections and scans their
// filesystem roots for media items.
package library

import "path/filepath"

// Kind identifies the media type of a section.
type Kind string

const (
	KindMovie Kind = "movie"
	KindShow  Kind = "show"
)

// Section is a Plex library section: a media kind plus the ordered
// filesystem roots Plex serves it from. A run operates over at most one
// section per kind.
type Section struct {
	Kind  Kind
	ID    string // Plex section key, used for refresh requests
	Roots []string
}

// Item is one candidate unit of media under a section: either a
// directory or a bare video file.
type Item struct {
	Path string
	Kind Kind
}

// Name returns the base name of the item, the input to name parsing.
func (i Item) Name() string {
	return filepath.Base(i.Path)
}
