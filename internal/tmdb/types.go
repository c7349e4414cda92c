// Package tmdb provides a client for The Movie Database API.
package tmdb

import "strconv"

// SearchResult is one entry from a search response, in TMDB's own
// ranking order.
type SearchResult struct {
	ID int64 `json:"id"`
}

// Image is one artwork entry. FilePath is the locator fragment used to
// build a download URL.
type Image struct {
	FilePath string `json:"file_path"`
}

// ImageSet is the image listing for a title.
type ImageSet struct {
	Posters   []Image `json:"posters"`
	Backdrops []Image `json:"backdrops"`
}

// Video is one entry from a title's video listing.
type Video struct {
	Type string `json:"type"` // "Trailer", "Teaser", "Clip", ...
	Name string `json:"name"`
	Size int    `json:"size"` // declared resolution class, e.g. 1080
	Key  string `json:"key"`  // YouTube video key
}

// Title is the detail record for a movie or TV show. Movies carry
// title/release_date, shows carry name/first_air_date; both shapes
// decode into the same struct.
type Title struct {
	ID           int64  `json:"id"`
	TitleField   string `json:"title"`
	NameField    string `json:"name"`
	ReleaseDate  string `json:"release_date"`
	FirstAirDate string `json:"first_air_date"`
}

// Name returns the display title regardless of media kind.
func (t *Title) Name() string {
	if t.TitleField != "" {
		return t.TitleField
	}
	return t.NameField
}

// Year extracts the release year, or 0 if unknown.
func (t *Title) Year() int {
	date := t.ReleaseDate
	if date == "" {
		date = t.FirstAirDate
	}
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

// ImageURL returns the full-resolution download URL for an image
// locator fragment.
func ImageURL(filePath string) string {
	return "https://image.tmdb.org/t/p/original" + filePath
}

// WatchURL returns the YouTube watch URL for a video key.
func WatchURL(key string) string {
	return "https://www.youtube.com/watch?v=" + key
}
