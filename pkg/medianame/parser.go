// Package medianame parses media folder and file names into structured
// identity information (title, year, season/episode, embedded TMDB id).
package medianame

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoMatch is returned when no naming template matches the input.
var ErrNoMatch = errors.New("no naming template matched")

// Info contains the fields captured from a media name. Only the fields
// the matching template captures are populated; numeric zero values
// mean "not captured".
type Info struct {
	Title      string
	Year       int
	Season     int
	Episode    int
	Month      int
	Day        int
	Resolution string // e.g. "1080p"
	Codec      string
	Language   string
	TMDBID     int64 // embedded {tmdb-N} id, 0 if absent
	Complete   bool  // season pack / "Complete" marker
}

// template is one naming convention: a pattern matched against the
// start of the name, with named groups mapped onto Info fields.
type template struct {
	re       *regexp.Regexp
	complete bool // marks a season pack, not a specific season/episode
}

func (t template) match(name string) (*Info, bool) {
	m := t.re.FindStringSubmatch(name)
	if m == nil {
		return nil, false
	}

	info := &Info{}
	for i, group := range t.re.SubexpNames() {
		if group == "" || m[i] == "" {
			continue
		}
		if !info.set(group, m[i]) {
			// A numeric group captured something non-numeric. The
			// templates should make that impossible; treat it as a
			// failed parse rather than letting it escape.
			return nil, false
		}
	}
	info.Title = normalizeTitle(info.Title)
	info.Complete = t.complete
	return info, true
}

func (i *Info) set(group, value string) bool {
	switch group {
	case "title":
		i.Title = value
		return true
	case "resolution":
		i.Resolution = value
		return true
	case "codec":
		i.Codec = value
		return true
	case "language":
		i.Language = value
		return true
	case "tmdbid":
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return false
		}
		i.TMDBID = id
		return true
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return false
	}
	switch group {
	case "year":
		i.Year = n
	case "season":
		i.Season = n
	case "episode":
		i.Episode = n
	case "month":
		i.Month = n
	case "day":
		i.Day = n
	}
	return true
}

// normalizeTitle replaces the dot separator convention with spaces.
// Applying it to an already-normalized title is a no-op.
func normalizeTitle(title string) string {
	return strings.ReplaceAll(title, ".", " ")
}

// movieTemplates are tried in order; the first match wins. The forms
// carrying an embedded tmdb id come first so the id short-circuits the
// catalog search.
var movieTemplates = []template{
	{re: regexp.MustCompile(`^(?P<title>.+?)\s*\((?P<year>\d{4})\)\s*\{tmdb-(?P<tmdbid>\d+)\}`)},
	{re: regexp.MustCompile(`^(?P<title>.+?)\s*\((?P<year>\d{4})\)`)},
	{re: regexp.MustCompile(`^(?P<title>.+?)\s*\((?P<year>\d{4})\)\s*-\s*(?P<resolution>\d+p)`)},
	{re: regexp.MustCompile(`^(?P<title>.+?)\.(?P<year>\d{4})\.(?P<resolution>\d+p)`)},
	{re: regexp.MustCompile(`^(?P<title>.+?)\s*\((?P<year>\d{4})\)\s*-\s*(?P<codec>[a-zA-Z0-9]+)`)},
	{re: regexp.MustCompile(`^(?P<title>.+?)\.(?P<year>\d{4})\.(?P<codec>[a-zA-Z0-9]+)`)},
	{re: regexp.MustCompile(`^(?P<title>.+?)\s*\((?P<year>\d{4})\)\s*-\s*(?P<language>[a-zA-Z]+)`)},
	{re: regexp.MustCompile(`^(?P<title>.+?)\.(?P<year>\d{4})\.(?P<language>[a-zA-Z]+)`)},
	{re: regexp.MustCompile(`^(?P<title>.+?)\.(?P<year>\d{4})\s*\{tmdb-(?P<tmdbid>\d+)\}`)},
}

var showTemplates = []template{
	{re: regexp.MustCompile(`^(?P<title>.+?)\.S(?P<season>\d{2})`)},
	{re: regexp.MustCompile(`^(?P<title>.+?)\s*\((?P<year>\d{4})\)`)},
	{re: regexp.MustCompile(`^(?P<title>.+?)\.S(?P<season>\d{2})E(?P<episode>\d{2})`)},
	{re: regexp.MustCompile(`^(?P<title>.+?)\s*-\s*S(?P<season>\d{2})E(?P<episode>\d{2})`)},
	{re: regexp.MustCompile(`^(?P<title>.+?)\.S(?P<season>\d{2})E(?P<episode>\d{1,2})`)},
	{re: regexp.MustCompile(`^(?P<title>.+?)\.(?P<year>\d{4})\.(?P<month>\d{2})\.(?P<day>\d{2})`)},
	{re: regexp.MustCompile(`^(?P<title>.+?)\.Season(?P<season>\d+)`)},
	{re: regexp.MustCompile(`^(?P<title>.+?)\s*Complete`), complete: true},
}

// ParseMovie parses a movie folder or file name.
func ParseMovie(name string) (*Info, error) {
	return parse(name, movieTemplates)
}

// ParseShow parses a TV show folder or file name.
func ParseShow(name string) (*Info, error) {
	return parse(name, showTemplates)
}

func parse(name string, templates []template) (*Info, error) {
	for _, t := range templates {
		if info, ok := t.match(name); ok {
			return info, nil
		}
	}
	return nil, ErrNoMatch
}
