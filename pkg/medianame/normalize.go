package medianame

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// canonicalRegex matches the library naming convention an item is
// renamed to: "Title (2020) {tmdb-603}".
var canonicalRegex = regexp.MustCompile(`^(.+)\s\((\d{4})\)\s\{tmdb-(\d+)\}$`)

// IsCanonical reports whether the name already follows the
// "Title (Year) {tmdb-N}" convention.
func IsCanonical(name string) bool {
	return canonicalRegex.MatchString(name)
}

// CleanTitle normalizes a title for similarity comparison: lowercase,
// accents folded, articles stripped, punctuation removed, whitespace
// collapsed.
func CleanTitle(title string) string {
	s := strings.ToLower(title)
	s = removeAccents(s)
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", " ")

	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripLeadingArticle(strings.TrimSpace(part))
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

func stripLeadingArticle(s string) string {
	for _, art := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}

// reservedNames are filenames Windows refuses regardless of extension.
var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

const invalidFilenameChars = `/\?%*:|"<>`

// SanitizeFilename strips characters that are invalid on common
// filesystems, caps the length at 255, and suffixes reserved Windows
// names. An empty or whitespace-only input yields "".
func SanitizeFilename(name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	for _, c := range invalidFilenameChars {
		name = strings.ReplaceAll(name, string(c), "")
	}
	if len(name) > 255 {
		name = name[:255]
	}
	if reservedNames[strings.ToUpper(name)] {
		name += "_"
	}
	return name
}
