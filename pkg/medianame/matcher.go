package medianame

import "github.com/hbollon/go-edlib"

// Confidence represents the confidence level of a title match.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// MatchResult is the outcome of comparing a parsed title against a
// catalog title.
type MatchResult struct {
	Score      float64 // Jaro-Winkler similarity over cleaned titles
	Confidence Confidence
}

// Match compares two titles after normalization. Jaro-Winkler favors
// prefix agreement, which suits media titles.
func Match(parsed, candidate string) MatchResult {
	score := float64(edlib.JaroWinklerSimilarity(CleanTitle(parsed), CleanTitle(candidate)))

	result := MatchResult{Score: score}
	switch {
	case score >= 0.95:
		result.Confidence = ConfidenceHigh
	case score >= 0.85:
		result.Confidence = ConfidenceMedium
	case score >= 0.70:
		result.Confidence = ConfidenceLow
	}
	return result
}
