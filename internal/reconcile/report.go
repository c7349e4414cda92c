package reconcile

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xriskon/librarian/internal/library"
)

// Failure records one item the pass could not complete, with whatever
// identity fields were known at the point of failure.
type Failure struct {
	Title  string
	Year   int   // 0 if the name never parsed
	TMDBID int64 // 0 if resolution never happened
	Kind   library.Kind
	Reason string
}

// Report accumulates the failures of one pass, in processing order.
type Report struct {
	Heading  string
	Failures []Failure
}

// NewReport creates an empty report.
func NewReport(heading string) *Report {
	return &Report{Heading: heading}
}

// Add appends a failure.
func (r *Report) Add(f Failure) {
	r.Failures = append(r.Failures, f)
}

// Empty reports whether the pass had no failures.
func (r *Report) Empty() bool {
	return len(r.Failures) == 0
}

// Render writes the failure table. An empty report writes nothing:
// silent success is the contract.
func (r *Report) Render(w io.Writer) {
	if r.Empty() {
		return
	}

	fmt.Fprintf(w, "%s\n", r.Heading)
	fmt.Fprintf(w, "  %-40s %-6s %-10s %-6s %s\n", "Title", "Year", "TMDB ID", "Type", "Reason")
	for _, f := range r.Failures {
		fmt.Fprintf(w, "  %-40s %-6s %-10s %-6s %s\n",
			f.Title, orDash(f.Year), orDash64(f.TMDBID), string(f.Kind), f.Reason)
	}
}

func orDash(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}

func orDash64(n int64) string {
	if n == 0 {
		return "-"
	}
	return strconv.FormatInt(n, 10)
}
