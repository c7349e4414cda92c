// Package plex is a thin client for the Plex Media Server library API.
package plex

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/xriskon/librarian/internal/library"
)

// Client talks to a Plex server using token auth.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a new Plex client.
func NewClient(baseURL, token string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		log:     log.With("component", "plex"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Identity holds Plex server identity information.
type Identity struct {
	Name    string
	Version string
}

type identityResponse struct {
	XMLName      xml.Name `xml:"MediaContainer"`
	FriendlyName string   `xml:"friendlyName,attr"`
	Version      string   `xml:"version,attr"`
}

type sectionsResponse struct {
	XMLName  xml.Name    `xml:"MediaContainer"`
	Sections []directory `xml:"Directory"`
}

type directory struct {
	Key       string     `xml:"key,attr"`
	Title     string     `xml:"title,attr"`
	Type      string     `xml:"type,attr"`
	Locations []location `xml:"Location"`
}

type location struct {
	Path string `xml:"path,attr"`
}

// Sections lists the server's library sections folded into at most one
// movie and one show section. All filesystem roots of a type are
// appended in listing order; the section id is the last directory key
// seen for that type.
func (c *Client) Sections(ctx context.Context) ([]library.Section, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/library/sections", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Plex-Token", c.token)
	req.Header.Set("Accept", "application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result sectionsResponse
	if err := xml.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	movie := library.Section{Kind: library.KindMovie}
	show := library.Section{Kind: library.KindShow}
	for _, dir := range result.Sections {
		for _, loc := range dir.Locations {
			switch dir.Type {
			case "movie":
				movie.ID = dir.Key
				movie.Roots = append(movie.Roots, loc.Path)
			case "show":
				show.ID = dir.Key
				show.Roots = append(show.Roots, loc.Path)
			}
		}
	}

	var sections []library.Section
	if len(movie.Roots) > 0 {
		sections = append(sections, movie)
	}
	if len(show.Roots) > 0 {
		sections = append(sections, show)
	}
	return sections, nil
}

// RefreshSection asks Plex to rescan a library section so freshly
// placed assets get picked up.
func (c *Client) RefreshSection(ctx context.Context, sectionID string) error {
	url := fmt.Sprintf("%s/library/sections/%s/refresh?force=1", c.baseURL, sectionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Plex-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("refresh failed with status: %d", resp.StatusCode)
	}

	c.log.Debug("section refresh triggered", "section", sectionID)
	return nil
}

// Identity returns the Plex server name and version. Used as the
// startup connectivity check.
func (c *Client) Identity(ctx context.Context) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Plex-Token", c.token)
	req.Header.Set("Accept", "application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result identityResponse
	if err := xml.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &Identity{
		Name:    result.FriendlyName,
		Version: result.Version,
	}, nil
}
