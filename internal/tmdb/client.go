package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/xriskon/librarian/internal/library"
)

const defaultBaseURL = "https://api.themoviedb.org"

const defaultLanguage = "en-US"

// ErrNotFound is returned when a title doesn't exist in TMDB.
var ErrNotFound = errors.New("title not found")

// Client is a TMDB API client using bearer-token auth.
type Client struct {
	apiKey        string
	baseURL       string
	language      string
	imageLanguage string
	httpClient    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLanguage sets the search/video locale (default en-US).
func WithLanguage(lang string) Option {
	return func(c *Client) {
		if lang != "" {
			c.language = lang
		}
	}
}

// WithImageLanguage sets the include_image_language filter for image
// listings (default "en,null").
func WithImageLanguage(lang string) Option {
	return func(c *Client) {
		if lang != "" {
			c.imageLanguage = lang
		}
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:        apiKey,
		baseURL:       defaultBaseURL,
		language:      defaultLanguage,
		imageLanguage: "en,null",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// mediaPath maps a library kind onto the TMDB URL segment.
func mediaPath(kind library.Kind) string {
	if kind == library.KindShow {
		return "tv"
	}
	return "movie"
}

// Search looks up a title by name and optional year, scoped by kind,
// and returns the result ids in TMDB's own ranking order. Adult
// content is included.
func (c *Client) Search(ctx context.Context, title string, year int, kind library.Kind) ([]int64, error) {
	q := url.Values{}
	q.Set("query", title)
	q.Set("include_adult", "true")
	q.Set("language", c.language)
	q.Set("page", "1")
	if year != 0 {
		if kind == library.KindShow {
			q.Set("first_air_date_year", strconv.Itoa(year))
		} else {
			q.Set("primary_release_year", strconv.Itoa(year))
		}
	}

	var payload struct {
		Results []SearchResult `json:"results"`
	}
	path := fmt.Sprintf("/3/search/%s?%s", mediaPath(kind), q.Encode())
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(payload.Results))
	for _, r := range payload.Results {
		ids = append(ids, r.ID)
	}
	return ids, nil
}

// Images fetches the artwork listing for a title.
func (c *Client) Images(ctx context.Context, id int64, kind library.Kind) (*ImageSet, error) {
	path := fmt.Sprintf("/3/%s/%d/images?include_image_language=%s",
		mediaPath(kind), id, url.QueryEscape(c.imageLanguage))

	var set ImageSet
	if err := c.get(ctx, path, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

// Videos fetches the video listing for a title.
func (c *Client) Videos(ctx context.Context, id int64, kind library.Kind) ([]Video, error) {
	path := fmt.Sprintf("/3/%s/%d/videos?language=%s", mediaPath(kind), id, c.language)

	var payload struct {
		Results []Video `json:"results"`
	}
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Find fetches the detail record for a known id.
func (c *Client) Find(ctx context.Context, id int64, kind library.Kind) (*Title, error) {
	path := fmt.Sprintf("/3/%s/%d?language=%s", mediaPath(kind), id, c.language)

	var title Title
	if err := c.get(ctx, path, &title); err != nil {
		return nil, err
	}
	return &title, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
