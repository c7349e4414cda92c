// Package fetch downloads assets: images over HTTP, trailers via
// yt-dlp with an ffmpeg mux step.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Fetcher downloads assets to the library filesystem.
type Fetcher struct {
	httpClient *http.Client
	log        *slog.Logger
	ytdlpBin   string
	ffmpegBin  string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(f *Fetcher) {
		f.httpClient = hc
	}
}

// WithBinaries overrides the yt-dlp and ffmpeg binary paths.
func WithBinaries(ytdlp, ffmpeg string) Option {
	return func(f *Fetcher) {
		if ytdlp != "" {
			f.ytdlpBin = ytdlp
		}
		if ffmpeg != "" {
			f.ffmpegBin = ffmpeg
		}
	}
}

// New creates a Fetcher.
func New(log *slog.Logger, opts ...Option) *Fetcher {
	if log == nil {
		log = slog.Default()
	}
	f := &Fetcher{
		log:       log.With("component", "fetch"),
		ytdlpBin:  "yt-dlp",
		ffmpegBin: "ffmpeg",
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Image streams the content at url into dest. A partial file is
// removed on failure so presence checks don't mistake it for a
// finished asset.
func (f *Fetcher) Image(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: unexpected status %d", url, resp.StatusCode)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		_ = os.Remove(dest)
		return fmt.Errorf("write %s: %w", dest, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dest)
		return fmt.Errorf("close %s: %w", dest, err)
	}

	f.log.Debug("image downloaded", "dest", dest)
	return nil
}
