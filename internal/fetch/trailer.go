package fetch

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// TrailerFilename is the name the media server expects inside the
// Trailers directory, without extension.
const TrailerFilename = "Official Trailer"

// Trailer downloads the video at watchURL into dir as
// "Official Trailer.mp4". Video (capped at 1080p) and audio are
// fetched as separate streams with yt-dlp, then muxed with ffmpeg
// (video copied, audio transcoded to AAC). Intermediate files are
// removed whatever the outcome.
func (f *Fetcher) Trailer(ctx context.Context, watchURL, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	videoPart := filepath.Join(dir, ".trailer-video.mp4")
	audioPart := filepath.Join(dir, ".trailer-audio.m4a")
	defer func() {
		_ = os.Remove(videoPart)
		_ = os.Remove(audioPart)
	}()

	if err := f.run(ctx, f.ytdlpBin,
		"--no-progress",
		"-f", "bestvideo[height<=1080][ext=mp4]",
		"-o", videoPart,
		watchURL,
	); err != nil {
		return fmt.Errorf("fetch video stream: %w", err)
	}

	if err := f.run(ctx, f.ytdlpBin,
		"--no-progress",
		"-f", "bestaudio[ext=m4a]",
		"-o", audioPart,
		watchURL,
	); err != nil {
		return fmt.Errorf("fetch audio stream: %w", err)
	}

	dest := filepath.Join(dir, TrailerFilename+".mp4")
	if err := f.run(ctx, f.ffmpegBin,
		"-y",
		"-i", videoPart,
		"-i", audioPart,
		"-c:v", "copy",
		"-c:a", "aac",
		dest,
	); err != nil {
		_ = os.Remove(dest)
		return fmt.Errorf("mux trailer: %w", err)
	}

	f.log.Debug("trailer downloaded", "dest", dest)
	return nil
}

// run executes a subprocess and folds its last stderr line into the
// error, which is usually the actionable part of yt-dlp/ffmpeg output.
func (f *Fetcher) run(ctx context.Context, bin string, args ...string) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if line := lastLine(stderr.String()); line != "" {
			return fmt.Errorf("%s: %w: %s", bin, err, line)
		}
		return fmt.Errorf("%s: %w", bin, err)
	}
	return nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
