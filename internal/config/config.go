// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Plex  PlexConfig  `toml:"plex"`
	TMDB  TMDBConfig  `toml:"tmdb"`
	Tools ToolsConfig `toml:"tools"`
	Log   LogConfig   `toml:"log"`
}

type PlexConfig struct {
	URL   string `toml:"url"`
	Token string `toml:"token"`
}

type TMDBConfig struct {
	APIKey        string `toml:"api_key"`
	Language      string `toml:"language"`
	ImageLanguage string `toml:"image_language"`
}

// ToolsConfig names the external binaries used for trailer downloads.
type ToolsConfig struct {
	YtDlp  string `toml:"yt_dlp"`
	FFmpeg string `toml:"ffmpeg"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.TMDB.Language == "" {
		cfg.TMDB.Language = "en-US"
	}
	if cfg.TMDB.ImageLanguage == "" {
		cfg.TMDB.ImageLanguage = "en,null"
	}
	if cfg.Tools.YtDlp == "" {
		cfg.Tools.YtDlp = "yt-dlp"
	}
	if cfg.Tools.FFmpeg == "" {
		cfg.Tools.FFmpeg = "ffmpeg"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
