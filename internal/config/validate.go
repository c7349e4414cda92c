package config

import "fmt"

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Plex.URL == "" {
		errs = append(errs, "plex.url: required")
	}
	if c.Plex.Token == "" {
		errs = append(errs, "plex.token: required")
	}

	if c.TMDB.APIKey == "" {
		errs = append(errs, "tmdb.api_key: required")
	}

	// Unresolved ${VAR} placeholders mean an env var was never set.
	for field, value := range map[string]string{
		"plex.token":   c.Plex.Token,
		"tmdb.api_key": c.TMDB.APIKey,
	} {
		if envVarPattern.MatchString(value) {
			errs = append(errs, fmt.Sprintf("%s: unresolved environment variable %s", field, value))
		}
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	return errs
}
