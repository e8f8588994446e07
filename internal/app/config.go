package app

import (
	"errors"
	"strings"
)

// Config carries everything one run needs. All state is passed explicitly;
// the pipeline keeps nothing between invocations.
type Config struct {
	// OutputDir is the root under which per-company artifact directories
	// are created.
	OutputDir string
	// UserAgent identifies the caller to the SEC; their fair-access policy
	// requires contact details.
	UserAgent string
	// Forms is the set of form types to download, e.g. 10-K and 10-Q.
	Forms []string
	// CacheDir, when non-empty, enables the on-disk raw filing cache.
	CacheDir string
	// MaxAttempts bounds fetch retries, including the first attempt.
	MaxAttempts int
	Verbose     bool
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return errors.New("config: output directory is required")
	}
	if strings.TrimSpace(cfg.UserAgent) == "" {
		return errors.New("config: user agent with contact details is required (SEC fair-access policy)")
	}
	if len(cfg.Forms) == 0 {
		return errors.New("config: at least one form type is required")
	}
	for _, f := range cfg.Forms {
		if strings.TrimSpace(f) == "" {
			return errors.New("config: empty form type")
		}
	}
	return nil
}
