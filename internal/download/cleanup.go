package download

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// PartialSuffix marks in-progress download artifacts written by yt-dlp.
const PartialSuffix = ".part"

// Cleanup timing defaults. The settle delay gives yt-dlp/ffmpeg time to
// release file handles before deletion is attempted; the recency window keeps
// the sweep away from stale partials left by other sessions.
const (
	DefaultSettleDelay      = 5 * time.Second
	DefaultRecencyWindow    = 60 * time.Second
	DefaultDeleteRetryDelay = 1 * time.Second
	DefaultMaxDeleteRetries = 10
)

// CleanupConfig parameterizes the partial-file sweep after a cancellation.
type CleanupConfig struct {
	SettleDelay      time.Duration
	RecencyWindow    time.Duration
	DeleteRetryDelay time.Duration
	MaxDeleteRetries int
}

// DefaultCleanupConfig returns the production cleanup parameters.
func DefaultCleanupConfig() CleanupConfig {
	return CleanupConfig{
		SettleDelay:      DefaultSettleDelay,
		RecencyWindow:    DefaultRecencyWindow,
		DeleteRetryDelay: DefaultDeleteRetryDelay,
		MaxDeleteRetries: DefaultMaxDeleteRetries,
	}
}

// cleanupPartials removes partial-download artifacts from dir that were
// modified within the recency window. Deletion failures are retried a bounded
// number of times and then logged; they are never escalated, since the item's
// outcome is already cancelled.
func cleanupPartials(logger zerolog.Logger, dir string, cfg CleanupConfig) {
	time.Sleep(cfg.SettleDelay)

	matches, err := filepath.Glob(filepath.Join(dir, "*"+PartialSuffix))
	if err != nil {
		logger.Warn().Err(err).Str("dir", dir).Msg("partial file scan failed")
		return
	}

	now := time.Now()
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) >= cfg.RecencyWindow {
			// stale partial from another session, leave it alone
			continue
		}
		removeWithRetry(logger, path, cfg)
	}
}

func removeWithRetry(logger zerolog.Logger, path string, cfg CleanupConfig) {
	var lastErr error
	for attempt := 0; attempt < cfg.MaxDeleteRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(cfg.DeleteRetryDelay)
		}
		lastErr = os.Remove(path)
		if lastErr == nil || os.IsNotExist(lastErr) {
			logger.Info().Str("path", path).Msg("deleted partial file")
			return
		}
	}
	logger.Warn().Err(lastErr).
		Str("path", path).
		Int("attempts", cfg.MaxDeleteRetries).
		Msg("failed to delete partial file")
}
