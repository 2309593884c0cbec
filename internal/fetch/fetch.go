// Package fetch resolves URLs into video metadata before any download
// starts, so the caller can show titles and confirm selections.
package fetch

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/khanhnv219/nexus-downloader/internal/model"
	"github.com/khanhnv219/nexus-downloader/internal/platform"
)

// Resolver turns a URL into the videos behind it. A playlist URL yields one
// entry per item; a single video yields one.
type Resolver interface {
	Resolve(ctx context.Context, url, cookiesFile string) ([]model.Video, error)
}

// Callback receives the result of an asynchronous fetch. Exactly one of
// videos or errMsg is meaningful: errMsg is empty on success.
type Callback func(videos []model.Video, errMsg string)

// Service wraps a Resolver with rate limiting and error normalization.
type Service struct {
	resolver Resolver
	limiter  *rate.Limiter
	logger   zerolog.Logger
}

// NewService builds a fetch service. perMinute caps metadata lookups to
// avoid tripping site rate limits; zero or negative disables the cap.
func NewService(resolver Resolver, perMinute int, logger zerolog.Logger) *Service {
	s := &Service{
		resolver: resolver,
		logger:   logger.With().Str("component", "fetch").Logger(),
	}
	if perMinute > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), 1)
	}
	return s
}

// Fetch resolves a URL synchronously. The returned error message is already
// normalized for display.
func (s *Service) Fetch(ctx context.Context, url, cookiesFile string) ([]model.Video, string) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, platform.FormatDownloadError(url, err)
		}
	}

	s.logger.Info().Str("url", url).Msg("fetching video info")
	videos, err := s.resolver.Resolve(ctx, url, cookiesFile)
	if err != nil {
		msg := platform.FormatDownloadError(url, err)
		s.logger.Warn().Str("url", url).Str("error", msg).Msg("fetch failed")
		return nil, msg
	}
	if len(videos) == 0 {
		msg := platform.FormatErrorMessage(url, "no video found")
		return nil, msg
	}

	s.logger.Info().Str("url", url).Int("videos", len(videos)).Msg("fetch complete")
	return videos, ""
}

// FetchAsync resolves a URL on a dedicated goroutine and delivers exactly
// one callback with either the videos or a display-ready error message.
func (s *Service) FetchAsync(ctx context.Context, url, cookiesFile string, cb Callback) {
	go func() {
		videos, errMsg := s.Fetch(ctx, url, cookiesFile)
		cb(videos, errMsg)
	}()
}
