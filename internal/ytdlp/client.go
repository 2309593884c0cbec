// Package ytdlp adapts the yt-dlp command wrapper to the resolver and
// materializer seams the rest of the application works against.
package ytdlp

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const progressInterval = 500 * time.Millisecond

// Client shells out to yt-dlp for both metadata resolution and media
// transfer. It is stateless and safe for concurrent use.
type Client struct {
	logger zerolog.Logger
}

// NewClient builds a yt-dlp client.
func NewClient(logger zerolog.Logger) *Client {
	return &Client{logger: logger.With().Str("component", "ytdlp").Logger()}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDuration(seconds *float64) string {
	if seconds == nil || *seconds <= 0 {
		return ""
	}
	total := int(*seconds)
	if total >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// effectiveFormat applies the Bilibili quirk: "best" alone can select a
// premium-gated format there, so widen the selector to the best available
// video+audio pair with a plain fallback.
func effectiveFormat(url, quality string) string {
	lower := strings.ToLower(url)
	isBilibili := strings.Contains(lower, "bilibili.com") || strings.Contains(lower, "b23.tv")
	if isBilibili && quality == "best" {
		return "bestvideo+bestaudio/best"
	}
	return quality
}
