package ytdlp

import (
	"context"

	goytdlp "github.com/lrstanley/go-ytdlp"

	"github.com/khanhnv219/nexus-downloader/internal/model"
)

// Resolve fetches metadata for a URL without downloading anything. Playlist
// URLs yield one Video per entry; yt-dlp prints one JSON document per item.
func (c *Client) Resolve(ctx context.Context, url, cookiesFile string) ([]model.Video, error) {
	dl := goytdlp.New().
		SkipDownload().
		DumpJSON()
	if cookiesFile != "" {
		dl = dl.Cookies(cookiesFile)
	}

	c.logger.Debug().Str("url", url).Msg("resolving metadata")
	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, err
	}

	infos, err := result.GetExtractedInfo()
	if err != nil {
		return nil, err
	}

	videos := make([]model.Video, 0, len(infos))
	for _, info := range infos {
		if info == nil {
			continue
		}
		video := model.Video{
			ID:           info.ID,
			Title:        deref(info.Title),
			URL:          deref(info.WebpageURL),
			Duration:     formatDuration(info.Duration),
			ThumbnailURL: deref(info.Thumbnail),
			Uploader:     deref(info.Uploader),
		}
		if video.URL == "" {
			video.URL = url
		}
		if video.Title == "" {
			video.Title = video.URL
		}
		videos = append(videos, video)
	}
	return videos, nil
}
