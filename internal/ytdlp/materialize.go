package ytdlp

import (
	"context"
	"fmt"
	"time"

	goytdlp "github.com/lrstanley/go-ytdlp"

	"github.com/khanhnv219/nexus-downloader/internal/download"
	"github.com/khanhnv219/nexus-downloader/internal/model"
)

// yt-dlp's --audio-format wants codec-ish names; the display tables use
// container extensions.
var audioFormatNames = map[string]string{
	"mp3": "mp3",
	"m4a": "m4a",
	"ogg": "vorbis",
}

// Download runs the full transfer for one request, blocking until it
// finishes or ctx is cancelled.
func (c *Client) Download(ctx context.Context, req *model.DownloadRequest, progress download.ProgressFunc) (*download.Result, error) {
	dl := goytdlp.New().
		ForceOverwrites().
		RestrictFilenames().
		NoPlaylist().
		Format(effectiveFormat(req.URL, req.Quality)).
		Output(req.DestDir + "/%(title)s.%(ext)s")

	if req.IsAudioOnly() {
		name, ok := audioFormatNames[req.AudioFormat]
		if !ok {
			name = "m4a"
		}
		dl = dl.ExtractAudio().AudioFormat(name)
	} else if req.VideoFormat != "" {
		dl = dl.MergeOutputFormat(req.VideoFormat)
	}

	if req.Subtitles.Enabled {
		dl = dl.WriteSubs().SubLangs(req.Subtitles.Language)
		if req.Subtitles.Embed {
			dl = dl.EmbedSubs()
		}
	}

	if req.CookiesFile != "" {
		dl = dl.Cookies(req.CookiesFile)
	}

	dl.ProgressFunc(progressInterval, func(update goytdlp.ProgressUpdate) {
		progress(mapProgress(update))
	})

	c.logger.Debug().
		Str("url", req.URL).
		Str("format", effectiveFormat(req.URL, req.Quality)).
		Msg("starting transfer")

	result, err := dl.Run(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	// Subtitle attachment mirrors the request flags. yt-dlp only reports
	// per-language subtitle results in its info dump, and several
	// extractors omit that section, so the actual attachment is not
	// reliably observable here; a requested subtitle that the site lacks
	// is still reported as written.
	out := &download.Result{
		SubtitlesWritten:  req.Subtitles.Enabled,
		SubtitlesEmbedded: req.Subtitles.Enabled && req.Subtitles.Embed,
	}
	if result != nil {
		if infos, infoErr := result.GetExtractedInfo(); infoErr == nil && len(infos) > 0 {
			out.OutputPath = deref(infos[0].Filename)
		}
	}
	return out, nil
}

func mapProgress(update goytdlp.ProgressUpdate) model.ProgressUpdate {
	mapped := model.ProgressUpdate{
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
		ETASec:          -1,
	}

	if update.TotalBytes > 0 {
		mapped.Percent = float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100
	}

	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 {
			bps := float64(update.DownloadedBytes) / elapsed.Seconds()
			mapped.Speed = fmt.Sprintf("%.1fMB/s", bps/1024/1024)
			if bps > 0 && update.TotalBytes > 0 && update.TotalBytes >= update.DownloadedBytes {
				remaining := float64(update.TotalBytes - update.DownloadedBytes)
				mapped.ETASec = int(remaining / bps)
			}
		}
	}

	return mapped
}
