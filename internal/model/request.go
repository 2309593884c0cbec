package model

import "time"

// SubtitleOptions controls subtitle handling for a download.
type SubtitleOptions struct {
	Enabled  bool
	Language string // ISO language code, or "all"
	Embed    bool
}

// DownloadRequest is one queued unit of work. Its parameters are immutable
// once the request is enqueued; to change quality or format for an item,
// cancel it and enqueue a new request.
type DownloadRequest struct {
	ID          string
	URL         string
	Title       string
	DestDir     string // resolved before enqueue
	Quality     string // yt-dlp format string
	VideoFormat string // container extension (mp4, webm, mkv)
	AudioFormat string // audio extension for audio-only downloads
	Subtitles   SubtitleOptions
	CookiesFile string // empty means "proceed without credentials"
	CreatedAt   time.Time
}

// IsAudioOnly reports whether the request selects the audio-only format.
func (r *DownloadRequest) IsAudioOnly() bool {
	return r.Quality == AudioOnlyFormat
}
