package download

import (
	"context"

	"github.com/khanhnv219/nexus-downloader/internal/model"
)

// ProgressFunc receives progress ticks during a transfer.
type ProgressFunc func(update model.ProgressUpdate)

// Result carries what the materializer knows about a finished transfer.
type Result struct {
	OutputPath        string
	SubtitlesWritten  bool
	SubtitlesEmbedded bool
}

// Materializer is the external capability that turns a request into a media
// file on disk. The call blocks for the whole transfer; cancelling ctx is the
// only way to interrupt it.
type Materializer interface {
	Download(ctx context.Context, req *model.DownloadRequest, progress ProgressFunc) (*Result, error)
}
