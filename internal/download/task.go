package download

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/khanhnv219/nexus-downloader/internal/model"
	"github.com/khanhnv219/nexus-downloader/internal/platform"
)

// cancelPollInterval bounds how long a blocking transfer keeps running after
// the stop flag is raised.
const cancelPollInterval = 100 * time.Millisecond

// task wraps one materializer call. The stop flag is consulted at three
// checkpoints: before any work, during the transfer (a watcher goroutine
// cancels the call's context), and after the call returns.
type task struct {
	req     *model.DownloadRequest
	mat     Materializer
	flag    *CancelFlag
	cleanup CleanupConfig
	logger  zerolog.Logger
	emit    ProgressFunc // may be nil
}

func (t *task) run(ctx context.Context) model.Outcome {
	if t.flag.IsSet() {
		// already stopped at dequeue time, never invoke the external call
		t.sweepPartials()
		return model.Cancelled()
	}

	ctx, abort := context.WithCancel(ctx)
	defer abort()

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(cancelPollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if t.flag.IsSet() {
					abort()
					return
				}
			}
		}
	}()

	result, err := t.mat.Download(ctx, t.req, t.progressHook)

	if t.flag.IsSet() {
		// covers both an aborted call and one that completed between the
		// last progress tick and the stop request
		t.sweepPartials()
		return model.Cancelled()
	}

	if err != nil {
		message := platform.FormatDownloadError(t.req.URL, err)
		t.logger.Error().Err(err).Str("url", t.req.URL).Msg("download failed")
		// an interrupted-but-not-cancelled partial is left for yt-dlp's own
		// resume behavior
		return model.Failed(message)
	}

	t.progressHook(model.ProgressUpdate{Percent: 100, ETASec: -1})

	outputPath := ""
	if result != nil {
		outputPath = result.OutputPath
	}
	return model.Completed(t.subtitleStatus(result), outputPath)
}

// progressHook forwards ticks upward; once the stop flag is set, further
// ticks are suppressed while the context abort unwinds the transfer.
func (t *task) progressHook(update model.ProgressUpdate) {
	if t.flag.IsSet() || t.emit == nil {
		return
	}
	t.emit(update)
}

func (t *task) sweepPartials() {
	cleanupPartials(t.logger, t.req.DestDir, t.cleanup)
}

func (t *task) subtitleStatus(result *Result) model.SubtitleStatus {
	if !t.req.Subtitles.Enabled {
		return model.SubsNone
	}
	if result == nil {
		return model.SubsMissing
	}
	switch {
	case result.SubtitlesEmbedded:
		return model.SubsEmbedded
	case result.SubtitlesWritten:
		return model.SubsWith
	default:
		return model.SubsMissing
	}
}
