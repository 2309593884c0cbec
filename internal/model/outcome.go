package model

// SubtitleStatus describes how subtitles ended up attached to a completed
// download.
type SubtitleStatus string

const (
	SubsNone     SubtitleStatus = "none"
	SubsWith     SubtitleStatus = "with_subs"
	SubsMissing  SubtitleStatus = "no_subs"
	SubsEmbedded SubtitleStatus = "subs_embedded"
)

// OutcomeKind tags the terminal result of one download request.
type OutcomeKind string

const (
	OutcomeCompleted OutcomeKind = "completed"
	OutcomeFailed    OutcomeKind = "failed"
	OutcomeCancelled OutcomeKind = "cancelled"
)

// Outcome is the final, one-time result of a download request. Exactly one
// outcome is reported per attempted request.
type Outcome struct {
	Kind       OutcomeKind
	Subtitles  SubtitleStatus // set when Kind is OutcomeCompleted
	OutputPath string         // set when Kind is OutcomeCompleted, if known
	Message    string         // set when Kind is OutcomeFailed
}

// Completed builds a success outcome.
func Completed(subs SubtitleStatus, outputPath string) Outcome {
	return Outcome{Kind: OutcomeCompleted, Subtitles: subs, OutputPath: outputPath}
}

// Failed builds a failure outcome carrying a user-facing message.
func Failed(message string) Outcome {
	return Outcome{Kind: OutcomeFailed, Message: message}
}

// Cancelled builds a cancellation outcome.
func Cancelled() Outcome {
	return Outcome{Kind: OutcomeCancelled}
}

// Status maps the outcome to the item status recorded in history.
func (o Outcome) Status() DownloadStatus {
	switch o.Kind {
	case OutcomeCompleted:
		return StatusCompleted
	case OutcomeCancelled:
		return StatusCancelled
	default:
		return StatusFailed
	}
}
