package model

// DownloadStatus represents the status of a download item.
type DownloadStatus string

const (
	// StatusPending means the item is known but not yet queued
	StatusPending DownloadStatus = "pending"

	// StatusQueued means the item is waiting for a free worker slot
	StatusQueued DownloadStatus = "queued"

	// StatusFetching means metadata resolution is in progress
	StatusFetching DownloadStatus = "fetching"

	// StatusDownloading means the transfer is in progress
	StatusDownloading DownloadStatus = "downloading"

	// StatusCompleted means the item finished successfully
	StatusCompleted DownloadStatus = "completed"

	// StatusCancelled means the item was stopped by the user
	StatusCancelled DownloadStatus = "cancelled"

	// StatusFailed means the item failed with an error
	StatusFailed DownloadStatus = "failed"
)

// String returns the string representation of DownloadStatus.
func (s DownloadStatus) String() string {
	return string(s)
}

// IsActive returns true if the item is in a non-terminal working state.
func (s DownloadStatus) IsActive() bool {
	return s == StatusQueued || s == StatusFetching || s == StatusDownloading
}

// IsTerminal returns true if the item reached a final state.
func (s DownloadStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusFailed
}
