package model

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is the durable record of one terminal download. Entries are
// immutable after creation and stored append-only, read most-recent-first.
type HistoryEntry struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	Title        string `json:"title"`
	Platform     string `json:"platform"`
	DownloadDate string `json:"download_date"` // RFC 3339
	FilePath     string `json:"file_path"`
	FileSize     int64  `json:"file_size"` // bytes, 0 if unknown or failed
	Quality      string `json:"quality"`
	Format       string `json:"format"`
	Status       string `json:"status"` // completed | failed | cancelled
}

// NewHistoryEntry stamps a fresh entry with an ID and the current time.
func NewHistoryEntry(url, title, platform, filePath string, fileSize int64, quality, format string, status DownloadStatus) HistoryEntry {
	return HistoryEntry{
		ID:           uuid.NewString(),
		URL:          url,
		Title:        title,
		Platform:     platform,
		DownloadDate: time.Now().UTC().Format(time.RFC3339),
		FilePath:     filePath,
		FileSize:     fileSize,
		Quality:      quality,
		Format:       format,
		Status:       status.String(),
	}
}
