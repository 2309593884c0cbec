package model

import (
	"fmt"
	"strings"
)

// ProgressUpdate is one progress tick for an in-flight download. Percent is
// 0-100 and not guaranteed strictly increasing tick-to-tick (multi-stream
// merges), but the final emission before completion reaches 100.
type ProgressUpdate struct {
	Percent         float64
	DownloadedBytes int64
	TotalBytes      int64
	Speed           string // human readable, e.g. "1.2MB/s"
	ETASec          int    // -1 if unknown
}

// ETAString returns the ETA formatted as hh:mm:ss, or "—" if unknown.
func (p ProgressUpdate) ETAString() string {
	if p.ETASec <= 0 {
		return "—"
	}

	hours := p.ETASec / 3600
	minutes := (p.ETASec % 3600) / 60
	seconds := p.ETASec % 60

	var b strings.Builder
	if hours > 0 {
		b.WriteString(fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds))
		return b.String()
	}
	b.WriteString(fmt.Sprintf("%02d:%02d", minutes, seconds))
	return b.String()
}

// BatchProgress holds the aggregate counters for the currently active
// submission. Completed+Failed never exceeds Total; the batch is done iff
// Completed+Failed == Total with nothing in flight or pending.
type BatchProgress struct {
	Total     int
	Completed int // successes
	Failed    int // includes cancelled items
	InFlight  int // active workers
	Pending   int // queue length
}

// Done reports whether the batch has fully drained.
func (b BatchProgress) Done() bool {
	return b.Completed+b.Failed == b.Total && b.InFlight == 0 && b.Pending == 0
}
