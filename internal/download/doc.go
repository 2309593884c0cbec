// Package download implements the concurrent download orchestration core:
// a FIFO queue drained through a bounded worker pool, a batch-scoped
// cooperative cancellation flag, per-item progress and terminal-outcome
// reporting, and cleanup of partial files left behind by cancelled transfers.
package download
