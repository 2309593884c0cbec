package model

import "testing"

func TestProgressUpdate_ETAString(t *testing.T) {
	tests := []struct {
		etaSec   int
		expected string
	}{
		{-1, "—"},
		{0, "—"},
		{30, "00:30"},
		{90, "01:30"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{7323, "02:02:03"},
	}

	for _, test := range tests {
		p := ProgressUpdate{ETASec: test.etaSec}
		result := p.ETAString()
		if result != test.expected {
			t.Errorf("ETAString() with ETASec=%d = %s, expected %s", test.etaSec, result, test.expected)
		}
	}
}

func TestBatchProgress_Done(t *testing.T) {
	tests := []struct {
		name     string
		progress BatchProgress
		expected bool
	}{
		{"fresh batch", BatchProgress{Total: 3, Pending: 3}, false},
		{"partially drained", BatchProgress{Total: 3, Completed: 1, InFlight: 1, Pending: 1}, false},
		{"all terminal but worker active", BatchProgress{Total: 3, Completed: 2, Failed: 1, InFlight: 1}, false},
		{"fully drained", BatchProgress{Total: 3, Completed: 2, Failed: 1}, true},
		{"empty batch", BatchProgress{}, true},
	}

	for _, test := range tests {
		if got := test.progress.Done(); got != test.expected {
			t.Errorf("%s: Done() = %v, expected %v", test.name, got, test.expected)
		}
	}
}

func TestOutcome_Status(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected DownloadStatus
	}{
		{Completed(SubsNone, "/tmp/a.mp4"), StatusCompleted},
		{Failed("boom"), StatusFailed},
		{Cancelled(), StatusCancelled},
	}

	for _, test := range tests {
		if got := test.outcome.Status(); got != test.expected {
			t.Errorf("Outcome(%s).Status() = %s, expected %s", test.outcome.Kind, got, test.expected)
		}
	}
}

// History entries are read back by status string, so the persisted
// vocabulary is fixed: completed, failed, cancelled.
func TestOutcome_StatusStringVocabulary(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{Completed(SubsNone, "/tmp/a.mp4"), "completed"},
		{Failed("boom"), "failed"},
		{Cancelled(), "cancelled"},
	}

	for _, test := range tests {
		if got := test.outcome.Status().String(); got != test.expected {
			t.Errorf("Outcome(%s) persists status %q, expected %q", test.outcome.Kind, got, test.expected)
		}
	}
}
