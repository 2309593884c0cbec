package ytdlp

import "testing"

func TestEffectiveFormat(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		quality string
		want    string
	}{
		{"bilibili best widens", "https://www.bilibili.com/video/BV1xx", "best", "bestvideo+bestaudio/best"},
		{"bilibili short link widens", "https://b23.tv/abc", "best", "bestvideo+bestaudio/best"},
		{"bilibili explicit quality untouched", "https://www.bilibili.com/video/BV1xx", "bestvideo[height<=720]+bestaudio/best[height<=720]", "bestvideo[height<=720]+bestaudio/best[height<=720]"},
		{"youtube best untouched", "https://youtube.com/watch?v=abc", "best", "best"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := effectiveFormat(tt.url, tt.quality); got != tt.want {
				t.Errorf("effectiveFormat(%q, %q) = %q, expected %q", tt.url, tt.quality, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	short := 75.0
	long := 3725.0
	zero := 0.0

	tests := []struct {
		name    string
		seconds *float64
		want    string
	}{
		{"nil", nil, ""},
		{"zero", &zero, ""},
		{"minutes", &short, "1:15"},
		{"hours", &long, "1:02:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDuration(tt.seconds); got != tt.want {
				t.Errorf("formatDuration = %q, expected %q", got, tt.want)
			}
		})
	}
}
