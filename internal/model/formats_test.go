package model

import "testing"

func TestFormatString(t *testing.T) {
	tests := []struct {
		quality  string
		expected string
	}{
		{"Best", "bestvideo+bestaudio/best"},
		{"1080p", "bestvideo[height<=1080]+bestaudio/best[height<=1080]"},
		{"Audio Only", "bestaudio/best"},
		{"nonsense", "best"},
		{"", "best"},
	}

	for _, test := range tests {
		result := FormatString(test.quality)
		if result != test.expected {
			t.Errorf("FormatString(%q) = %q, expected %q", test.quality, result, test.expected)
		}
	}
}

func TestFormatString_CoversAllListedQualities(t *testing.T) {
	for _, name := range QualityOptionsList {
		if _, ok := QualityOptions[name]; !ok {
			t.Errorf("quality %q listed but has no format string", name)
		}
	}
}

func TestVideoFormatExt(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"MP4", "mp4"},
		{"WebM", "webm"},
		{"MKV", "mkv"},
		{"AVI", "mp4"},
	}

	for _, test := range tests {
		if got := VideoFormatExt(test.name); got != test.expected {
			t.Errorf("VideoFormatExt(%q) = %q, expected %q", test.name, got, test.expected)
		}
	}
}

func TestAudioFormatExt(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"M4A", "m4a"},
		{"MP3", "mp3"},
		{"OGG", "ogg"},
		{"FLAC", "m4a"},
	}

	for _, test := range tests {
		if got := AudioFormatExt(test.name); got != test.expected {
			t.Errorf("AudioFormatExt(%q) = %q, expected %q", test.name, got, test.expected)
		}
	}
}

func TestSubtitleLangCode(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"English", "en"},
		{"All Languages", "all"},
		{"Klingon", "en"},
	}

	for _, test := range tests {
		if got := SubtitleLangCode(test.name); got != test.expected {
			t.Errorf("SubtitleLangCode(%q) = %q, expected %q", test.name, got, test.expected)
		}
	}
}

func TestRequest_IsAudioOnly(t *testing.T) {
	audio := &DownloadRequest{Quality: FormatString("Audio Only")}
	if !audio.IsAudioOnly() {
		t.Error("expected audio-only request to report IsAudioOnly")
	}

	video := &DownloadRequest{Quality: FormatString("1080p")}
	if video.IsAudioOnly() {
		t.Error("video request should not report IsAudioOnly")
	}
}
