package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSettingsStore_LoadMissingFileReturnsDefaults(t *testing.T) {
	store := NewSettingsStore(filepath.Join(t.TempDir(), "settings.json"))

	settings := store.Load()

	defaults := DefaultSettings()
	if settings.ConcurrentDownloadsLimit != defaults.ConcurrentDownloadsLimit {
		t.Errorf("expected default concurrency %d, got %d", defaults.ConcurrentDownloadsLimit, settings.ConcurrentDownloadsLimit)
	}
	if settings.VideoQuality != "Best" {
		t.Errorf("expected default quality Best, got %s", settings.VideoQuality)
	}
}

func TestSettingsStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	store := NewSettingsStore(path)

	in := DefaultSettings()
	in.ConcurrentDownloadsLimit = 5
	in.BilibiliCookiesPath = "/cookies/bili.txt"
	in.SubtitlesEnabled = true
	in.SubtitleLanguage = "Japanese"
	in.OrganizeByPlatform = true

	if err := store.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out := store.Load()
	if out.ConcurrentDownloadsLimit != 5 {
		t.Errorf("concurrency not persisted, got %d", out.ConcurrentDownloadsLimit)
	}
	if out.BilibiliCookiesPath != "/cookies/bili.txt" {
		t.Errorf("cookie path not persisted, got %s", out.BilibiliCookiesPath)
	}
	if !out.SubtitlesEnabled || out.SubtitleLanguage != "Japanese" {
		t.Errorf("subtitle options not persisted: %+v", out)
	}
	if !out.OrganizeByPlatform {
		t.Error("organize-by-platform flag not persisted")
	}
}

func TestSettingsStore_HomePortability(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	path := filepath.Join(t.TempDir(), "settings.json")
	store := NewSettingsStore(path)

	in := DefaultSettings()
	in.DownloadFolderPath = filepath.Join(home, "Downloads", "Nexus")
	if err := store.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Stored form uses "~" instead of the absolute home path.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var stored map[string]any
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	folder, _ := stored["download_folder_path"].(string)
	if !strings.HasPrefix(folder, "~") {
		t.Errorf("stored folder %q should start with ~", folder)
	}

	out := store.Load()
	if out.DownloadFolderPath != in.DownloadFolderPath {
		t.Errorf("expanded folder = %q, expected %q", out.DownloadFolderPath, in.DownloadFolderPath)
	}
}

func TestSettingsStore_CorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	settings := NewSettingsStore(path).Load()
	if settings.ConcurrentDownloadsLimit != DefaultSettings().ConcurrentDownloadsLimit {
		t.Errorf("corrupt file should yield defaults, got %+v", settings)
	}
}

func TestClampConcurrency(t *testing.T) {
	tests := []struct {
		in       int
		expected int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{4, 4},
		{10, 10},
		{99, 10},
	}

	for _, test := range tests {
		if got := ClampConcurrency(test.in); got != test.expected {
			t.Errorf("ClampConcurrency(%d) = %d, expected %d", test.in, got, test.expected)
		}
	}
}
