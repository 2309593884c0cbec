package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Limits applied to the concurrency setting.
const (
	MinConcurrentDownloads = 1
	MaxConcurrentDownloads = 10
)

// Settings is the user-editable configuration. It can be updated mid-session;
// the orchestrator re-reads it at batch start.
type Settings struct {
	DownloadFolderPath       string `json:"download_folder_path"`
	ConcurrentDownloadsLimit int    `json:"concurrent_downloads_limit"`
	FacebookCookiesPath      string `json:"facebook_cookies_path"`
	BilibiliCookiesPath      string `json:"bilibili_cookies_path"`
	XiaohongshuCookiesPath   string `json:"xiaohongshu_cookies_path"`
	VideoQuality             string `json:"video_quality"`
	VideoFormat              string `json:"video_format"`
	AudioFormat              string `json:"audio_format"`
	SubtitlesEnabled         bool   `json:"subtitles_enabled"`
	SubtitleLanguage         string `json:"subtitle_language"`
	EmbedSubtitles           bool   `json:"embed_subtitles"`
	OrganizeByPlatform       bool   `json:"organize_by_platform"`
}

// DefaultSettings returns the settings used when no file exists yet.
func DefaultSettings() Settings {
	folder := "~/Downloads"
	if home, err := os.UserHomeDir(); err == nil {
		folder = filepath.Join(home, "Downloads")
	}
	return Settings{
		DownloadFolderPath:       folder,
		ConcurrentDownloadsLimit: 2,
		VideoQuality:             "Best",
		VideoFormat:              "MP4",
		AudioFormat:              "M4A",
		SubtitleLanguage:         "English",
	}
}

// ClampConcurrency bounds a concurrency value to the supported range.
func ClampConcurrency(n int) int {
	if n < MinConcurrentDownloads {
		return MinConcurrentDownloads
	}
	if n > MaxConcurrentDownloads {
		return MaxConcurrentDownloads
	}
	return n
}

// SettingsStore persists Settings as a JSON file.
type SettingsStore struct {
	path string
}

// NewSettingsStore creates a store backed by the given file path.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Load reads settings from disk. A missing or unreadable file yields the
// defaults; the stored download folder has its "~" prefix expanded.
func (s *SettingsStore) Load() Settings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return DefaultSettings()
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings()
	}

	settings.DownloadFolderPath = expandHome(settings.DownloadFolderPath)
	settings.ConcurrentDownloadsLimit = ClampConcurrency(settings.ConcurrentDownloadsLimit)
	return settings
}

// Save writes settings to disk. The download folder is stored with the home
// directory collapsed to "~" so the file stays portable across machines.
func (s *SettingsStore) Save(settings Settings) error {
	out := settings
	out.DownloadFolderPath = collapseHome(out.DownloadFolderPath)

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}

func collapseHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}
