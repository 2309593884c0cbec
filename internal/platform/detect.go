package platform

import (
	"path/filepath"
	"strings"
)

// Platform labels recorded in history and used for folder organization.
const (
	Bilibili    = "Bilibili"
	Xiaohongshu = "Xiaohongshu"
	YouTube     = "YouTube"
	TikTok      = "TikTok"
	Facebook    = "Facebook"
	Other       = "Other"
)

// Detect returns the platform label for a URL based on its domain markers.
func Detect(url string) string {
	lower := strings.ToLower(url)
	switch {
	case strings.Contains(lower, "bilibili.com") || strings.Contains(lower, "b23.tv"):
		return Bilibili
	case strings.Contains(lower, "xiaohongshu.com") || strings.Contains(lower, "xhslink.com"):
		return Xiaohongshu
	case strings.Contains(lower, "youtube.com") || strings.Contains(lower, "youtu.be"):
		return YouTube
	case strings.Contains(lower, "tiktok.com"):
		return TikTok
	case strings.Contains(lower, "facebook.com") || strings.Contains(lower, "fb.watch"):
		return Facebook
	}
	return Other
}

// invalid in folder/file names on at least one supported OS
var unsafeNameChars = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
	"\"", "_", "<", "_", ">", "_", "|", "_",
)

// SanitizeName makes a title safe to use as a folder or file name.
func SanitizeName(name string) string {
	cleaned := unsafeNameChars.Replace(name)
	cleaned = strings.Trim(cleaned, " .")
	if cleaned == "" {
		return "untitled"
	}
	return cleaned
}

// OrganizedPath appends a per-platform subfolder to base for the given URL.
func OrganizedPath(base, url string) string {
	return filepath.Join(base, SanitizeName(Detect(url)))
}
