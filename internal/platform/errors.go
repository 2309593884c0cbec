package platform

import (
	"fmt"
	"strings"
)

// FFmpegMissingMessage is surfaced when a download fails because the external
// conversion helper is not installed.
const FFmpegMissingMessage = "FFmpeg is required for audio format conversion. Please install FFmpeg and try again."

// FormatErrorMessage translates a raw extractor error into a user-actionable
// message, matched by keyword against the error text and by domain marker
// against the URL. Unmatched errors pass through unchanged.
func FormatErrorMessage(url, raw string) string {
	lower := strings.ToLower(raw)

	switch Detect(url) {
	case Bilibili:
		switch {
		case strings.Contains(lower, "geo-restrict") || strings.Contains(lower, "not available in your region"):
			return "This Bilibili video is not available in your region. You may need to use a VPN or proxy."
		case strings.Contains(lower, "deleted"):
			return "This Bilibili video may have been deleted or is no longer available."
		case strings.Contains(lower, "private") || strings.Contains(lower, "members-only"):
			return "This Bilibili video or collection requires authentication. Please refer to the documentation for cookie setup."
		case strings.Contains(lower, "too many requests") || strings.Contains(lower, "412"):
			return "Too many requests. Bilibili may be rate limiting. Please wait a few minutes and try again."
		case strings.Contains(lower, "empty") && strings.Contains(lower, "playlist"):
			return "The Bilibili collection or user space appears to be empty."
		}
	case Xiaohongshu:
		switch {
		case strings.Contains(lower, "no video formats found"):
			return "This Xiaohongshu content could not be extracted. It may require authentication or is restricted."
		case strings.Contains(lower, "unsupported url"):
			return "The Xiaohongshu URL is not supported or invalid. Please check the URL."
		case strings.Contains(lower, "http error 404") || strings.Contains(lower, "not found"):
			return "This Xiaohongshu content or user could not be found."
		case strings.Contains(lower, "http error 403") || strings.Contains(lower, "forbidden"):
			return "Access denied. This Xiaohongshu content may be private or require authentication. Please refer to the documentation for cookie setup."
		case strings.Contains(lower, "empty") && strings.Contains(lower, "playlist"):
			return "The Xiaohongshu user profile appears to be empty."
		}
	}

	switch {
	case strings.Contains(lower, "network") || strings.Contains(lower, "connection"):
		return fmt.Sprintf("Failed to fetch video. Check your internet connection. Details: %s", raw)
	case strings.Contains(lower, "invalid") || strings.Contains(lower, "not found"):
		return fmt.Sprintf("Invalid or unavailable video URL. Details: %s", raw)
	}

	return raw
}

// FormatDownloadError normalizes a transfer error, checking first for the
// missing-FFmpeg case which gets a dedicated remediation message.
func FormatDownloadError(url string, err error) string {
	raw := err.Error()
	lower := strings.ToLower(raw)
	if strings.Contains(lower, "ffmpeg") || strings.Contains(lower, "ffprobe") {
		return FFmpegMissingMessage
	}
	return FormatErrorMessage(url, raw)
}
