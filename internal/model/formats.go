package model

// AudioOnlyFormat is the yt-dlp format string selected by the "Audio Only"
// quality option.
const AudioOnlyFormat = "bestaudio/best"

// QualityOptions maps quality display names to yt-dlp format strings.
var QualityOptions = map[string]string{
	"Best":       "bestvideo+bestaudio/best",
	"4K":         "bestvideo[height<=2160]+bestaudio/best[height<=2160]",
	"1440p":      "bestvideo[height<=1440]+bestaudio/best[height<=1440]",
	"1080p":      "bestvideo[height<=1080]+bestaudio/best[height<=1080]",
	"720p":       "bestvideo[height<=720]+bestaudio/best[height<=720]",
	"480p":       "bestvideo[height<=480]+bestaudio/best[height<=480]",
	"360p":       "bestvideo[height<=360]+bestaudio/best[height<=360]",
	"Audio Only": AudioOnlyFormat,
}

// QualityOptionsList orders quality names for display, highest first.
var QualityOptionsList = []string{"Best", "4K", "1440p", "1080p", "720p", "480p", "360p", "Audio Only"}

// VideoFormatOptions maps container display names to file extensions.
var VideoFormatOptions = map[string]string{
	"MP4":  "mp4",
	"WebM": "webm",
	"MKV":  "mkv",
}

var VideoFormatOptionsList = []string{"MP4", "WebM", "MKV"}

// AudioFormatOptions maps audio format display names to file extensions,
// used when the "Audio Only" quality is selected.
var AudioFormatOptions = map[string]string{
	"M4A": "m4a",
	"MP3": "mp3",
	"OGG": "ogg",
}

var AudioFormatOptionsList = []string{"M4A", "MP3", "OGG"}

// SubtitleLanguageOptions maps display names to subtitle language codes.
var SubtitleLanguageOptions = map[string]string{
	"English":             "en",
	"Chinese (Simplified)": "zh-Hans",
	"Spanish":             "es",
	"French":              "fr",
	"German":              "de",
	"Japanese":            "ja",
	"Korean":              "ko",
	"All Languages":       "all",
}

var SubtitleLanguageOptionsList = []string{
	"English", "Chinese (Simplified)", "Spanish", "French", "German",
	"Japanese", "Korean", "All Languages",
}

// FormatString returns the yt-dlp format string for a quality display name,
// falling back to "best" for unknown values.
func FormatString(quality string) string {
	if f, ok := QualityOptions[quality]; ok {
		return f
	}
	return "best"
}

// VideoFormatExt returns the file extension for a video format display name,
// falling back to "mp4".
func VideoFormatExt(name string) string {
	if ext, ok := VideoFormatOptions[name]; ok {
		return ext
	}
	return "mp4"
}

// AudioFormatExt returns the file extension for an audio format display name,
// falling back to "m4a".
func AudioFormatExt(name string) string {
	if ext, ok := AudioFormatOptions[name]; ok {
		return ext
	}
	return "m4a"
}

// SubtitleLangCode returns the language code for a subtitle display name,
// falling back to "en".
func SubtitleLangCode(name string) string {
	if code, ok := SubtitleLanguageOptions[name]; ok {
		return code
	}
	return "en"
}
