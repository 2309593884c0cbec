// Package credentials resolves the cookie file to use for a given URL from
// the per-platform paths configured in settings.
package credentials

import "strings"

// Mapping holds the configured cookie file paths per platform. Empty values
// mean "proceed without credentials".
type Mapping struct {
	Bilibili    string
	Xiaohongshu string
	Facebook    string
}

// Resolve returns the cookie file path applicable to url, or "" when the
// platform is unmatched or has no configured path.
func Resolve(url string, m Mapping) string {
	lower := strings.ToLower(url)
	switch {
	case strings.Contains(lower, "bilibili.com") || strings.Contains(lower, "b23.tv"):
		return m.Bilibili
	case strings.Contains(lower, "xiaohongshu.com") || strings.Contains(lower, "xhslink.com"):
		return m.Xiaohongshu
	case strings.Contains(lower, "facebook.com") || strings.Contains(lower, "fb.watch"):
		return m.Facebook
	}
	return ""
}
