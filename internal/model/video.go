package model

// Video is the metadata record for one resolvable video returned by the
// external resolver. Playlist-shaped inputs yield several of these from a
// single fetch.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"` // canonical playable URL
	Duration     string `json:"duration,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Uploader     string `json:"uploader,omitempty"`
}
