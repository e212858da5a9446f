package models

// Song is the normalised schema shared by every catalog. Each song comes
// entirely from a single source; adapters never merge fields across platforms.
type Song struct {
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Album      string `json:"album,omitempty"`
	YoutubeID  string `json:"youtube_id,omitempty"`
	SpotifyID  string `json:"spotify_id,omitempty"`
	PreviewURL string `json:"preview_url,omitempty"`
	Thumbnail  string `json:"thumbnail,omitempty"`
	Year       string `json:"year"`
	Duration   string `json:"duration"`
	Source     string `json:"source"`
	PlayURL    string `json:"play_url"`
	EmbedURL   string `json:"embed_url,omitempty"`
}
