package shared

const (
	SOURCE_YOUTUBE = "youtube"
	SOURCE_SPOTIFY = "spotify"
	SOURCE_SAMPLE  = "sample"

	// Substituted whenever an upstream duration is missing or unparseable
	DEFAULT_DURATION = "4:20"

	// Mood lookups skip the per-video detail call so every result
	// carries the same stand-in duration
	MOOD_DURATION = "4:30"

	PLACEHOLDER_THUMBNAIL = "https://via.placeholder.com/300x300/667eea/ffffff?text=🎵"

	USER_AGENT = "Sangam/1.0 <github.com/sangam-music/sangam>"
)
