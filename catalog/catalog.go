// Package catalog aggregates song search results across the configured
// platforms and fills in sample data when nothing real is available.
package catalog

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sangam-music/sangam/models"
	"github.com/sangam-music/sangam/shared"
	"github.com/sangam-music/sangam/spotify"
	"github.com/sangam-music/sangam/youtube"
)

// VideoCatalog is the surface the YouTube client exposes to aggregation
type VideoCatalog interface {
	Search(artist string, limit int) ([]models.Song, error)
	SearchMood(query string) ([]models.Song, error)
}

// TrackCatalog is the surface the Spotify client exposes to aggregation
type TrackCatalog interface {
	Search(artist string, limit int) ([]models.Song, error)
}

type Service struct {
	videos VideoCatalog
	tracks TrackCatalog
}

func NewService(videos VideoCatalog, tracks TrackCatalog) *Service {
	return &Service{
		videos: videos,
		tracks: tracks,
	}
}

// SearchByArtist queries YouTube first, then Spotify for any shortfall. When
// neither platform returns anything, deterministic sample songs stand in so
// the caller never sees an empty list.
func (s *Service) SearchByArtist(artist string, limit int) []models.Song {
	if limit < 0 {
		limit = 0
	}

	songs, err := s.videos.Search(artist, limit)
	if err != nil {
		slog.Error("YouTube search failed", slog.String("artist", artist), slog.String("error", err.Error()))
		songs = nil
	}

	if len(songs) < limit {
		remaining := limit - len(songs)
		tracks, err := s.tracks.Search(artist, remaining)
		if err != nil {
			slog.Error("Spotify search failed", slog.String("artist", artist), slog.String("error", err.Error()))
		} else {
			songs = append(songs, tracks...)
		}
	}

	if len(songs) == 0 {
		songs = sampleSongs(artist, limit)
	}

	if len(songs) > limit {
		songs = songs[:limit]
	}
	return songs
}

// SearchByMood maps a mood keyword to a search query and tries YouTube. When
// that yields nothing the fixed per-mood list is returned instead.
func (s *Service) SearchByMood(mood string) []models.Song {
	query, ok := moodQueries[strings.ToLower(mood)]
	if !ok {
		query = defaultMoodQuery
	}

	songs, err := s.videos.SearchMood(query)
	if err != nil {
		slog.Error("YouTube mood search failed", slog.String("mood", mood), slog.String("error", err.Error()))
	}
	if len(songs) > 0 {
		return songs
	}
	return moodSamples(mood)
}

// PlaybackURLs builds the play and embed URL pair for a song without any
// network call. Unknown sources are a client error.
func PlaybackURLs(songId, source string) (string, string, error) {
	switch source {
	case shared.SOURCE_YOUTUBE:
		return youtube.WatchURL(songId), youtube.EmbedURL(songId), nil
	case shared.SOURCE_SPOTIFY:
		return spotify.TrackURL(songId), spotify.EmbedURL(songId), nil
	default:
		return "", "", fmt.Errorf("unsupported source %q", source)
	}
}

func sampleSongs(artist string, limit int) []models.Song {
	var songs []models.Song
	for i := 0; i < limit; i++ {
		songs = append(songs, models.Song{
			Title:     fmt.Sprintf("%s Song %d", artist, i+1),
			Artist:    artist,
			Year:      fmt.Sprintf("202%d", i%5),
			Duration:  fmt.Sprintf("%d:%02d", 3+i%3, 20+i*15%60),
			Source:    shared.SOURCE_SAMPLE,
			PlayURL:   fmt.Sprintf("#sample-%d", i),
			Thumbnail: shared.PLACEHOLDER_THUMBNAIL,
		})
	}
	return songs
}

func moodSamples(mood string) []models.Song {
	entries, ok := moodFallbacks[strings.ToLower(mood)]
	if !ok {
		entries = moodFallbacks["happy"]
	}
	songs := make([]models.Song, 0, len(entries))
	for _, entry := range entries {
		entry.Source = shared.SOURCE_SAMPLE
		entry.PlayURL = fmt.Sprintf("#sample-%s", mood)
		entry.Thumbnail = shared.PLACEHOLDER_THUMBNAIL
		songs = append(songs, entry)
	}
	return songs
}
