package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sangam-music/sangam/models"
	"github.com/sangam-music/sangam/shared"
	"github.com/sangam-music/sangam/utils"
)

const (
	searchEndpoint = "https://www.googleapis.com/youtube/v3/search"
	videosEndpoint = "https://www.googleapis.com/youtube/v3/videos"

	watchURLTemplate = "https://www.youtube.com/watch?v=%s"
	embedURLTemplate = "https://www.youtube.com/embed/%s?autoplay=1"

	searchTimeout = 12 * time.Second

	musicCategoryId = "10"
	regionCode      = "IN"

	moodResultCount = 8
)

// Markers stripped from video titles, applied in order
var marketingMarkers = []string{
	"Official Video", "Official Music Video", "Official Audio",
	"Video Song", "Full Video", "HD Video", "Lyrical Video",
	"Official Lyric Video", "Music Video", "[Official Video]",
	"| Official Video", "- Official Video",
}

var durationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// Client searches the YouTube Data API for songs, shaping results into the
// normalised song schema.
type Client struct {
	apiKey string

	SearchURL  string
	VideosURL  string
	HTTPClient *http.Client
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	ID      videoRef `json:"id"`
	Snippet snippet  `json:"snippet"`
}

type videoRef struct {
	VideoId string `json:"videoId"`
}

type videosResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID             string         `json:"id"`
	Snippet        snippet        `json:"snippet"`
	ContentDetails contentDetails `json:"contentDetails"`
}

type snippet struct {
	Title        string     `json:"title"`
	ChannelTitle string     `json:"channelTitle"`
	PublishedAt  string     `json:"publishedAt"`
	Thumbnails   thumbnails `json:"thumbnails"`
}

type contentDetails struct {
	Duration string `json:"duration"`
}

type thumbnails struct {
	Maxres  thumbnail `json:"maxres"`
	High    thumbnail `json:"high"`
	Medium  thumbnail `json:"medium"`
	Default thumbnail `json:"default"`
}

type thumbnail struct {
	URL string `json:"url"`
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		SearchURL:  searchEndpoint,
		VideosURL:  videosEndpoint,
		HTTPClient: utils.NewHTTPClient(),
	}
}

// Search looks up songs for an artist. It issues a search call followed by a
// single batched details call for durations and statistics. A nil slice with
// a nil error means YouTube isn't configured.
func (c *Client) Search(artistName string, limit int) ([]models.Song, error) {
	if c.apiKey == "" {
		slog.Debug("YouTube API key not provided")
		return nil, nil
	}

	query := fmt.Sprintf("%s hindi bollywood songs", artistName)
	search, err := c.search(query, limit)
	if err != nil {
		return nil, err
	}

	var videoIds []string
	for _, item := range search.Items {
		if item.ID.VideoId != "" {
			videoIds = append(videoIds, item.ID.VideoId)
		}
	}
	if len(videoIds) == 0 {
		return nil, nil
	}

	details, err := c.videoDetails(videoIds)
	if err != nil {
		return nil, err
	}

	var songs []models.Song
	for _, item := range details.Items {
		songs = append(songs, models.Song{
			Title:     cleanTitle(item.Snippet.Title),
			Artist:    artistName,
			YoutubeID: item.ID,
			Thumbnail: bestThumbnail(item.Snippet.Thumbnails),
			Year:      publishYear(item.Snippet.PublishedAt),
			Duration:  parseDuration(item.ContentDetails.Duration),
			Source:    shared.SOURCE_YOUTUBE,
			PlayURL:   WatchURL(item.ID),
			EmbedURL:  EmbedURL(item.ID),
		})
	}
	slog.Info("YouTube search complete",
		slog.String("artist", artistName),
		slog.Int("results", len(songs)),
	)
	return songs, nil
}

// SearchMood looks up songs for a mood query. Only the search call is made,
// so results carry channel titles as artists and a stand-in duration.
func (c *Client) SearchMood(query string) ([]models.Song, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	search, err := c.search(query, moodResultCount)
	if err != nil {
		return nil, err
	}

	var songs []models.Song
	for _, item := range search.Items {
		if item.ID.VideoId == "" {
			continue
		}
		artist := item.Snippet.ChannelTitle
		if artist == "" {
			artist = "Unknown Artist"
		}
		songs = append(songs, models.Song{
			Title:     cleanTitle(item.Snippet.Title),
			Artist:    artist,
			YoutubeID: item.ID.VideoId,
			Thumbnail: item.Snippet.Thumbnails.Medium.URL,
			Year:      publishYear(item.Snippet.PublishedAt),
			Duration:  shared.MOOD_DURATION,
			Source:    shared.SOURCE_YOUTUBE,
			PlayURL:   WatchURL(item.ID.VideoId),
			EmbedURL:  EmbedURL(item.ID.VideoId),
		})
	}
	return songs, nil
}

func (c *Client) search(query string, maxResults int) (searchResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", c.SearchURL, nil)
	if err != nil {
		return searchResponse{}, fmt.Errorf("failed to build youtube search request: %w", err)
	}

	params := req.URL.Query()
	params.Set("key", c.apiKey)
	params.Set("q", query)
	params.Set("part", "snippet")
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("type", "video")
	params.Set("regionCode", regionCode)
	params.Set("videoCategoryId", musicCategoryId)
	req.URL.RawQuery = params.Encode()

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return searchResponse{}, fmt.Errorf("failed to reach youtube search endpoint: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return searchResponse{}, fmt.Errorf("youtube search failed: %d %s", res.StatusCode, body)
	}

	var result searchResponse
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return searchResponse{}, fmt.Errorf("failed to decode youtube search response: %w", err)
	}
	return result, nil
}

func (c *Client) videoDetails(videoIds []string) (videosResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", c.VideosURL, nil)
	if err != nil {
		return videosResponse{}, fmt.Errorf("failed to build youtube details request: %w", err)
	}

	params := req.URL.Query()
	params.Set("key", c.apiKey)
	params.Set("id", strings.Join(videoIds, ","))
	params.Set("part", "snippet,contentDetails,statistics")
	req.URL.RawQuery = params.Encode()

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return videosResponse{}, fmt.Errorf("failed to reach youtube videos endpoint: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return videosResponse{}, fmt.Errorf("youtube video details failed: %d %s", res.StatusCode, body)
	}

	var result videosResponse
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return videosResponse{}, fmt.Errorf("failed to decode youtube videos response: %w", err)
	}
	return result, nil
}

// cleanTitle strips marketing boilerplate from a video title
func cleanTitle(title string) string {
	cleaned := title
	for _, marker := range marketingMarkers {
		cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, marker, ""))
	}
	return cleaned
}

// parseDuration converts an ISO 8601 duration like PT4M20S into M:SS with
// total minutes, e.g. PT1H2M3S becomes 62:03
func parseDuration(iso string) string {
	match := durationPattern.FindStringSubmatch(iso)
	if match == nil {
		return shared.DEFAULT_DURATION
	}
	hours := atoi(match[1])
	minutes := atoi(match[2])
	seconds := atoi(match[3])
	return fmt.Sprintf("%d:%02d", hours*60+minutes, seconds)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// bestThumbnail picks the highest resolution tier available
func bestThumbnail(t thumbnails) string {
	for _, candidate := range []string{t.Maxres.URL, t.High.URL, t.Medium.URL, t.Default.URL} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

func publishYear(publishedAt string) string {
	if len(publishedAt) < 4 {
		return ""
	}
	return publishedAt[:4]
}

func WatchURL(id string) string {
	return fmt.Sprintf(watchURLTemplate, id)
}

func EmbedURL(id string) string {
	return fmt.Sprintf(embedURLTemplate, id)
}
