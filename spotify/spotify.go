package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sangam-music/sangam/models"
	"github.com/sangam-music/sangam/shared"
	"github.com/sangam-music/sangam/utils"
)

const (
	tokenEndpoint  = "https://accounts.spotify.com/api/token"
	searchEndpoint = "https://api.spotify.com/v1/search"

	trackURLTemplate = "https://open.spotify.com/track/%s"
	embedURLTemplate = "https://open.spotify.com/embed/track/%s"

	authTimeout   = 10 * time.Second
	searchTimeout = 12 * time.Second

	// Refresh a minute early so a token never expires mid-request
	tokenSafetyMargin = 60 * time.Second
	defaultExpiresIn  = 3600
)

// Client searches the Spotify track catalog using the client credentials
// grant. The access token is cached on the client and refreshed on expiry.
type Client struct {
	clientId     string
	clientSecret string

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time

	TokenURL   string
	SearchURL  string
	HTTPClient *http.Client
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type searchResponse struct {
	Tracks struct {
		Items []track `json:"items"`
	} `json:"tracks"`
}

type track struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	DurationMs   int               `json:"duration_ms"`
	PreviewURL   string            `json:"preview_url"`
	ExternalURLs map[string]string `json:"external_urls"`
	Album        album             `json:"album"`
	Artists      []artist          `json:"artists"`
}

type album struct {
	Name        string  `json:"name"`
	ReleaseDate string  `json:"release_date"`
	Images      []image `json:"images"`
}

type artist struct {
	Name string `json:"name"`
}

type image struct {
	URL string `json:"url"`
}

func NewClient(clientId, clientSecret string) *Client {
	return &Client{
		clientId:     clientId,
		clientSecret: clientSecret,
		TokenURL:     tokenEndpoint,
		SearchURL:    searchEndpoint,
		HTTPClient:   utils.NewHTTPClient(),
	}
}

// token returns a cached access token, refreshing it when expired. An empty
// token with a nil error means credentials aren't configured and Spotify
// search should be skipped rather than treated as a failure.
func (c *Client) token() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	if c.clientId == "" || c.clientSecret == "" {
		slog.Debug("Spotify credentials missing, skipping auth")
		return "", nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "POST", c.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build spotify auth request: %w", err)
	}
	req.SetBasicAuth(c.clientId, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach spotify auth endpoint: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("spotify auth failed: %d %s", res.StatusCode, body)
	}

	var token tokenResponse
	if err := json.NewDecoder(res.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("failed to decode spotify auth response: %w", err)
	}

	expiresIn := token.ExpiresIn
	if expiresIn == 0 {
		expiresIn = defaultExpiresIn
	}

	c.accessToken = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(expiresIn)*time.Second - tokenSafetyMargin)
	slog.Info("Spotify token obtained successfully")
	return c.accessToken, nil
}

// Search queries the Spotify track catalog for an artist. A nil slice with a
// nil error means Spotify isn't configured.
func (c *Client) Search(artistName string, limit int) ([]models.Song, error) {
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	query := fmt.Sprintf(`artist:"%s" genre:bollywood OR genre:hindi OR genre:indian`, artistName)

	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", c.SearchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build spotify search request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	params := req.URL.Query()
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", fmt.Sprint(limit))
	params.Set("market", "IN")
	req.URL.RawQuery = params.Encode()

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach spotify search endpoint: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("spotify search failed: %d %s", res.StatusCode, body)
	}

	var result searchResponse
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode spotify search response: %w", err)
	}

	var songs []models.Song
	for _, t := range result.Tracks.Items {
		songs = append(songs, mapTrack(t))
	}
	slog.Info("Spotify search complete",
		slog.String("artist", artistName),
		slog.Int("results", len(songs)),
	)
	return songs, nil
}

func mapTrack(t track) models.Song {
	var thumbnail string
	if len(t.Album.Images) > 0 {
		thumbnail = t.Album.Images[0].URL
	}

	var artists []string
	for _, a := range t.Artists {
		artists = append(artists, a.Name)
	}

	var year string
	if len(t.Album.ReleaseDate) >= 4 {
		year = t.Album.ReleaseDate[:4]
	}

	return models.Song{
		Title:      t.Name,
		Artist:     strings.Join(artists, ", "),
		Album:      t.Album.Name,
		SpotifyID:  t.ID,
		PreviewURL: t.PreviewURL,
		Thumbnail:  thumbnail,
		Duration:   formatDuration(t.DurationMs),
		Year:       year,
		Source:     shared.SOURCE_SPOTIFY,
		PlayURL:    t.ExternalURLs["spotify"],
		EmbedURL:   EmbedURL(t.ID),
	}
}

// formatDuration renders track length in milliseconds as M:SS. A missing
// duration_ms is plain 0:00; only a nonsensical negative is a parse failure.
func formatDuration(ms int) string {
	if ms < 0 {
		return shared.DEFAULT_DURATION
	}
	seconds := ms / 1000
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func TrackURL(id string) string {
	return fmt.Sprintf(trackURLTemplate, id)
}

func EmbedURL(id string) string {
	return fmt.Sprintf(embedURLTemplate, id)
}
