package config

import (
	"log/slog"
	"strconv"
	"strings"

	golobby "github.com/golobby/config/v3"
	"github.com/golobby/config/v3/pkg/feeder"
)

const (
	defaultPort        = 5000
	defaultFrontendDir = "./static"
)

type Config struct {
	Sangam  SangamConfig
	Spotify SpotifyConfig
	YouTube YouTubeConfig
}

type SangamConfig struct {
	Port        string `env:"PORT"`
	Debug       string `env:"DEBUG"`
	LogLevel    string `env:"LOG_LEVEL"`
	FrontendDir string `env:"FRONTEND_DIR"`
}

type SpotifyConfig struct {
	ClientId     string `env:"SPOTIFY_CLIENT_ID"`
	ClientSecret string `env:"SPOTIFY_CLIENT_SECRET"`
}

type YouTubeConfig struct {
	APIKey string `env:"YOUTUBE_API_KEY"`
}

func Load() (Config, error) {
	var c Config
	if err := golobby.New().AddFeeder(feeder.Env{}).AddStruct(&c).Feed(); err != nil {
		return Config{}, err
	}
	if c.Sangam.FrontendDir == "" {
		c.Sangam.FrontendDir = defaultFrontendDir
	}
	return c, nil
}

// ListenPort falls back silently when PORT is unset or not numeric
func (c *Config) ListenPort() int {
	port, err := strconv.Atoi(c.Sangam.Port)
	if err != nil || port <= 0 {
		return defaultPort
	}
	return port
}

func (c *Config) DebugEnabled() bool {
	return strings.ToLower(c.Sangam.Debug) == "true"
}

func (c *Config) YouTubeEnabled() bool {
	return c.YouTube.APIKey != ""
}

func (c *Config) SpotifyEnabled() bool {
	return c.Spotify.ClientId != "" && c.Spotify.ClientSecret != ""
}

func (c *Config) GetLogLevel() slog.Leveler {
	logLevel := strings.ToLower(c.Sangam.LogLevel)
	if logLevel == "error" {
		return slog.LevelError
	}
	if logLevel == "warning" {
		return slog.LevelWarn
	}
	if logLevel == "info" {
		return slog.LevelInfo
	}
	if logLevel == "debug" {
		return slog.LevelDebug
	}
	if c.DebugEnabled() {
		return slog.LevelDebug
	}
	// default to info if unknown
	return slog.LevelInfo
}
