package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/sangam-music/sangam/catalog"
	"github.com/sangam-music/sangam/config"
	"github.com/sangam-music/sangam/routes"
	"github.com/sangam-music/sangam/spotify"
	"github.com/sangam-music/sangam/youtube"
)

func main() {

	if err := godotenv.Load(); err != nil {
		fmt.Println(err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.GetLogLevel(),
	}))
	slog.SetDefault(logger)

	service := catalog.NewService(
		youtube.NewClient(cfg.YouTube.APIKey),
		spotify.NewClient(cfg.Spotify.ClientId, cfg.Spotify.ClientSecret),
	)

	router := routes.Register(http.NewServeMux(), cfg, service)

	slog.Info("Starting Sangam backend",
		slog.String("youtube", availability(cfg.YouTubeEnabled())),
		slog.String("spotify", availability(cfg.SpotifyEnabled())),
		slog.String("frontend", cfg.Sangam.FrontendDir),
	)

	fmt.Printf("Sangam is running at http://localhost:%d\n", cfg.ListenPort())

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.ListenPort()), router); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func availability(configured bool) string {
	if configured {
		return "Available"
	}
	return "Not configured"
}
