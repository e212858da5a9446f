package routes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/cors"

	"github.com/sangam-music/sangam/catalog"
	"github.com/sangam-music/sangam/config"
	"github.com/sangam-music/sangam/frontend"
	"github.com/sangam-music/sangam/models"
)

const defaultSearchLimit = 10

func renderJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func Register(mux *http.ServeMux, cfg config.Config, service *catalog.Service) http.Handler {

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		renderJSON(w, http.StatusOK, models.HealthResponse{
			Success: true,
			Message: "API is running",
			APIs: models.HealthAPIState{
				YouTube: cfg.YouTubeEnabled(),
				Spotify: cfg.SpotifyEnabled(),
			},
		})
	})

	mux.HandleFunc("GET /api/search/{artist}", func(w http.ResponseWriter, r *http.Request) {
		artist := r.PathValue("artist")
		limit := defaultSearchLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil {
				limit = parsed
			}
		}
		songs := service.SearchByArtist(artist, limit)
		renderJSON(w, http.StatusOK, models.SongsResponse{Success: true, Songs: songs})
	})

	mux.HandleFunc("GET /api/mood/{mood}", func(w http.ResponseWriter, r *http.Request) {
		songs := service.SearchByMood(r.PathValue("mood"))
		renderJSON(w, http.StatusOK, models.SongsResponse{Success: true, Songs: songs})
	})

	mux.HandleFunc("GET /api/play/{song_id}", func(w http.ResponseWriter, r *http.Request) {
		source := r.URL.Query().Get("source")
		if source == "" {
			source = "youtube"
		}
		playURL, embedURL, err := catalog.PlaybackURLs(r.PathValue("song_id"), source)
		if err != nil {
			renderJSON(w, http.StatusBadRequest, models.ErrorResponse{Success: false, Error: "Unsupported source"})
			return
		}
		renderJSON(w, http.StatusOK, models.PlayResponse{
			Success:  true,
			PlayURL:  playURL,
			EmbedURL: embedURL,
			Source:   source,
		})
	})

	mux.Handle("/", frontend.Handler(cfg.Sangam.FrontendDir))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET"},
		AllowedHeaders: []string{"Origin, Content-Type, Accept"},
	})

	return c.Handler(requestLogger(mux))
}
