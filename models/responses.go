package models

type SongsResponse struct {
	Success bool   `json:"success"`
	Songs   []Song `json:"songs"`
}

type HealthResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	APIs    HealthAPIState `json:"apis"`
}

type HealthAPIState struct {
	YouTube bool `json:"youtube"`
	Spotify bool `json:"spotify"`
}

type PlayResponse struct {
	Success  bool   `json:"success"`
	PlayURL  string `json:"play_url"`
	EmbedURL string `json:"embed_url"`
	Source   string `json:"source"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
