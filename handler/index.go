package handler

import (
	"encoding/json"
	"net/http"

	"lokalin/docs"
	"lokalin/models"

	"github.com/rs/zerolog/log"
)

// ServiceInfo is what the API root reports about itself.
type ServiceInfo struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Links       map[string]string `json:"links"`
}

func info() ServiceInfo {
	return ServiceInfo{
		Name:        docs.SwaggerInfo.Title,
		Version:     docs.SwaggerInfo.Version,
		Description: docs.SwaggerInfo.Description,
		Links: map[string]string{
			"docs":       "/swagger/index.html",
			"health":     "/health",
			"categories": "/categories",
			"businesses": "/businesses",
		},
	}
}

// Handler serves the API root. Anything other than "/" is a 404 so the
// serverless rewrite cannot mask unknown paths.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.URL.Path != "/" {
		w.WriteHeader(http.StatusNotFound)
		encode(w, models.Response{Success: false, Message: "Route not found"})
		return
	}

	w.WriteHeader(http.StatusOK)
	encode(w, models.Response{Success: true, Message: "Lokal.in API", Data: info()})
}

func encode(w http.ResponseWriter, body models.Response) {
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn().Err(err).Msg("failed to write root response")
	}
}
