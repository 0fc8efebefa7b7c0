package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/greenkartlabs/greenkart-backend/pkg/config"
)

var defaultCORSOrigins = []string{
	"http://localhost:5000", // local dev, same origin as the API
	"http://localhost:5173", // Vite dev server
}

// CORS returns middleware that applies the API's allowed origin policy.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = defaultCORSOrigins
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "session_id", "X-Requested-With"},
		ExposedHeaders:   []string{"session_id"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
