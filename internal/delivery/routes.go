package delivery

import (
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, hDownload *DownloadHandler, hHealth *HealthHandler) {

	// media extraction
	r.Get("/download", hDownload.Download)

	// liveness
	r.Get("/health", hHealth.Health)
}
