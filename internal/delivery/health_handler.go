package delivery

import (
	"net/http"

	"github.com/Sameer-09816/api/internal/models"
)

const Version = "1.1.0"

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthStatus{
		Status:  "ok",
		Version: Version,
	})
}
