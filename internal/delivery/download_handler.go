package delivery

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Sameer-09816/api/internal/domain"
	"github.com/Sameer-09816/api/internal/models"
	"github.com/Sameer-09816/api/internal/ports"
)

type DownloadHandler struct {
	threads ports.ThreadService
	log     *zap.Logger
}

func NewDownloadHandler(threads ports.ThreadService, log *zap.Logger) *DownloadHandler {
	return &DownloadHandler{
		threads: threads,
		log:     log,
	}
}

// GET /download?url_or_id=...
//
// The only place errors are recovered: every failure from the pipeline is
// mapped to a status code and a caller-safe message here. Causes outside
// the known taxonomy are logged and reported generically.
func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	urlOrID := r.URL.Query().Get("url_or_id")

	result, err := h.threads.Download(r.Context(), urlOrID)
	if err != nil {
		h.writeError(w, urlOrID, err)
		return
	}

	h.log.Info("content retrieved",
		zap.String("url_or_id", urlOrID),
		zap.Int("links", len(result.URL)),
	)
	writeJSON(w, http.StatusOK, result)
}

func (h *DownloadHandler) writeError(w http.ResponseWriter, urlOrID string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		h.log.Warn("invalid input", zap.String("url_or_id", urlOrID))
		writeJSON(w, http.StatusBadRequest, models.MediaResult{
			Message: "Invalid Threads URL or ID format",
		})
	case errors.Is(err, domain.ErrContentNotFound):
		h.log.Warn("content not found", zap.String("url_or_id", urlOrID))
		writeJSON(w, http.StatusNotFound, models.MediaResult{
			Message: "Content not found",
		})
	case errors.Is(err, domain.ErrNoDownloadableItems):
		h.log.Warn("no downloadable content", zap.String("url_or_id", urlOrID))
		writeJSON(w, http.StatusNotFound, models.MediaResult{
			Message: "No downloadable content found",
		})
	case errors.Is(err, domain.ErrNoDownloadLinks):
		h.log.Warn("no download links", zap.String("url_or_id", urlOrID))
		writeJSON(w, http.StatusNotFound, models.MediaResult{
			Message: "No download links available",
		})
	default:
		h.log.Error("request processing failed",
			zap.String("url_or_id", urlOrID),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, models.MediaResult{
			Message: "Error processing your request",
		})
	}
}
