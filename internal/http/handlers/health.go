package handlers

import (
	"net/http"
	"time"

	"github.com/pribylovaa/chirper/internal/http/dto"
)

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}
