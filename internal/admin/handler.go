package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/sagrapp/backend/internal/models"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// GetStats handles GET /api/v1/admin/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetStats()
	if err != nil {
		log.Printf("[admin] stats error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load stats"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// ListUsers handles GET /api/v1/admin/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers()
	if err != nil {
		log.Printf("[admin] list users error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load users"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

// ListDecisions handles GET /api/v1/admin/decisions?q=...
func (h *Handler) ListDecisions(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListDecisions(r.URL.Query().Get("q"))
	if err != nil {
		log.Printf("[admin] list decisions error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load decisions"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"decisions": records})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
