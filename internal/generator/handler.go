package generator

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sagrapp/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GenerateQuestions handles POST /api/v1/admin/lessons/{id}/generate-questions
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	lessonID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.GenerateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	drafts, err := h.service.GenerateForLesson(r.Context(), lessonID, req.Count)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Lesson not found"})
			return
		}
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: vErr.Error()})
			return
		}
		log.Printf("[generator] generate error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Generation failed"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"drafts": drafts})
}

// ListDrafts handles GET /api/v1/admin/lessons/{id}/generated-questions
func (h *Handler) ListDrafts(w http.ResponseWriter, r *http.Request) {
	lessonID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	drafts, err := h.service.ListDrafts(lessonID)
	if err != nil {
		log.Printf("[generator] list drafts error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load drafts"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"drafts": drafts})
}

// ReviewDraft handles POST /api/v1/admin/generated-questions/{id}/review
func (h *Handler) ReviewDraft(w http.ResponseWriter, r *http.Request) {
	draftID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.ReviewGeneratedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.service.ReviewDraft(draftID, req.Action); err != nil {
		if errors.Is(err, ErrNotFound) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Draft not found"})
			return
		}
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "reviewed"})
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid id"})
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
