package handlers

import (
	"net/http"
	"time"

	"github.com/tutoragent/NotesAPI/internal/api"
	"github.com/tutoragent/NotesAPI/internal/metrics"
)

// RootHandler godoc
// @Summary      API information
// @Description  Lists the available endpoints.
// @Tags         Status
// @Produce      json
// @Success      200  {object}  api.RootResponse
// @Router       / [get]
func RootHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.RootResponse{
		Message:   "Tutor Agent API",
		Version:   "1.0.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Endpoints: map[string]string{
			"upload":       "POST /upload - Upload notes file with tenant-specific storage",
			"query":        "POST /query - Ask a question or generate papers (use 'paper 1' or 'paper 2' keywords)",
			"notes":        "POST /notes - List uploaded notes for a tenant (tutor only)",
			"add_tutor":    "POST /add-tutor - Provision a tenant uploads folder",
			"add_prompt":   "POST /add_prompt - Add a prompt override for a tenant",
			"health":       "GET /health - Health check",
			"delete_notes": "DELETE /notes - Delete specific file or clear all notes for a tenant (tutor only)",
		},
	})
}

// HealthHandler godoc
// @Summary      Health check
// @Description  Reports credential and vector store reachability for the default collection. A store failure degrades the status instead of erroring.
// @Tags         Status
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Router       /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	health := api.HealthResponse{
		Status:           "healthy",
		Timestamp:        time.Now().Format(time.RFC3339),
		OpenAIConfigured: handlerInstance.settings.GenerationConfigured(),
	}

	notes, err := handlerInstance.noteStore.List(r.Context(), "")
	if err != nil {
		logRH.Warn("Vector store health check failed", "error", err)
		health.Status = "degraded"
		health.Error = err.Error()
	} else {
		health.VectorStoreReady = true
		health.NotesCount = len(notes)
		metrics.SetDefaultCollectionNotesCount(len(notes))
	}

	writeJsonResponse(w, http.StatusOK, health)
}
