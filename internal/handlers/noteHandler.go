package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/tutoragent/NotesAPI/internal/adapter"
	"github.com/tutoragent/NotesAPI/internal/api"
	"github.com/tutoragent/NotesAPI/internal/config"
)

func decodePayload(w http.ResponseWriter, r *http.Request) (api.Payload, bool) {
	var payload api.Payload
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logNH.Error("Couldn't close the payload reader :", err)
		}
	}(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || !validatePayload(&payload) {
		logNH.Warn("Bad payload", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Payload must be a dict with 'type' and 'tenantId' fields")
		return payload, false
	}
	return payload, true
}

func requireTutor(w http.ResponseWriter, payload api.Payload, action string) bool {
	if payload.Type != "tutor" {
		logNH.Warn("Non-tutor payload rejected", "type", payload.Type, "action", action)
		WriteErrorResponse(w, http.StatusForbidden, "Only tutors can "+action+" tenant-specific notes")
		return false
	}
	return true
}

// ListNotesHandler godoc
// @Summary      List uploaded notes for a tenant
// @Description  Returns one entry per embedded file with its earliest upload time and chunk count. Tutor only.
// @Tags         Notes
// @Accept       json
// @Produce      json
// @Param        payload  body      api.Payload  true  "Payload with type 'tutor' and tenantId"
// @Success      200      {array}   api.NoteInfoResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse  "Type is not 'tutor'"
// @Router       /notes [post]
func ListNotesHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logNH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}
	if !requireTutor(w, payload, "access") {
		return
	}

	infos, err := handlerInstance.noteStore.List(r.Context(), payload.TenantId)
	if err != nil {
		logNH.Error("Listing notes failed", "tenant", payload.TenantId, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error while listing notes")
		return
	}

	logNH.Info("Listed notes", "tenant", payload.TenantId, "count", len(infos))
	writeJsonResponse(w, http.StatusOK, adapter.ToNoteInfoResponses(infos))
}

// DeleteNotesHandler godoc
// @Summary      Delete one note or clear all notes for a tenant
// @Description  With 'filename' set deletes that note's chunks; without it clears the tenant's whole collection. Tutor only.
// @Tags         Notes
// @Accept       json
// @Produce      json
// @Param        payload  body      api.Payload  true  "Payload with type 'tutor', tenantId and optional filename"
// @Success      200      {object}  api.DeleteNotesResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse  "Type is not 'tutor'"
// @Failure      500      {object}  api.ErrorResponse  "Storage failure"
// @Router       /notes [delete]
func DeleteNotesHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logNH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}
	if !requireTutor(w, payload, "delete") {
		return
	}

	if payload.FileName != "" {
		success, err := handlerInstance.noteStore.Delete(r.Context(), payload.TenantId, payload.FileName)
		if err != nil || !success {
			logNH.Error("Failed to delete note", "tenant", payload.TenantId, "file", payload.FileName, "error", err)
			WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete note '"+payload.FileName+"'")
			return
		}
		writeJsonResponse(w, http.StatusOK, adapter.ToDeleteResponse("Note '"+payload.FileName+"' deleted successfully", payload.FileName))
		return
	}

	success, err := handlerInstance.noteStore.Clear(r.Context(), payload.TenantId)
	if err != nil || !success {
		logNH.Error("Failed to clear notes", "tenant", payload.TenantId, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Failed to clear notes from the vector store")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToDeleteResponse("All notes cleared successfully", ""))
}

// AddTutorHandler godoc
// @Summary      Provision a tenant uploads folder
// @Description  Creates uploads/{tenantId} when the payload type is 'tutor'; reports whether it already existed.
// @Tags         Tenants
// @Accept       json
// @Produce      json
// @Param        payload  body      api.Payload  true  "Payload with type and tenantId"
// @Success      200      {object}  api.AddTutorResponse
// @Failure      400      {object}  api.ErrorResponse
// @Router       /add-tutor [post]
func AddTutorHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logNH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	if payload.Type != "tutor" {
		logNH.Info("Payload type is not 'tutor', no folder created")
		writeJsonResponse(w, http.StatusOK, api.AddTutorResponse{
			Success: true,
			Message: "No folder created as type is not 'tutor'",
		})
		return
	}

	tenantUploadsFolder := filepath.Join(config.UploadsRootDir, payload.TenantId)
	created := false
	if _, err := os.Stat(tenantUploadsFolder); os.IsNotExist(err) {
		if err := os.MkdirAll(tenantUploadsFolder, 0750); err != nil {
			logNH.Error("Could not create tenant folder", "tenant", payload.TenantId, "error", err)
			WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		created = true
	}

	message := "Tenant uploads folder already exists for tenantId: " + payload.TenantId
	if created {
		message = "Tenant uploads folder created successfully for tenantId: " + payload.TenantId
	}
	logNH.Info(message)
	writeJsonResponse(w, http.StatusOK, api.AddTutorResponse{
		Success:             true,
		Message:             message,
		TenantUploadsFolder: tenantUploadsFolder,
	})
}

// AddPromptHandler godoc
// @Summary      Store a tenant prompt override
// @Description  Saves a reading or writing paper template for a tenant. The override wins over the built-in default on the next paper query.
// @Tags         Tenants
// @Accept       json
// @Produce      json
// @Param        request  body      api.AddPromptRequest  true  "Tenant, prompt type and template text"
// @Success      200      {object}  api.AddTutorResponse
// @Failure      400      {object}  api.ErrorResponse
// @Router       /add_prompt [post]
func AddPromptHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logNH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	var requestData api.AddPromptRequest
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logNH.Error("Couldn't close the add prompt reader :", err)
		}
	}(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return
	}

	if requestData.TenantId == "" || requestData.Type == "" || requestData.PromptType == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "tenantId, type, and prompt_type are required fields")
		return
	}
	if requestData.PromptType != "reading" && requestData.PromptType != "writing" {
		WriteErrorResponse(w, http.StatusBadRequest, "prompt_type must be either 'reading' or 'writing'")
		return
	}
	if requestData.Prompt == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "prompt cannot be empty")
		return
	}

	if err := handlerInstance.promptStore.SavePrompt(r.Context(), requestData.TenantId, requestData.PromptType, requestData.Prompt); err != nil {
		logNH.Error("Could not save prompt", "tenant", requestData.TenantId, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error while saving prompt")
		return
	}

	logNH.Info("Saved prompt override", "tenant", requestData.TenantId, "type", requestData.PromptType)
	writeJsonResponse(w, http.StatusOK, api.AddTutorResponse{
		Success: true,
		Message: "Prompt saved successfully for tenantId: " + requestData.TenantId,
	})
}
