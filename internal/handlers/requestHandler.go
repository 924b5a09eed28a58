package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/tutoragent/NotesAPI/internal/adapter"
	"github.com/tutoragent/NotesAPI/internal/api"
	"github.com/tutoragent/NotesAPI/internal/config"
	"github.com/tutoragent/NotesAPI/internal/rag/notes"
	"github.com/tutoragent/NotesAPI/internal/tutor"
	"github.com/tutoragent/NotesAPI/internal/tutor/prompts"
	"github.com/tutoragent/NotesAPI/pkg/logger_i"
)

var (
	handlerInstance *NoteHandler //private singleton
	once            sync.Once
	logRH           *logger_i.Logger
	logNH           *logger_i.Logger
)

type NoteHandler struct {
	noteStore    notes.Store
	tutorService tutor.Service
	promptStore  prompts.OverrideStore
	settings     config.Settings
}

func Init(noteStore notes.Store, tutorService tutor.Service, promptStore prompts.OverrideStore, settings config.Settings) {
	once.Do(func() {
		handlerInstance = &NoteHandler{
			noteStore:    noteStore,
			tutorService: tutorService,
			promptStore:  promptStore,
			settings:     settings,
		}

		logRH = logger_i.NewLogger("RequestHandler")
		logNH = logger_i.NewLogger("NoteHandler")
		logRH.Info("Starting note handlers")
	})
}

// UploadHandler godoc
// @Summary      Upload a notes file
// @Description  Receives a file via multipart/form-data with a JSON payload field, saves it into the tenant's uploads folder, and embeds it into the tenant's collection. Re-uploading unchanged content is a no-op.
// @Tags         Notes
// @Accept       multipart/form-data
// @Produce      json
// @Param        payload  formData  string  true  "JSON string with 'type' and 'tenantId'"
// @Param        file     formData  file    true  "The .txt, .docx, .pdf or .doc file to upload"
// @Success      200  {object}  api.UploadResponse  "File embedded (or deduplicated)"
// @Failure      400  {object}  api.ErrorResponse   "Bad payload, file type or size"
// @Failure      500  {object}  api.ErrorResponse   "Storage or embedding failure"
// @Router       /upload [post]
func UploadHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "File too large or bad request")
		return
	}

	var payload api.Payload
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &payload); err != nil || !validatePayload(&payload) {
		logRH.Warn("Bad upload payload", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Payload must be a JSON string with 'type' and 'tenantId' fields")
		return
	}

	fileReader, fileMetadata, err := r.FormFile("file")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Could not retrieve file")
		return
	}
	defer fileReader.Close()

	if !allowedExtension(fileMetadata.Filename) {
		logRH.Warn("Unsupported file type", "file", fileMetadata.Filename)
		WriteErrorResponse(w, http.StatusBadRequest, "Only .txt, .docx, .pdf and .doc files are supported")
		return
	}

	content, err := io.ReadAll(io.LimitReader(fileReader, config.MaxUploadBytes+1))
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, "Read error")
		return
	}
	if len(content) > config.MaxUploadBytes {
		logRH.Warn("File too large", "file", fileMetadata.Filename, "bytes", len(content))
		WriteErrorResponse(w, http.StatusBadRequest, "File size exceeds 10MB limit")
		return
	}

	targetDir := uploadDirFor(payload.Type, payload.TenantId)
	finalName, destinationPath, err := saveFileWithConflictResolution(targetDir, fileMetadata.Filename, content)
	if err != nil {
		logRH.Error("Could not save upload", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	result, err := handlerInstance.noteStore.Ingest(r.Context(), payload.TenantId, finalName, destinationPath)
	if err != nil {
		// The saved file must not outlive a failed ingest.
		if removeErr := os.Remove(destinationPath); removeErr != nil && !os.IsNotExist(removeErr) {
			logRH.Warn("Could not clean up file after failed processing", "path", destinationPath, "error", removeErr)
		}
		if errors.Is(err, notes.ErrEmptyDocument) {
			WriteErrorResponse(w, http.StatusBadRequest, "Failed to process the uploaded file. Please check the file format and content.")
			return
		}
		logRH.Error("Ingest failed", "file", finalName, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error while processing file")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToUploadResponse(finalName, result))
}

// QueryHandler godoc
// @Summary      Ask a question or generate a paper
// @Description  Classifies the query (general, reading paper, writing paper), retrieves tenant context and returns the formatted answer. Use 'paper 1' or 'paper 2' keywords to request papers.
// @Tags         Query
// @Accept       json
// @Produce      json
// @Param        request  body      api.QueryRequest  true  "Query text and optional payload"
// @Success      200      {object}  api.QueryResponse
// @Failure      400      {object}  api.ErrorResponse  "Empty or over-length query"
// @Failure      500      {object}  api.ErrorResponse
// @Router       /query [post]
func QueryHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	var requestData api.QueryRequest
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logRH.Error("Couldn't close the Query handler reader :", err)
		}
	}(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		logRH.Warn("Bad Query Request: ", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return
	}

	if strings.TrimSpace(requestData.Query) == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "Query cannot be empty")
		return
	}
	// The limit is characters, not bytes, so multibyte queries measure fairly.
	if utf8.RuneCountInString(requestData.Query) > config.MaxQueryLength {
		logRH.Warn("Query too long", "characters", utf8.RuneCountInString(requestData.Query))
		WriteErrorResponse(w, http.StatusBadRequest, "Query exceeds maximum length of 1000 characters")
		return
	}

	// Student payloads select their tenant's collection, everything else uses
	// the default one.
	tenantId := ""
	if requestData.Payload != nil && requestData.Payload.Type == "student" && requestData.Payload.TenantId != "" {
		tenantId = requestData.Payload.TenantId
		logRH.Debug("Processing query for student", "tenant", tenantId)
	}

	answer, queryType, err := handlerInstance.tutorService.ProcessQuery(r.Context(), tenantId, requestData.Query)
	if err != nil {
		logRH.Error("Query processing failed", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error while processing query")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToQueryResponse(answer, queryType))
}
