package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/tutoragent/NotesAPI/internal/adapter"
	"github.com/tutoragent/NotesAPI/internal/api"
	"github.com/tutoragent/NotesAPI/internal/config"
)

var allowedExtensions = map[string]bool{
	".txt":  true,
	".docx": true,
	".pdf":  true,
	".doc":  true,
}

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response: %v", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, detail string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(httpCode, detail))
}

func validateContext(ctx context.Context) bool {
	logRH.With("traceId:", ctx.Value(config.TRACE_ID_KEY))
	if ctx.Err() != nil {
		logRH.Warn("context error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true

	}
}

func validatePayload(p *api.Payload) bool {
	return p != nil && p.Type != "" && p.TenantId != ""
}

func allowedExtension(fileName string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(fileName))]
}

// uploadDirFor mirrors the tenant-folder rule: tutor uploads land in a
// tenant subfolder, anything else in the shared uploads root.
func uploadDirFor(payloadType string, tenantId string) string {
	if payloadType == "tutor" {
		return filepath.Join(config.UploadsRootDir, tenantId)
	}
	return config.UploadsRootDir
}

// saveFileWithConflictResolution writes content under uploadDir, suffixing
// name_N.ext until the name is free. Returns the final name and path.
func saveFileWithConflictResolution(uploadDir string, fileName string, content []byte) (string, string, error) {
	if err := os.MkdirAll(uploadDir, 0750); err != nil {
		return "", "", err
	}

	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	ext := filepath.Ext(fileName)

	finalName := fileName
	destinationPath := filepath.Join(uploadDir, finalName)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(destinationPath); os.IsNotExist(err) {
			break
		}
		finalName = fmt.Sprintf("%s_%d%s", base, counter, ext)
		destinationPath = filepath.Join(uploadDir, finalName)
	}

	if err := os.WriteFile(destinationPath, content, 0640); err != nil {
		return "", "", err
	}
	return finalName, destinationPath, nil
}
