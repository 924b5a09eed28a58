package api

import "time"

// Payload identifies the caller on every tenant-scoped endpoint.
type Payload struct {
	Type     string `json:"type" validate:"required" example:"tutor"`
	TenantId string `json:"tenantId" validate:"required" example:"tenant-42"`
	FileName string `json:"filename,omitempty"`
}

type UploadResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	DocumentCount int    `json:"document_count,omitempty"`
	Deduplicated  bool   `json:"deduplicated,omitempty"`
}

type QueryRequest struct {
	Query   string   `json:"query" validate:"required"`
	Payload *Payload `json:"payload,omitempty"`
}

type QueryResponse struct {
	Success   bool   `json:"success"`
	Response  string `json:"response"`
	QueryType string `json:"query_type"`
}

type NoteInfoResponse struct {
	FileName   string `json:"filename"`
	UploadTime string `json:"upload_time,omitempty"`
	ChunkCount int    `json:"chunk_count"`
}

type DeleteNotesResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	FileName  string    `json:"filename,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type AddTutorResponse struct {
	Success             bool   `json:"success"`
	Message             string `json:"message"`
	TenantUploadsFolder string `json:"tenant_uploads_folder,omitempty"`
}

type AddPromptRequest struct {
	TenantId   string `json:"tenantId" validate:"required"`
	Type       string `json:"type" validate:"required"`
	PromptType string `json:"prompt_type" validate:"required" example:"reading"`
	Prompt     string `json:"prompt" validate:"required"`
}

type HealthResponse struct {
	Status           string `json:"status" example:"healthy"`
	Timestamp        string `json:"timestamp"`
	OpenAIConfigured bool   `json:"openai_configured"`
	VectorStoreReady bool   `json:"vector_store_ready"`
	NotesCount       int    `json:"notes_count"`
	Error            string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code" example:"400"`
	Detail  string `json:"detail" example:"Query cannot be empty"`
}

type RootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Timestamp string            `json:"timestamp"`
	Endpoints map[string]string `json:"endpoints"`
}
