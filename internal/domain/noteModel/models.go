package noteModel

import (
	"time"

	"github.com/tutoragent/NotesAPI/internal/config"
)

type QueryType string
type WorkflowStep string

const (
	QueryTypeGeneral QueryType = "general_query"
	QueryTypeReading QueryType = "reading_paper"
	QueryTypeWriting QueryType = "writing_paper"

	StepStart            WorkflowStep = "Start"
	StepClassified       WorkflowStep = "Classified"
	StepContextRetrieved WorkflowStep = "ContextRetrieved"
	StepGenerated        WorkflowStep = "Generated"
	StepFormatted        WorkflowStep = "Formatted"
)

// Document is one ingested file, identified by (tenant, file name).
type Document struct {
	TenantId    string    `json:"tenant_id"`
	FileName    string    `json:"file_name"`
	SourcePath  string    `json:"file_path"`
	Fingerprint string    `json:"file_hash"`
	UploadTime  time.Time `json:"upload_time"`
}

// NoteChunk is the atomic embedded unit. It carries its document linkage as
// payload metadata, never as an ownership pointer in the store.
type NoteChunk struct {
	Doc            Document
	ChunkId        string `json:"chunk_id"`
	Chunk          string `json:"content"`
	PageNum        int    `json:"page_num"`
	ChunkPageOrder int    `json:"chunk_order"`
}

// ChunkMeta is the payload projection the store reads back when listing.
type ChunkMeta struct {
	FileName    string
	FilePath    string
	Fingerprint string
	UploadTime  string
	TenantId    string
}

// NoteInfo is the per-file listing entry: earliest upload time plus how many
// chunks the file currently contributes.
type NoteInfo struct {
	FileName   string `json:"filename"`
	UploadTime string `json:"upload_time"`
	FilePath   string `json:"file_path"`
	ChunkCount int    `json:"chunk_count"`
}

type IngestResult struct {
	ChunkCount   int
	Deduplicated bool
}

type RetrievedContext struct {
	Context string
	Sources int
}

// TutorState is the transient per-request workflow record. It is created at
// workflow entry and discarded at exit, never persisted.
type TutorState struct {
	Input           string
	QueryType       QueryType
	Context         string
	Sources         int
	NoIndex         bool
	Response        string
	FormattedOutput string
	CurrentStep     WorkflowStep
}

// CollectionName derives the deterministic per-tenant collection name. An
// absent tenant id maps to the default collection.
func CollectionName(tenantId string) string {
	if tenantId == "" {
		return config.DefaultTenantName
	}
	return config.TenantPrefix + tenantId
}

type DocType string

var (
	PDF  DocType = "PDF"
	DOCX DocType = "DOCX"
	TXT  DocType = "TXT"
	ERR  DocType = "ERROR"
)
