package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tutoragent/NotesAPI/internal/adapter/utils"
	"github.com/tutoragent/NotesAPI/internal/domain/noteModel"
	"github.com/tutoragent/NotesAPI/pkg/logger_i"
)

type RawPage struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
}

var logger *logger_i.Logger

// ExtractPages routes the saved upload to the extractor for its extension
// and returns the raw per-page text.
func ExtractPages(path string) ([]RawPage, error) {
	logger = logger_i.NewLogger("Document Ingestion")

	docType := getDocType(path)
	logger.Debug("Processing document", "path", path, "type", docType)
	if docType == noteModel.ERR {
		return nil, fmt.Errorf("unsupported document type: %s", filepath.Ext(path))
	}
	return extractText(path, docType)
}

func getDocType(docPath string) noteModel.DocType {
	ext := strings.ToLower(filepath.Ext(docPath))
	switch ext {
	case ".pdf":
		return noteModel.PDF
	case ".docx", ".doc", ".rtf":
		return noteModel.DOCX
	case ".txt":
		return noteModel.TXT
	default:
		return noteModel.ERR
	}
}

func extractText(path string, contentType noteModel.DocType) ([]RawPage, error) {
	switch contentType {
	case noteModel.PDF:
		return extractPDF(path)
	case noteModel.DOCX, noteModel.TXT:
		return extractdocxTxtRtf(path)

	default:
		return nil, fmt.Errorf("unsupported content type: %s", contentType)
	}
}

// PrepareChunks splits the extracted pages and tags every chunk with its
// document metadata (tenant, file name, path, fingerprint, upload time).
func PrepareChunks(pages []RawPage, doc noteModel.Document) []noteModel.NoteChunk {
	var allChunks []noteModel.NoteChunk

	// Limits for the splitter
	const maxChunkSize = 1000 // characters
	const overlap = 150       // generous overlap helps semantic continuity

	for _, page := range pages {
		stringChunks := splitTextIntoChunks(page.Content, maxChunkSize, overlap)

		for i, text := range stringChunks {
			if strings.TrimSpace(text) == "" {
				continue
			}
			allChunks = append(allChunks, noteModel.NoteChunk{
				Doc:            doc,
				ChunkId:        utils.GetNewUUID(),
				Chunk:          text,
				PageNum:        page.Number,
				ChunkPageOrder: i,
			})
		}
	}

	return allChunks
}

func splitTextIntoChunks(text string, limit int, overlap int) []string {
	var chunks []string

	// If text is already small enough, just return it
	if len(text) <= limit {
		return []string{text}
	}

	// Separators ordered from "best" to "worst" for semantic meaning
	separators := []string{"\n\n", "\n", ". ", " ", ""}

	var splitChar string
	found := false
	for _, s := range separators {
		if strings.Contains(text, s) {
			splitChar = s
			found = true
			break
		}
	}

	if !found {
		// Hard cut if no separator found (rare)
		return []string{text[:limit]}
	}

	parts := strings.Split(text, splitChar)
	var currentChunk strings.Builder

	for _, part := range parts {
		// If adding the part exceeds the limit
		if currentChunk.Len()+len(part)+len(splitChar) > limit {
			if currentChunk.Len() > 0 {
				chunks = append(chunks, currentChunk.String())
			}

			// Handle overlap: start the next chunk with the end of the previous one
			overlapContent := ""
			if currentChunk.Len() > overlap {
				overlapContent = currentChunk.String()[currentChunk.Len()-overlap:]
			}

			currentChunk.Reset()
			currentChunk.WriteString(overlapContent)
		}

		if currentChunk.Len() > 0 && splitChar != "" {
			currentChunk.WriteString(splitChar)
		}
		currentChunk.WriteString(part)
	}

	if currentChunk.Len() > 0 {
		chunks = append(chunks, currentChunk.String())
	}

	return chunks
}
