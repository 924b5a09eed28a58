package ingest

import (
	"strings"
	"testing"

	"github.com/tutoragent/NotesAPI/internal/domain/noteModel"
)

func TestGetDocType(t *testing.T) {
	tests := []struct {
		path     string
		expected noteModel.DocType
	}{
		{"test.pdf", noteModel.PDF},
		{"DOC.DOCX", noteModel.DOCX},
		{"legacy.doc", noteModel.DOCX},
		{"notes.txt", noteModel.TXT},
		{"image.png", noteModel.ERR},
	}

	for _, tt := range tests {
		if got := getDocType(tt.path); got != tt.expected {
			t.Errorf("getDocType(%s) = %v; want %v", tt.path, got, tt.expected)
		}
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]byte("same content"))
	b := Fingerprint([]byte("same content"))
	c := Fingerprint([]byte("different content"))

	if a != b {
		t.Errorf("Identical bytes produced different fingerprints: %s vs %s", a, b)
	}
	if a == c {
		t.Error("Different bytes produced the same fingerprint")
	}
	if len(a) != 32 {
		t.Errorf("Expected 32 hex characters, got %d", len(a))
	}
}

func TestSplitTextIntoChunks(t *testing.T) {
	text := "This is a long sentence. This is another sentence that will be split."
	limit := 30
	overlap := 5

	chunks := splitTextIntoChunks(text, limit, overlap)

	if len(chunks) < 2 {
		t.Errorf("Expected multiple chunks, got %d", len(chunks))
	}

	// Verify overlap (simple check if second chunk contains start of overlap)
	if len(chunks) > 1 {
		lastCharsOfFirst := chunks[0][len(chunks[0])-overlap:]
		if !strings.HasPrefix(chunks[1], lastCharsOfFirst) {
			t.Logf("Note: Basic overlap check failed, ensure logic matches: %s vs %s", lastCharsOfFirst, chunks[1])
		}
	}
}

func TestSplitTextIntoChunks_Small(t *testing.T) {
	chunks := splitTextIntoChunks("short", 100, 10)
	if len(chunks) != 1 || chunks[0] != "short" {
		t.Errorf("Expected single untouched chunk, got %v", chunks)
	}
}

func TestPrepareChunks(t *testing.T) {
	pages := []RawPage{
		{Number: 1, Content: "Page one content."},
		{Number: 2, Content: "Page two content."},
	}
	doc := noteModel.Document{TenantId: "tenant-1", FileName: "notes.txt", Fingerprint: "abc123"}

	chunks := PrepareChunks(pages, doc)

	if len(chunks) != 2 {
		t.Errorf("Expected 2 chunks (one per page), got %d", len(chunks))
	}

	if chunks[0].Doc.FileName != "notes.txt" || chunks[0].PageNum != 1 {
		t.Errorf("Metadata mismatch in chunk 0: %+v", chunks[0])
	}
	if chunks[0].Doc.Fingerprint != "abc123" {
		t.Errorf("Fingerprint not carried onto chunk: %+v", chunks[0].Doc)
	}
}

func TestPrepareChunks_SkipsBlankPages(t *testing.T) {
	pages := []RawPage{
		{Number: 1, Content: "   \n  "},
		{Number: 2, Content: "real content"},
	}

	chunks := PrepareChunks(pages, noteModel.Document{FileName: "a.txt"})
	if len(chunks) != 1 {
		t.Errorf("Expected blank page to be skipped, got %d chunks", len(chunks))
	}
}
