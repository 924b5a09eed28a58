package tutor

import (
	"strings"

	"github.com/tutoragent/NotesAPI/internal/domain/noteModel"
)

// Keyword markers for the two paper types. Reading is checked first, so a
// query containing both markers classifies as reading.
var (
	readingKeywords = []string{"reading paper", "generate reading paper", "create reading paper", "paper 1"}
	writingKeywords = []string{"writing paper", "generate writing paper", "create writing paper", "paper 2"}
)

// Classify maps raw query text to a query type. Pure and deterministic:
// case-insensitive substring match, no external calls.
func Classify(input string) noteModel.QueryType {
	lowered := strings.ToLower(input)

	if containsAny(lowered, readingKeywords) {
		return noteModel.QueryTypeReading
	}
	if containsAny(lowered, writingKeywords) {
		return noteModel.QueryTypeWriting
	}
	return noteModel.QueryTypeGeneral
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
