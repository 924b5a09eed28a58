package tutor

import (
	"fmt"
	"strings"

	"github.com/tutoragent/NotesAPI/internal/domain/noteModel"
)

// NoNotesMessage is the fixed answer for general queries when the tenant has
// no embedded notes yet. It is a successful response, not an error.
const NoNotesMessage = "No notes available. Please upload notes first."

// FormatOutput produces the terminal workflow output. Paper answers pass
// through verbatim; general answers get the header wrapper that echoes the
// original query.
func FormatOutput(state noteModel.TutorState) string {
	if state.QueryType == noteModel.QueryTypeReading || state.QueryType == noteModel.QueryTypeWriting {
		return state.Response
	}

	divider := strings.Repeat("=", 50)
	return fmt.Sprintf("QUERY RESPONSE\nQuery: %s\n\nAnswer:\n%s\n%s\n%s\nGenerated from your uploaded notes\n",
		state.Input, divider, state.Response, divider)
}
