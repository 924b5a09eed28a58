package tutor

import (
	"strings"
	"testing"

	"github.com/tutoragent/NotesAPI/internal/domain/noteModel"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input    string
		expected noteModel.QueryType
	}{
		{"Generate reading paper", noteModel.QueryTypeReading},
		{"create reading paper on thermodynamics", noteModel.QueryTypeReading},
		{"PAPER 1 please", noteModel.QueryTypeReading},
		{"writing paper please", noteModel.QueryTypeWriting},
		{"Generate Writing Paper", noteModel.QueryTypeWriting},
		{"give me paper 2", noteModel.QueryTypeWriting},
		{"what is gradient descent", noteModel.QueryTypeGeneral},
		{"Summarize", noteModel.QueryTypeGeneral},
		{"", noteModel.QueryTypeGeneral},
		// reading markers win when both are present
		{"reading paper and writing paper", noteModel.QueryTypeReading},
	}

	for _, tt := range tests {
		if got := Classify(tt.input); got != tt.expected {
			t.Errorf("Classify(%q) = %v; want %v", tt.input, got, tt.expected)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	input := "generate writing paper about ethics"
	first := Classify(input)
	for i := 0; i < 10; i++ {
		if got := Classify(input); got != first {
			t.Fatalf("Classification changed between calls: %v then %v", first, got)
		}
	}
}

func TestFormatOutput_General(t *testing.T) {
	state := noteModel.TutorState{
		Input:     "what is backprop",
		QueryType: noteModel.QueryTypeGeneral,
		Response:  "the answer",
	}

	out := FormatOutput(state)

	if !strings.HasPrefix(out, "QUERY RESPONSE\nQuery: what is backprop\n\nAnswer:\n") {
		t.Errorf("Unexpected header: %q", out)
	}
	if !strings.Contains(out, strings.Repeat("=", 50)+"\nthe answer\n"+strings.Repeat("=", 50)) {
		t.Errorf("Answer not wrapped in dividers: %q", out)
	}
	if !strings.HasSuffix(out, "Generated from your uploaded notes\n") {
		t.Errorf("Missing footer: %q", out)
	}
}

func TestFormatOutput_PapersPassThrough(t *testing.T) {
	for _, queryType := range []noteModel.QueryType{noteModel.QueryTypeReading, noteModel.QueryTypeWriting} {
		state := noteModel.TutorState{
			Input:     "generate paper",
			QueryType: queryType,
			Response:  "the full paper text",
		}
		if got := FormatOutput(state); got != "the full paper text" {
			t.Errorf("FormatOutput(%v) = %q; want verbatim response", queryType, got)
		}
	}
}
