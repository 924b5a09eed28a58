package prompts_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tutoragent/NotesAPI/internal/domain/noteModel"
	"github.com/tutoragent/NotesAPI/internal/tutor/prompts"
)

type stubOverrideStore struct {
	prompts map[string]string
}

func (s *stubOverrideStore) GetPrompt(ctx context.Context, tenantId string, promptType string) (string, bool) {
	val, found := s.prompts[prompts.Key(tenantId, promptType)]
	return val, found
}

func (s *stubOverrideStore) SavePrompt(ctx context.Context, tenantId string, promptType string, prompt string) error {
	s.prompts[prompts.Key(tenantId, promptType)] = prompt
	return nil
}

func TestResolve_DefaultsWhenNoOverride(t *testing.T) {
	r := prompts.NewResolver(&stubOverrideStore{prompts: map[string]string{}})

	for _, queryType := range []noteModel.QueryType{noteModel.QueryTypeReading, noteModel.QueryTypeWriting} {
		template, err := r.Resolve(context.Background(), "tenant-1", queryType)
		if err != nil {
			t.Fatalf("Resolve(%v) failed: %v", queryType, err)
		}
		if !strings.Contains(template, "{query}") || !strings.Contains(template, "{context}") {
			t.Errorf("Default template for %v is missing placeholders", queryType)
		}
	}
}

func TestResolve_OverrideWins(t *testing.T) {
	store := &stubOverrideStore{prompts: map[string]string{}}
	_ = store.SavePrompt(context.Background(), "tenant-1", "reading", "custom {query} {context}")

	r := prompts.NewResolver(store)

	template, err := r.Resolve(context.Background(), "tenant-1", noteModel.QueryTypeReading)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if template != "custom {query} {context}" {
		t.Errorf("Override did not win: %q", template)
	}

	// Other tenants still get the default.
	other, err := r.Resolve(context.Background(), "tenant-2", noteModel.QueryTypeReading)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if other == template {
		t.Error("Override leaked into another tenant")
	}
}

func TestResolve_GeneralHasNoTemplate(t *testing.T) {
	r := prompts.NewResolver(&stubOverrideStore{prompts: map[string]string{}})

	_, err := r.Resolve(context.Background(), "tenant-1", noteModel.QueryTypeGeneral)
	if !errors.Is(err, prompts.ErrNoTemplate) {
		t.Errorf("Expected ErrNoTemplate for general queries, got %v", err)
	}
}

func TestRender(t *testing.T) {
	got := prompts.Render("Q: {query}\nC: {context}", "my question", "my notes")
	want := "Q: my question\nC: my notes"
	if got != want {
		t.Errorf("Render got %q, want %q", got, want)
	}
}

func TestPromptType(t *testing.T) {
	if pt, err := prompts.PromptType(noteModel.QueryTypeReading); err != nil || pt != "reading" {
		t.Errorf("PromptType(reading) = %q, %v", pt, err)
	}
	if pt, err := prompts.PromptType(noteModel.QueryTypeWriting); err != nil || pt != "writing" {
		t.Errorf("PromptType(writing) = %q, %v", pt, err)
	}
	if _, err := prompts.PromptType(noteModel.QueryTypeGeneral); err == nil {
		t.Error("PromptType(general) should fail")
	}
}
