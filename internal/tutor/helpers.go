package tutor

import (
	"context"
	"errors"
	"time"

	"github.com/tutoragent/NotesAPI/internal/domain/noteModel"
	"github.com/tutoragent/NotesAPI/internal/metrics"
	"github.com/tutoragent/NotesAPI/internal/rag/retrieval"
	"github.com/tutoragent/NotesAPI/internal/tutor/prompts"
	"github.com/tutoragent/NotesAPI/pkg/logger_i"
)

func advance(state *noteModel.TutorState, step noteModel.WorkflowStep, log *logger_i.Logger) {
	state.CurrentStep = step
	log.Debug("ProcessQuery", "Current Step", state.CurrentStep)
}

func (s *service) executeClassifyStep(log *logger_i.Logger, state *noteModel.TutorState) {
	state.QueryType = Classify(state.Input)
	advance(state, noteModel.StepClassified, log)
}

// executeRetrievalStep fills state.Context. NoIndex degrades to an empty
// context instead of failing the workflow; only genuine store or embedding
// failures return an error.
func (s *service) executeRetrievalStep(ctx context.Context, log *logger_i.Logger, tenantId string, state *noteModel.TutorState) error {
	retrieved, err := s.index.Query(ctx, tenantId, state.Input)
	if errors.Is(err, retrieval.ErrNoIndex) {
		state.NoIndex = true
		advance(state, noteModel.StepContextRetrieved, log)
		return nil
	}
	if err != nil {
		log.Error("Context retrieval failed", "error", err)
		return err
	}

	state.Context = retrieved.Context
	state.Sources = retrieved.Sources
	advance(state, noteModel.StepContextRetrieved, log)
	return nil
}

// executeGenerationStep fills state.Response. General queries answer from the
// retrieved context directly, with no completion call. Paper queries render
// the resolved template and call the provider once; a provider failure is
// normalized into the answer text so the output shape stays uniform.
func (s *service) executeGenerationStep(ctx context.Context, log *logger_i.Logger, tenantId string, state *noteModel.TutorState) error {
	if state.QueryType == noteModel.QueryTypeGeneral {
		if state.NoIndex {
			state.Response = NoNotesMessage
		} else {
			state.Response = state.Context
		}
		advance(state, noteModel.StepGenerated, log)
		return nil
	}

	template, err := s.resolver.Resolve(ctx, tenantId, state.QueryType)
	if err != nil {
		log.Error("Template resolution failed", "type", state.QueryType, "error", err)
		return err
	}

	if s.llmProvider == nil {
		return ErrGenerationUnavailable
	}

	prompt := prompts.Render(template, state.Input, state.Context)

	start := time.Now()
	answer, err := s.llmProvider.Generate(ctx, prompt)
	metrics.CaptureExecutionMetrics("llm_generation", time.Since(start))
	if err != nil {
		log.Warn("Generation failed, returning error text as answer", "error", err)
		answer = err.Error()
	}

	state.Response = answer
	advance(state, noteModel.StepGenerated, log)
	return nil
}

func (s *service) executeFormatStep(log *logger_i.Logger, state *noteModel.TutorState) {
	state.FormattedOutput = FormatOutput(*state)
	advance(state, noteModel.StepFormatted, log)
}
