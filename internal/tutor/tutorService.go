package tutor

import (
	"context"
	"errors"
	"time"

	"github.com/tutoragent/NotesAPI/internal/config"
	"github.com/tutoragent/NotesAPI/internal/domain/noteModel"
	"github.com/tutoragent/NotesAPI/internal/metrics"
	"github.com/tutoragent/NotesAPI/internal/rag/llm"
	"github.com/tutoragent/NotesAPI/internal/rag/retrieval"
	"github.com/tutoragent/NotesAPI/internal/tutor/prompts"
	"github.com/tutoragent/NotesAPI/pkg/logger_i"
)

var ErrGenerationUnavailable = errors.New("no generation provider configured")

// Service runs the query workflow. The handler only calls this service - it
// doesn't need to know the index, the resolver or the llm.
type Service interface {
	ProcessQuery(ctx context.Context, tenantId string, query string) (string, noteModel.QueryType, error)
}

type service struct {
	index       retrieval.Index
	resolver    prompts.Resolver
	llmProvider llm.Provider
	logger      *logger_i.Logger
}

// NewService constructor
func NewService(index retrieval.Index, resolver prompts.Resolver, llm llm.Provider) Service {
	return &service{
		index:       index,
		resolver:    resolver,
		llmProvider: llm,
		logger:      logger_i.NewLogger("Tutor Service :"),
	}
}

// ProcessQuery walks the state machine Start -> Classified ->
// ContextRetrieved -> Generated -> Formatted. The state record lives for one
// call and is discarded on return. No transition is retried; the first
// unrecoverable error surfaces to the caller.
func (s *service) ProcessQuery(ctx context.Context, tenantId string, query string) (string, noteModel.QueryType, error) {
	inMethodLogger := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "tenant", tenantId)

	processContext, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	state := noteModel.TutorState{
		Input:       query,
		CurrentStep: noteModel.StepStart,
	}
	start := time.Now()

	// Classification
	s.executeClassifyStep(inMethodLogger, &state)

	// Context Retrieval
	if err := s.executeRetrievalStep(processContext, inMethodLogger, tenantId, &state); err != nil {
		return "", state.QueryType, err
	}

	// Generation
	if err := s.executeGenerationStep(processContext, inMethodLogger, tenantId, &state); err != nil {
		return "", state.QueryType, err
	}

	// Formatting
	s.executeFormatStep(inMethodLogger, &state)

	metrics.CaptureQueryMetrics(string(state.QueryType), time.Since(start))
	return state.FormattedOutput, state.QueryType, nil
}
