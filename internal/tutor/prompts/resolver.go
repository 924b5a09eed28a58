package prompts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tutoragent/NotesAPI/internal/domain/noteModel"
	"github.com/tutoragent/NotesAPI/internal/metrics"
	"github.com/tutoragent/NotesAPI/pkg/logger_i"
)

// ErrNoTemplate means neither a tenant override nor a default template
// exists for the requested type. That is a configuration fault, fatal for
// the request.
var ErrNoTemplate = errors.New("no prompt template configured")

// OverrideStore is the key-value lookup for tenant-specific templates.
type OverrideStore interface {
	GetPrompt(ctx context.Context, tenantId string, promptType string) (string, bool)
	SavePrompt(ctx context.Context, tenantId string, promptType string, prompt string) error
}

type Resolver interface {
	Resolve(ctx context.Context, tenantId string, queryType noteModel.QueryType) (string, error)
}

type resolver struct {
	overrides OverrideStore
	logger    *logger_i.Logger
}

func NewResolver(overrides OverrideStore) Resolver {
	return &resolver{
		overrides: overrides,
		logger:    logger_i.NewLogger("Prompt Resolver"),
	}
}

func (r *resolver) Resolve(ctx context.Context, tenantId string, queryType noteModel.QueryType) (string, error) {
	promptType, err := PromptType(queryType)
	if err != nil {
		return "", err
	}

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("prompt_lookup", time.Since(start)) }()

	if tenantId != "" {
		if prompt, found := r.overrides.GetPrompt(ctx, tenantId, promptType); found {
			r.logger.Debug("Using tenant prompt override", "tenant", tenantId, "type", promptType)
			return prompt, nil
		}
	}

	if prompt, ok := defaultTemplates[queryType]; ok {
		return prompt, nil
	}

	r.logger.Error("No template for query type", "type", queryType)
	return "", ErrNoTemplate
}

// PromptType maps a paper query type to its store key segment. General
// queries never consult the resolver.
func PromptType(queryType noteModel.QueryType) (string, error) {
	switch queryType {
	case noteModel.QueryTypeReading:
		return "reading", nil
	case noteModel.QueryTypeWriting:
		return "writing", nil
	default:
		return "", fmt.Errorf("%w: query type %q has no template", ErrNoTemplate, queryType)
	}
}

// Render substitutes the query and retrieved context into a template.
func Render(template string, query string, retrieved string) string {
	return strings.NewReplacer(
		"{query}", query,
		"{context}", retrieved,
	).Replace(template)
}

// Key builds the override-store key for a (tenant, type) pair.
func Key(tenantId string, promptType string) string {
	return "prompt:" + tenantId + ":" + promptType
}
