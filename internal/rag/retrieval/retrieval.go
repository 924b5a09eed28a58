package retrieval

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tutoragent/NotesAPI/internal/config"
	"github.com/tutoragent/NotesAPI/internal/domain/noteModel"
	"github.com/tutoragent/NotesAPI/internal/metrics"
	"github.com/tutoragent/NotesAPI/internal/rag/embedding"
	"github.com/tutoragent/NotesAPI/internal/rag/vectorDB"
	"github.com/tutoragent/NotesAPI/pkg/logger_i"
)

// ErrNoIndex means the tenant has no embedded notes yet. Callers branch on
// it; it is not a fault.
var ErrNoIndex = errors.New("no index for tenant")

// Index answers "most relevant context for this query". Read-only over the
// store.
type Index interface {
	Query(ctx context.Context, tenantId string, text string) (noteModel.RetrievedContext, error)
}

type index struct {
	vectorDB vectorDB.DataProcessor
	embedder embedding.Embedder
	logger   *logger_i.Logger
}

func NewIndex(vector vectorDB.DataProcessor, em embedding.Embedder) Index {
	return &index{
		vectorDB: vector,
		embedder: em,
		logger:   logger_i.NewLogger("Retrieval Index"),
	}
}

func (i *index) Query(ctx context.Context, tenantId string, text string) (noteModel.RetrievedContext, error) {
	log := i.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "tenant", tenantId)

	collection := noteModel.CollectionName(tenantId)
	exists, err := i.vectorDB.CollectionExists(ctx, collection)
	if err != nil {
		return noteModel.RetrievedContext{}, err
	}
	if !exists {
		return noteModel.RetrievedContext{}, ErrNoIndex
	}

	start := time.Now()
	vector, err := i.embedder.GetEmbedding(ctx, text)
	metrics.CaptureExecutionMetrics("embedding", time.Since(start))
	if err != nil {
		log.Error("Embedding query failed", "error", err)
		return noteModel.RetrievedContext{}, err
	}

	start = time.Now()
	matches, err := i.vectorDB.Search(ctx, collection, vector, config.RetrievalLimit)
	metrics.CaptureExecutionMetrics("vector_search", time.Since(start))
	if err != nil {
		log.Error("Vector search failed", "error", err)
		return noteModel.RetrievedContext{}, err
	}
	if len(matches) == 0 {
		return noteModel.RetrievedContext{}, ErrNoIndex
	}

	log.Debug("Retrieved context", "sources", len(matches))
	return noteModel.RetrievedContext{
		Context: strings.Join(matches, "\n"),
		Sources: len(matches),
	}, nil
}
