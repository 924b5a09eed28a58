package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/tutoragent/NotesAPI/internal/config"
	"github.com/tutoragent/NotesAPI/internal/domain/noteModel"
)

// --- Mocks ---

type mockEmbedder struct {
	embedFunc func(ctx context.Context, query string) ([]float32, error)
}

func (m *mockEmbedder) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	if m.embedFunc != nil {
		return m.embedFunc(ctx, query)
	}
	return []float32{0.5}, nil
}
func (m *mockEmbedder) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	return make([][]float32, len(chunks)), nil
}

type mockVectorDB struct {
	existsFunc func(ctx context.Context, collection string) (bool, error)
	searchFunc func(ctx context.Context, collection string, vector []float32, limit uint64) ([]string, error)
}

func (m *mockVectorDB) CollectionExists(ctx context.Context, collection string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, collection)
	}
	return true, nil
}
func (m *mockVectorDB) CreateCollection(ctx context.Context, collection string) error { return nil }
func (m *mockVectorDB) DeleteCollection(ctx context.Context, collection string) error { return nil }
func (m *mockVectorDB) CountPoints(ctx context.Context, collection string) (uint64, error) {
	return 0, nil
}
func (m *mockVectorDB) UpsertBatch(ctx context.Context, collection string, chunks []noteModel.NoteChunk, vectors [][]float32) error {
	return nil
}
func (m *mockVectorDB) Search(ctx context.Context, collection string, vector []float32, limit uint64) ([]string, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, collection, vector, limit)
	}
	return []string{"match"}, nil
}
func (m *mockVectorDB) ScrollChunkMeta(ctx context.Context, collection string, fileName string) ([]noteModel.ChunkMeta, error) {
	return nil, nil
}
func (m *mockVectorDB) DeleteByFile(ctx context.Context, collection string, fileName string) error {
	return nil
}
func (m *mockVectorDB) DeleteByFingerprint(ctx context.Context, collection string, fileName string, fingerprint string) error {
	return nil
}

// --- Unit Tests ---

func testCtx() context.Context {
	return context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
}

func TestQuery_NoCollection(t *testing.T) {
	v := &mockVectorDB{
		existsFunc: func(ctx context.Context, collection string) (bool, error) {
			return false, nil
		},
	}

	idx := NewIndex(v, &mockEmbedder{})
	_, err := idx.Query(testCtx(), "tenant-1", "anything")
	if !errors.Is(err, ErrNoIndex) {
		t.Errorf("Expected ErrNoIndex, got %v", err)
	}
}

func TestQuery_NoMatches(t *testing.T) {
	v := &mockVectorDB{
		searchFunc: func(ctx context.Context, collection string, vector []float32, limit uint64) ([]string, error) {
			return nil, nil
		},
	}

	idx := NewIndex(v, &mockEmbedder{})
	_, err := idx.Query(testCtx(), "tenant-1", "anything")
	if !errors.Is(err, ErrNoIndex) {
		t.Errorf("Zero matches should report ErrNoIndex, got %v", err)
	}
}

func TestQuery_JoinsMatches(t *testing.T) {
	v := &mockVectorDB{
		searchFunc: func(ctx context.Context, collection string, vector []float32, limit uint64) ([]string, error) {
			if collection != "notes_tenant-1" {
				t.Errorf("Wrong collection: %s", collection)
			}
			if limit != config.RetrievalLimit {
				t.Errorf("Wrong limit: %d", limit)
			}
			return []string{"first", "second"}, nil
		},
	}

	idx := NewIndex(v, &mockEmbedder{})
	got, err := idx.Query(testCtx(), "tenant-1", "question")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if got.Context != "first\nsecond" {
		t.Errorf("Context got %q", got.Context)
	}
	if got.Sources != 2 {
		t.Errorf("Sources got %d, want 2", got.Sources)
	}
}

func TestQuery_EmbeddingFailure(t *testing.T) {
	e := &mockEmbedder{
		embedFunc: func(ctx context.Context, query string) ([]float32, error) {
			return nil, errors.New("api limit")
		},
	}

	idx := NewIndex(&mockVectorDB{}, e)
	_, err := idx.Query(testCtx(), "tenant-1", "question")
	if err == nil || errors.Is(err, ErrNoIndex) {
		t.Errorf("Embedding failure must not masquerade as NoIndex: %v", err)
	}
}

func TestDefaultTenantCollection(t *testing.T) {
	var seenCollection string
	v := &mockVectorDB{
		existsFunc: func(ctx context.Context, collection string) (bool, error) {
			seenCollection = collection
			return false, nil
		},
	}

	idx := NewIndex(v, &mockEmbedder{})
	_, _ = idx.Query(testCtx(), "", "question")
	if seenCollection != config.DefaultTenantName {
		t.Errorf("Empty tenant should hit the default collection, got %q", seenCollection)
	}
}
