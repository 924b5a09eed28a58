package notes_test

import (
	"context"

	"github.com/tutoragent/NotesAPI/internal/domain/noteModel"
)

type MockVectorDB struct {
	OnCollectionExists    func(ctx context.Context, collectionName string) (bool, error)
	OnCreateCollection    func(ctx context.Context, collectionName string) error
	OnDeleteCollection    func(ctx context.Context, collectionName string) error
	OnCountPoints         func(ctx context.Context, collectionName string) (uint64, error)
	OnUpsertBatch         func(ctx context.Context, collectionName string, chunks []noteModel.NoteChunk, vectors [][]float32) error
	OnSearch              func(ctx context.Context, collectionName string, vectorVal []float32, limit uint64) ([]string, error)
	OnScrollChunkMeta     func(ctx context.Context, collectionName string, fileName string) ([]noteModel.ChunkMeta, error)
	OnDeleteByFile        func(ctx context.Context, collectionName string, fileName string) error
	OnDeleteByFingerprint func(ctx context.Context, collectionName string, fileName string, fingerprint string) error
}

func (m *MockVectorDB) CollectionExists(ctx context.Context, collectionName string) (bool, error) {
	if m.OnCollectionExists != nil {
		return m.OnCollectionExists(ctx, collectionName)
	}
	return true, nil
}

func (m *MockVectorDB) CreateCollection(ctx context.Context, collectionName string) error {
	if m.OnCreateCollection != nil {
		return m.OnCreateCollection(ctx, collectionName)
	}
	return nil
}

func (m *MockVectorDB) DeleteCollection(ctx context.Context, collectionName string) error {
	if m.OnDeleteCollection != nil {
		return m.OnDeleteCollection(ctx, collectionName)
	}
	return nil
}

func (m *MockVectorDB) CountPoints(ctx context.Context, collectionName string) (uint64, error) {
	if m.OnCountPoints != nil {
		return m.OnCountPoints(ctx, collectionName)
	}
	return 0, nil
}

func (m *MockVectorDB) UpsertBatch(ctx context.Context, collectionName string, chunks []noteModel.NoteChunk, vectors [][]float32) error {
	if m.OnUpsertBatch != nil {
		return m.OnUpsertBatch(ctx, collectionName, chunks, vectors)
	}
	return nil
}

func (m *MockVectorDB) Search(ctx context.Context, collectionName string, vectorVal []float32, limit uint64) ([]string, error) {
	if m.OnSearch != nil {
		return m.OnSearch(ctx, collectionName, vectorVal, limit)
	}
	return nil, nil
}

func (m *MockVectorDB) ScrollChunkMeta(ctx context.Context, collectionName string, fileName string) ([]noteModel.ChunkMeta, error) {
	if m.OnScrollChunkMeta != nil {
		return m.OnScrollChunkMeta(ctx, collectionName, fileName)
	}
	return nil, nil
}

func (m *MockVectorDB) DeleteByFile(ctx context.Context, collectionName string, fileName string) error {
	if m.OnDeleteByFile != nil {
		return m.OnDeleteByFile(ctx, collectionName, fileName)
	}
	return nil
}

func (m *MockVectorDB) DeleteByFingerprint(ctx context.Context, collectionName string, fileName string, fingerprint string) error {
	if m.OnDeleteByFingerprint != nil {
		return m.OnDeleteByFingerprint(ctx, collectionName, fileName, fingerprint)
	}
	return nil
}

type MockEmbedder struct {
	OnGetEmbedding   func(ctx context.Context, query string) ([]float32, error)
	OnBatchEmbedding func(ctx context.Context, chunks []string) ([][]float32, error)
}

func (m *MockEmbedder) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	if m.OnGetEmbedding != nil {
		return m.OnGetEmbedding(ctx, query)
	}
	return []float32{0.1, 0.2}, nil
}

func (m *MockEmbedder) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	if m.OnBatchEmbedding != nil {
		return m.OnBatchEmbedding(ctx, chunks)
	}
	return make([][]float32, len(chunks)), nil
}
