package vectorDB

import (
	"context"

	"github.com/tutoragent/NotesAPI/internal/domain/noteModel"
)

type DataProcessor interface {
	CollectionExists(ctx context.Context, collectionName string) (bool, error)
	CreateCollection(ctx context.Context, collectionName string) error
	DeleteCollection(ctx context.Context, collectionName string) error
	CountPoints(ctx context.Context, collectionName string) (uint64, error)

	UpsertBatch(ctx context.Context, collectionName string, chunks []noteModel.NoteChunk, vectors [][]float32) error
	Search(ctx context.Context, collectionName string, vectorVal []float32, limit uint64) ([]string, error)

	// ScrollChunkMeta reads back chunk payload metadata; an empty fileName
	// means the whole collection.
	ScrollChunkMeta(ctx context.Context, collectionName string, fileName string) ([]noteModel.ChunkMeta, error)
	DeleteByFile(ctx context.Context, collectionName string, fileName string) error
	DeleteByFingerprint(ctx context.Context, collectionName string, fileName string, fingerprint string) error
}
