package notes

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/tutoragent/NotesAPI/internal/config"
	"github.com/tutoragent/NotesAPI/internal/domain/noteModel"
	"github.com/tutoragent/NotesAPI/internal/metrics"
	"github.com/tutoragent/NotesAPI/internal/rag/embedding"
	"github.com/tutoragent/NotesAPI/internal/rag/ingest"
	"github.com/tutoragent/NotesAPI/internal/rag/vectorDB"
	"github.com/tutoragent/NotesAPI/pkg/logger_i"
)

var ErrEmptyDocument = errors.New("document has no extractable content")

// Store owns a tenant's collection of embedded note chunks.
type Store interface {
	Ingest(ctx context.Context, tenantId string, fileName string, sourcePath string) (noteModel.IngestResult, error)
	Delete(ctx context.Context, tenantId string, fileName string) (bool, error)
	Clear(ctx context.Context, tenantId string) (bool, error)
	List(ctx context.Context, tenantId string) ([]noteModel.NoteInfo, error)
}

type store struct {
	vectorDB    vectorDB.DataProcessor
	embedder    embedding.Embedder
	uploadsRoot string
	logger      *logger_i.Logger
}

// NewStore constructor
func NewStore(vector vectorDB.DataProcessor, em embedding.Embedder, uploadsRoot string) Store {
	return &store{
		vectorDB:    vector,
		embedder:    em,
		uploadsRoot: uploadsRoot,
		logger:      logger_i.NewLogger("Note Store"),
	}
}

func (s *store) Ingest(ctx context.Context, tenantId string, fileName string, sourcePath string) (noteModel.IngestResult, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "tenant", tenantId, "file", fileName)

	content, err := os.ReadFile(sourcePath)
	if err != nil {
		metrics.CountIngestResult("failed")
		return noteModel.IngestResult{}, fmt.Errorf("reading upload: %w", err)
	}
	if len(content) == 0 {
		metrics.CountIngestResult("failed")
		return noteModel.IngestResult{}, ErrEmptyDocument
	}
	fingerprint := ingest.Fingerprint(content)

	pages, err := ingest.ExtractPages(sourcePath)
	if err != nil {
		metrics.CountIngestResult("failed")
		return noteModel.IngestResult{}, fmt.Errorf("extracting document content: %w", err)
	}

	collection := noteModel.CollectionName(tenantId)
	if err := s.vectorDB.CreateCollection(ctx, collection); err != nil {
		metrics.CountIngestResult("failed")
		return noteModel.IngestResult{}, fmt.Errorf("creating collection: %w", err)
	}

	// Dedup check. This check and the delete-then-insert below are not one
	// atomic step: two concurrent re-ingestions of the same file can
	// interleave between them. The store offers no transaction across the
	// calls; correctness relies on low write concurrency per (tenant, file).
	replaced := false
	existing, err := s.vectorDB.ScrollChunkMeta(ctx, collection, fileName)
	if err != nil {
		log.Warn("Could not check existing embeddings, continuing with ingest", "error", err)
	} else if len(existing) > 0 {
		if allSameFingerprint(existing, fingerprint) {
			log.Info("Content unchanged, skipping re-embedding", "chunks", len(existing))
			metrics.CountIngestResult("deduplicated")
			return noteModel.IngestResult{ChunkCount: len(existing), Deduplicated: true}, nil
		}

		log.Info("Content changed, deleting existing embeddings before re-embedding", "chunks", len(existing))
		if err := s.vectorDB.DeleteByFile(ctx, collection, fileName); err != nil {
			metrics.CountIngestResult("failed")
			return noteModel.IngestResult{}, fmt.Errorf("deleting stale embeddings: %w", err)
		}
		replaced = true
	}

	doc := noteModel.Document{
		TenantId:    tenantId,
		FileName:    fileName,
		SourcePath:  sourcePath,
		Fingerprint: fingerprint,
		UploadTime:  time.Now(),
	}
	chunks := ingest.PrepareChunks(pages, doc)
	if len(chunks) == 0 {
		metrics.CountIngestResult("failed")
		return noteModel.IngestResult{}, ErrEmptyDocument
	}

	if err := s.batchIngest(ctx, collection, chunks); err != nil {
		// Roll the new fingerprint back so no half-written chunk set stays
		// tagged as current.
		if delErr := s.vectorDB.DeleteByFingerprint(ctx, collection, fileName, fingerprint); delErr != nil {
			log.Error("Failed to clean up partial ingest", "error", delErr)
		}
		metrics.CountIngestResult("failed")
		return noteModel.IngestResult{}, err
	}

	if replaced {
		metrics.CountIngestResult("replaced")
	} else {
		metrics.CountIngestResult("inserted")
	}
	log.Info("Successfully ingested document", "chunks", len(chunks))
	return noteModel.IngestResult{ChunkCount: len(chunks)}, nil
}

func (s *store) Delete(ctx context.Context, tenantId string, fileName string) (bool, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "tenant", tenantId, "file", fileName)

	// A missing upload file is not a failure, the embeddings are the record.
	filePath := filepath.Join(s.uploadDir(tenantId), fileName)
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		log.Warn("Could not remove upload file", "path", filePath, "error", err)
	}

	collection := noteModel.CollectionName(tenantId)
	exists, err := s.vectorDB.CollectionExists(ctx, collection)
	if err != nil {
		return false, err
	}
	if !exists {
		return true, nil
	}

	if err := s.vectorDB.DeleteByFile(ctx, collection, fileName); err != nil {
		return false, err
	}

	count, err := s.vectorDB.CountPoints(ctx, collection)
	if err != nil {
		return false, err
	}
	if count == 0 {
		log.Info("Collection is now empty, deleting collection", "collection", collection)
		if err := s.vectorDB.DeleteCollection(ctx, collection); err != nil {
			return false, err
		}
	}

	log.Info("Deleted note")
	return true, nil
}

func (s *store) Clear(ctx context.Context, tenantId string) (bool, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "tenant", tenantId)

	dir := s.uploadDir(tenantId)
	if entries, err := os.ReadDir(dir); err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				log.Warn("Could not remove upload file", "name", entry.Name(), "error", err)
			}
		}
	}

	collection := noteModel.CollectionName(tenantId)
	exists, err := s.vectorDB.CollectionExists(ctx, collection)
	if err != nil {
		return false, err
	}
	if !exists {
		// Nothing to clear.
		return true, nil
	}

	if err := s.vectorDB.DeleteCollection(ctx, collection); err != nil {
		return false, err
	}

	log.Info("Cleared all notes", "collection", collection)
	return true, nil
}

func (s *store) List(ctx context.Context, tenantId string) ([]noteModel.NoteInfo, error) {
	collection := noteModel.CollectionName(tenantId)

	exists, err := s.vectorDB.CollectionExists(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !exists {
		return []noteModel.NoteInfo{}, nil
	}

	metas, err := s.vectorDB.ScrollChunkMeta(ctx, collection, "")
	if err != nil {
		return nil, err
	}

	// Group by file name: earliest upload time wins, chunk count accumulates.
	grouped := make(map[string]*noteModel.NoteInfo)
	for _, meta := range metas {
		if meta.FileName == "" {
			continue
		}
		info, ok := grouped[meta.FileName]
		if !ok {
			grouped[meta.FileName] = &noteModel.NoteInfo{
				FileName:   meta.FileName,
				UploadTime: meta.UploadTime,
				FilePath:   meta.FilePath,
				ChunkCount: 1,
			}
			continue
		}
		info.ChunkCount++
		if meta.UploadTime != "" && (info.UploadTime == "" || meta.UploadTime < info.UploadTime) {
			info.UploadTime = meta.UploadTime
		}
	}

	infos := make([]noteModel.NoteInfo, 0, len(grouped))
	for _, info := range grouped {
		infos = append(infos, *info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].FileName < infos[j].FileName })
	return infos, nil
}

func (s *store) uploadDir(tenantId string) string {
	if tenantId == "" {
		return s.uploadsRoot
	}
	return filepath.Join(s.uploadsRoot, tenantId)
}

func (s *store) batchIngest(ctx context.Context, collection string, chunks []noteModel.NoteChunk) error {
	batchSize := 100

	for i := 0; i < len(chunks); i += batchSize {
		end := i + batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		currentBatch := chunks[i:end]

		texts := make([]string, 0, len(currentBatch))
		for _, c := range currentBatch {
			texts = append(texts, c.Chunk)
		}

		start := time.Now()
		vectors, err := s.embedder.BatchEmbedding(ctx, texts)
		metrics.CaptureExecutionMetrics("embedding", time.Since(start))
		if err != nil {
			return fmt.Errorf("embedding batch failed: %w", err)
		}

		start = time.Now()
		err = s.vectorDB.UpsertBatch(ctx, collection, currentBatch, vectors)
		metrics.CaptureExecutionMetrics("vector_upsert", time.Since(start))
		if err != nil {
			return fmt.Errorf("upserting embeddings failed: %w", err)
		}
	}

	return nil
}

func allSameFingerprint(metas []noteModel.ChunkMeta, fingerprint string) bool {
	for _, meta := range metas {
		if meta.Fingerprint != fingerprint {
			return false
		}
	}
	return true
}
