package qdrantDB

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/qdrant/go-client/qdrant"
	"github.com/tutoragent/NotesAPI/internal/config"
	"github.com/tutoragent/NotesAPI/internal/domain/noteModel"
	"github.com/tutoragent/NotesAPI/pkg/logger_i"
)

var logger *logger_i.Logger
var qdrantInstance *qdrant.Client
var once sync.Once
var dimension = uint64(config.EmbeddingOutputDimensionality)

type ClientHolder struct {
	QObj *qdrant.Client
}

func GetQdrantClient(ctx context.Context, host string, port int) *ClientHolder {

	once.Do(func() {
		logger = logger_i.NewLogger("Qdrant")
		res := newClient(host, port)
		if res != nil {
			qdrantInstance = res
			go closeQdrant(ctx, qdrantInstance)
		}
	})

	if qdrantInstance == nil {
		return nil
	}
	return &ClientHolder{
		QObj: qdrantInstance,
	}
}

func newClient(host string, port int) *qdrant.Client {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     host,
		Port:     port,
		UseTLS:   config.QdrantUseTLS,
		PoolSize: uint(config.QdrantPoolSize),
	})
	if err != nil {
		logger.Error("could not instantiate: ", "error:", err)
		return nil
	}

	return client
}

func closeQdrant(ctx context.Context, qi *qdrant.Client) {
	<-ctx.Done()
	logger.Info("Shutting down Qdrant")
	err := qi.Close()
	if err != nil {
		logger.Error("could not close Qdrant: ", "error:", err)
	}
	logger.Info("Closed Qdrant")
}

func (db *ClientHolder) CollectionExists(ctx context.Context, collectionName string) (bool, error) {
	if collectionName == "" {
		return false, errors.New("empty collection name")
	}
	return db.QObj.CollectionExists(ctx, collectionName)
}

func (db *ClientHolder) CreateCollection(ctx context.Context, collectionName string) error {
	if collectionName == "" {
		return errors.New("empty collection name")
	}

	exists, err := db.QObj.CollectionExists(ctx, collectionName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return db.QObj.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
}

func (db *ClientHolder) DeleteCollection(ctx context.Context, collectionName string) error {
	return db.QObj.DeleteCollection(ctx, collectionName)
}

func (db *ClientHolder) CountPoints(ctx context.Context, collectionName string) (uint64, error) {
	return db.QObj.Count(ctx, &qdrant.CountPoints{
		CollectionName: collectionName,
		Exact:          qdrant.PtrOf(true),
	})
}

func (db *ClientHolder) UpsertBatch(ctx context.Context, collectionName string, chunks []noteModel.NoteChunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("mismatch: got %d chunks but %d vectors", len(chunks), len(vectors))
	}

	qdrantPoints := make([]*qdrant.PointStruct, len(chunks))

	for i, chunk := range chunks {
		qdrantPoints[i] = &qdrant.PointStruct{
			Id:      qdrant.NewID(chunk.ChunkId),
			Vectors: qdrant.NewVectors(vectors[i]...),

			Payload: qdrant.NewValueMap(map[string]any{
				"content":     chunk.Chunk,
				"file_name":   chunk.Doc.FileName,
				"file_path":   chunk.Doc.SourcePath,
				"file_hash":   chunk.Doc.Fingerprint,
				"tenant_id":   chunk.Doc.TenantId,
				"upload_time": chunk.Doc.UploadTime.Format(time.RFC3339),
				"page_num":    chunk.PageNum,
				"chunk_order": chunk.ChunkPageOrder,
				"chunk_id":    chunk.ChunkId,
			}),
		}
	}

	_, err := db.QObj.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collectionName,
		Points:         qdrantPoints,
		Wait:           qdrant.PtrOf(true),
	})

	if err != nil {
		return fmt.Errorf("qdrant upsert failed: %w", err)
	}

	return nil
}

func (db *ClientHolder) Search(ctx context.Context, collectionName string, vectorFloat []float32, limit uint64) ([]string, error) {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))
	result, err := db.QObj.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collectionName,
		Query:          qdrant.NewQuery(vectorFloat...),
		Limit:          qdrant.PtrOf(limit),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		loggr.Error("Error querying Qdrant: ", "error:", err)
		return nil, err
	}

	var matches []string
	for _, hit := range result {
		content := hit.Payload["content"].GetStringValue()
		fileName := hit.Payload["file_name"].GetStringValue()
		matches = append(matches, fmt.Sprintf("Content: %s, SourceFile: %s", content, fileName))
	}

	loggr.Debug("Found matches", "count", len(matches))
	return matches, nil
}

func (db *ClientHolder) ScrollChunkMeta(ctx context.Context, collectionName string, fileName string) ([]noteModel.ChunkMeta, error) {
	var filter *qdrant.Filter
	if fileName != "" {
		filter = fileFilter(fileName)
	}

	// The points client exposes next_page_offset, which the high-level Scroll
	// wrapper drops.
	scroll := func(ctx context.Context, req *qdrant.ScrollPoints) (*qdrant.ScrollResponse, error) {
		return db.QObj.GetPointsClient().Scroll(ctx, req)
	}
	return scrollAllMeta(ctx, scroll, collectionName, filter)
}

type scrollFunc func(ctx context.Context, req *qdrant.ScrollPoints) (*qdrant.ScrollResponse, error)

// scrollAllMeta pages through a collection continuing from the server-issued
// next_page_offset. The scroll offset is inclusive, so resuming from the last
// returned point id would read that point again on every page boundary.
func scrollAllMeta(ctx context.Context, scroll scrollFunc, collectionName string, filter *qdrant.Filter) ([]noteModel.ChunkMeta, error) {
	const pageSize = uint32(256)
	var metas []noteModel.ChunkMeta
	var offset *qdrant.PointId

	for {
		res, err := scroll(ctx, &qdrant.ScrollPoints{
			CollectionName: collectionName,
			Filter:         filter,
			Limit:          qdrant.PtrOf(pageSize),
			WithPayload:    qdrant.NewWithPayload(true),
			Offset:         offset,
		})
		if err != nil {
			return nil, err
		}

		for _, point := range res.GetResult() {
			metas = append(metas, noteModel.ChunkMeta{
				FileName:    point.Payload["file_name"].GetStringValue(),
				FilePath:    point.Payload["file_path"].GetStringValue(),
				Fingerprint: point.Payload["file_hash"].GetStringValue(),
				UploadTime:  point.Payload["upload_time"].GetStringValue(),
				TenantId:    point.Payload["tenant_id"].GetStringValue(),
			})
		}

		offset = res.GetNextPageOffset()
		if offset == nil {
			return metas, nil
		}
	}
}

func (db *ClientHolder) DeleteByFile(ctx context.Context, collectionName string, fileName string) error {
	return db.deleteByFilter(ctx, collectionName, fileFilter(fileName))
}

func (db *ClientHolder) DeleteByFingerprint(ctx context.Context, collectionName string, fileName string, fingerprint string) error {
	filter := fileFilter(fileName)
	filter.Must = append(filter.Must, qdrant.NewMatch("file_hash", fingerprint))
	return db.deleteByFilter(ctx, collectionName, filter)
}

func (db *ClientHolder) deleteByFilter(ctx context.Context, collectionName string, filter *qdrant.Filter) error {
	_, err := db.QObj.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: collectionName,
		Points:         qdrant.NewPointsSelectorFilter(filter),
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return fmt.Errorf("qdrant delete failed: %w", err)
	}
	return nil
}

func fileFilter(fileName string) *qdrant.Filter {
	return &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("file_name", fileName),
		},
	}
}
