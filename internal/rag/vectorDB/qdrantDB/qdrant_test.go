package qdrantDB

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/qdrant/go-client/qdrant"
)

func metaPoint(id int) *qdrant.RetrievedPoint {
	return &qdrant.RetrievedPoint{
		Id: qdrant.NewIDNum(uint64(id)),
		Payload: qdrant.NewValueMap(map[string]any{
			"file_name": "notes.txt",
			"file_hash": fmt.Sprintf("hash-%d", id),
		}),
	}
}

func TestScrollAllMeta_PagesWithServerOffset(t *testing.T) {
	const pageSize = 256
	firstPage := make([]*qdrant.RetrievedPoint, 0, pageSize)
	for i := 0; i < pageSize; i++ {
		firstPage = append(firstPage, metaPoint(i))
	}
	secondPage := []*qdrant.RetrievedPoint{metaPoint(pageSize), metaPoint(pageSize + 1)}

	var calls int
	scroll := func(ctx context.Context, req *qdrant.ScrollPoints) (*qdrant.ScrollResponse, error) {
		calls++
		switch calls {
		case 1:
			if req.Offset != nil {
				t.Error("First page must start without an offset")
			}
			return &qdrant.ScrollResponse{
				Result:         firstPage,
				NextPageOffset: qdrant.NewIDNum(uint64(pageSize)),
			}, nil
		case 2:
			if req.Offset.GetNum() != uint64(pageSize) {
				t.Errorf("Second page must continue from next_page_offset, got %v", req.Offset)
			}
			return &qdrant.ScrollResponse{Result: secondPage}, nil
		default:
			t.Fatal("Scroll called past the final page")
			return nil, nil
		}
	}

	metas, err := scrollAllMeta(context.Background(), scroll, "notes_tenant-1", nil)
	if err != nil {
		t.Fatalf("scrollAllMeta failed: %v", err)
	}
	if len(metas) != pageSize+2 {
		t.Fatalf("Expected %d metas, got %d", pageSize+2, len(metas))
	}

	// No point may be read twice across the page boundary.
	seen := make(map[string]bool)
	for _, meta := range metas {
		if seen[meta.Fingerprint] {
			t.Errorf("Point %s read twice", meta.Fingerprint)
		}
		seen[meta.Fingerprint] = true
	}
}

func TestScrollAllMeta_SinglePage(t *testing.T) {
	scroll := func(ctx context.Context, req *qdrant.ScrollPoints) (*qdrant.ScrollResponse, error) {
		return &qdrant.ScrollResponse{Result: []*qdrant.RetrievedPoint{metaPoint(1)}}, nil
	}

	metas, err := scrollAllMeta(context.Background(), scroll, "notes", nil)
	if err != nil {
		t.Fatalf("scrollAllMeta failed: %v", err)
	}
	if len(metas) != 1 {
		t.Errorf("Expected 1 meta, got %d", len(metas))
	}
}

func TestScrollAllMeta_Error(t *testing.T) {
	scroll := func(ctx context.Context, req *qdrant.ScrollPoints) (*qdrant.ScrollResponse, error) {
		return nil, errors.New("connection refused")
	}

	if _, err := scrollAllMeta(context.Background(), scroll, "notes", nil); err == nil {
		t.Error("Expected scroll failure to surface")
	}
}
