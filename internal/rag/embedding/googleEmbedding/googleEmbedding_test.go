package googleEmbedding

import (
	"errors"
	"testing"

	"google.golang.org/genai"
)

func TestFirstEmbedding(t *testing.T) {
	if _, err := firstEmbedding(nil); err == nil {
		t.Error("Nil response must error, not panic")
	}

	if _, err := firstEmbedding(&genai.EmbedContentResponse{}); err == nil {
		t.Error("Response without embeddings must error, not panic")
	}

	res := &genai.EmbedContentResponse{
		Embeddings: []*genai.ContentEmbedding{{Values: []float32{0.1, 0.2}}},
	}
	values, err := firstEmbedding(res)
	if err != nil {
		t.Fatalf("firstEmbedding failed: %v", err)
	}
	if len(values) != 2 {
		t.Errorf("Expected 2 values, got %d", len(values))
	}
}

func TestDoRetry(t *testing.T) {
	if doRetry(nil) {
		t.Error("Nil error must not retry")
	}
	if !doRetry(errors.New("googleapi: Error 429: quota exceeded")) {
		t.Error("Quota errors should retry")
	}
	if doRetry(errors.New("invalid api key")) {
		t.Error("Permanent errors must not retry")
	}
}
