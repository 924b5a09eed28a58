package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tutoragent/NotesAPI/internal/api"
	"github.com/tutoragent/NotesAPI/internal/config"
	"github.com/tutoragent/NotesAPI/internal/domain/noteModel"
	"github.com/tutoragent/NotesAPI/pkg/logger_i"
)

type stubTutorService struct {
	lastQuery string
}

func (s *stubTutorService) ProcessQuery(ctx context.Context, tenantId string, query string) (string, noteModel.QueryType, error) {
	s.lastQuery = query
	return "answer", noteModel.QueryTypeGeneral, nil
}

func initQueryTest() *stubTutorService {
	svc := &stubTutorService{}
	handlerInstance = &NoteHandler{tutorService: svc}
	logRH = logger_i.NewLogger("test")
	logNH = logRH
	return svc
}

func postQuery(t *testing.T, query string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(api.QueryRequest{Query: query})
	if err != nil {
		t.Fatalf("could not marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/query", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	QueryHandler(rec, req)
	return rec
}

func TestQueryHandler_LengthLimitCountsCharacters(t *testing.T) {
	initQueryTest()

	// 400 CJK characters are 1200 bytes but well under the character limit.
	if rec := postQuery(t, strings.Repeat("語", 400)); rec.Code != http.StatusOK {
		t.Errorf("Multibyte query under the limit rejected: %d", rec.Code)
	}

	if rec := postQuery(t, strings.Repeat("a", config.MaxQueryLength)); rec.Code != http.StatusOK {
		t.Errorf("Query at the limit rejected: %d", rec.Code)
	}

	if rec := postQuery(t, strings.Repeat("語", config.MaxQueryLength+1)); rec.Code != http.StatusBadRequest {
		t.Errorf("Over-limit query accepted: %d", rec.Code)
	}
}

func TestQueryHandler_BlankQuery(t *testing.T) {
	svc := initQueryTest()

	if rec := postQuery(t, "   \n "); rec.Code != http.StatusBadRequest {
		t.Errorf("Blank query accepted: %d", rec.Code)
	}
	if svc.lastQuery != "" {
		t.Error("Blank query reached the tutor service")
	}
}
