package tutor_test

import (
	"context"

	"github.com/tutoragent/NotesAPI/internal/domain/noteModel"
)

type MockIndex struct {
	OnQuery func(ctx context.Context, tenantId string, text string) (noteModel.RetrievedContext, error)
}

func (m *MockIndex) Query(ctx context.Context, tenantId string, text string) (noteModel.RetrievedContext, error) {
	if m.OnQuery != nil {
		return m.OnQuery(ctx, tenantId, text)
	}
	return noteModel.RetrievedContext{Context: "default context", Sources: 1}, nil
}

type MockResolver struct {
	OnResolve func(ctx context.Context, tenantId string, queryType noteModel.QueryType) (string, error)
}

func (m *MockResolver) Resolve(ctx context.Context, tenantId string, queryType noteModel.QueryType) (string, error) {
	if m.OnResolve != nil {
		return m.OnResolve(ctx, tenantId, queryType)
	}
	return "Request: {query}\nNotes: {context}", nil
}

type MockLLM struct {
	OnGenerate func(ctx context.Context, prompt string) (string, error)
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, prompt)
	}
	return "generated paper", nil
}
