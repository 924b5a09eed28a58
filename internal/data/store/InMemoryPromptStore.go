package store

import (
	"context"
	"sync"

	"github.com/tutoragent/NotesAPI/internal/tutor/prompts"
	"github.com/tutoragent/NotesAPI/pkg/logger_i"
)

var inMemLogger = logger_i.NewLogger("InMem PromptStore")

type InMemoryPromptStore struct {
	promptMutex *sync.RWMutex
	promptMap   map[string]string
}

func InitInMemoryPromptStore() *InMemoryPromptStore {
	return &InMemoryPromptStore{
		promptMutex: new(sync.RWMutex),
		promptMap:   make(map[string]string),
	}
}

func (store *InMemoryPromptStore) GetPrompt(ctx context.Context, tenantId string, promptType string) (string, bool) {
	store.promptMutex.RLock()
	defer store.promptMutex.RUnlock()
	result, found := store.promptMap[prompts.Key(tenantId, promptType)]
	return result, found
}

func (store *InMemoryPromptStore) SavePrompt(ctx context.Context, tenantId string, promptType string, prompt string) error {
	store.promptMutex.Lock()
	defer store.promptMutex.Unlock()
	store.promptMap[prompts.Key(tenantId, promptType)] = prompt
	inMemLogger.Debug("Saved prompt to store", "tenant", tenantId, "type", promptType)
	return nil
}
