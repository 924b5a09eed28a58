package store

import (
	"context"

	"github.com/tutoragent/NotesAPI/internal/config"
	"github.com/tutoragent/NotesAPI/internal/data/redisStore"
	"github.com/tutoragent/NotesAPI/internal/tutor/prompts"
	"github.com/tutoragent/NotesAPI/pkg/logger_i"
)

type RedisPromptStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

// GetRedisPromptStore returns nil when redis is unreachable so callers can
// fall back to the in-memory store.
func GetRedisPromptStore(ctx context.Context, addr string) *RedisPromptStore {
	backing := redisStore.GetRedisStore(ctx, addr, config.RedisPromptStore)
	if backing == nil {
		return nil
	}
	return &RedisPromptStore{
		store:  backing,
		logger: logger_i.NewLogger("PromptStore"),
	}
}

func (s *RedisPromptStore) GetPrompt(ctx context.Context, tenantId string, promptType string) (string, bool) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "tenant", tenantId, "type", promptType)
	val, err := s.store.Get(ctx, prompts.Key(tenantId, promptType))
	if s.store.IsNil(err) {
		return "", false
	} else if err != nil {
		log.Error("Error reading prompt from Redis", "error", err)
		return "", false
	}

	log.Debug("Prompt found in Redis")
	return val, true
}

func (s *RedisPromptStore) SavePrompt(ctx context.Context, tenantId string, promptType string, prompt string) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "tenant", tenantId, "type", promptType)
	err := s.store.Set(ctx, prompts.Key(tenantId, promptType), prompt, config.RedisPromptStoreTTL)
	if err == nil {
		log.Debug("Saved prompt to Redis")
	}
	return err
}

func TestPromptStore(store *redisStore.Store) *RedisPromptStore {
	return &RedisPromptStore{
		store:  store,
		logger: logger_i.NewLogger("test redis"),
	}
}
