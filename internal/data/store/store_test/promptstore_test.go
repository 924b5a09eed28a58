package store_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/tutoragent/NotesAPI/internal/config"
	"github.com/tutoragent/NotesAPI/internal/data/redisStore"
	"github.com/tutoragent/NotesAPI/internal/data/store"
	"github.com/tutoragent/NotesAPI/internal/tutor/prompts"
)

func TestRedisPromptStore_Lifecycle(t *testing.T) {
	// 1. Start miniredis
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	internalStore := redisStore.NewTestStore(client)
	promptStore := store.TestPromptStore(internalStore)

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")

	t.Run("Save and Get Roundtrip", func(t *testing.T) {
		err := promptStore.SavePrompt(ctx, "tenant-1", "reading", "custom reading template {query} {context}")
		if err != nil {
			t.Fatalf("SavePrompt failed: %v", err)
		}

		val, found := promptStore.GetPrompt(ctx, "tenant-1", "reading")
		if !found {
			t.Fatal("Prompt was saved but not found in Redis")
		}
		if val != "custom reading template {query} {context}" {
			t.Errorf("Data mismatch! Got %s", val)
		}
	})

	t.Run("Get Non-Existent Prompt", func(t *testing.T) {
		_, found := promptStore.GetPrompt(ctx, "ghost-tenant", "writing")
		if found {
			t.Error("Expected found=false for non-existent key")
		}
	})

	t.Run("Types Are Isolated", func(t *testing.T) {
		_ = promptStore.SavePrompt(ctx, "tenant-1", "writing", "writing template")

		reading, _ := promptStore.GetPrompt(ctx, "tenant-1", "reading")
		writing, _ := promptStore.GetPrompt(ctx, "tenant-1", "writing")
		if reading == writing {
			t.Error("reading and writing overrides collided")
		}

		if !mr.Exists(prompts.Key("tenant-1", "writing")) {
			t.Error("Expected writing key in Redis")
		}
	})
}

func TestInMemoryPromptStore(t *testing.T) {
	memStore := store.InitInMemoryPromptStore()
	ctx := context.Background()

	if _, found := memStore.GetPrompt(ctx, "tenant-1", "reading"); found {
		t.Error("Fresh store should be empty")
	}

	if err := memStore.SavePrompt(ctx, "tenant-1", "reading", "template"); err != nil {
		t.Fatalf("SavePrompt failed: %v", err)
	}

	val, found := memStore.GetPrompt(ctx, "tenant-1", "reading")
	if !found || val != "template" {
		t.Errorf("Got %q, found=%v", val, found)
	}

	// Tenants are isolated.
	if _, found := memStore.GetPrompt(ctx, "tenant-2", "reading"); found {
		t.Error("Prompt leaked across tenants")
	}
}
