package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 30 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//uploads
	UploadsRootDir    = "./uploads"
	MaxUploadBytes    = 10 << 20 //10MB
	MaxQueryLength    = 1000
	DefaultTenantName = "notes"
	TenantPrefix      = "notes_"

	//vectorDB
	EmbeddingOutputDimensionality int32 = 1536
	QdrantHost                          = "localhost"
	QdrantGrpcPort                      = 6334
	QdrantUseTLS                        = false
	QdrantPoolSize                      = 1

	//retrieval
	RetrievalLimit = uint64(5)

	//llm
	LLMProviderOpenAI = "openai"
	LLMProviderGemini = "gemini"

	OpenAIModelName      = "gpt-4o"
	OpenAIEmbeddingModel = "text-embedding-3-small"
	GeminiModelName      = "gemini-2.5-flash-lite-preview-09-2025"
	GoogleEmbeddingModel = "gemini-embedding-001"

	ModelTemperature float32 = 0.1
	ModelContext             = "You are a tutor assistant answering strictly from the student's uploaded notes. If the notes do not cover the question, say so."

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	RedisPassword = ""

	//redis has 16 DBs we can use
	RedisPromptStore = 2

	//prompt overrides never expire on their own
	RedisPromptStoreTTL = time.Duration(0)
)
