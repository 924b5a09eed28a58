// @title           Tutor Agent API
// @version         1.0
// @description     REST API for the multi-tool tutor agent with note embedding and paper generation (reading paper 1, writing paper 2).
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/tutoragent/NotesAPI/internal/config"
	"github.com/tutoragent/NotesAPI/internal/data/store"
	"github.com/tutoragent/NotesAPI/internal/handlers"
	"github.com/tutoragent/NotesAPI/internal/middleware"
	"github.com/tutoragent/NotesAPI/internal/rag/embedding"
	"github.com/tutoragent/NotesAPI/internal/rag/embedding/googleEmbedding"
	"github.com/tutoragent/NotesAPI/internal/rag/embedding/openaiEmbedding"
	"github.com/tutoragent/NotesAPI/internal/rag/llm"
	"github.com/tutoragent/NotesAPI/internal/rag/llm/gemini"
	"github.com/tutoragent/NotesAPI/internal/rag/llm/openaiLLM"
	"github.com/tutoragent/NotesAPI/internal/rag/notes"
	"github.com/tutoragent/NotesAPI/internal/rag/retrieval"
	"github.com/tutoragent/NotesAPI/internal/rag/vectorDB/qdrantDB"
	"github.com/tutoragent/NotesAPI/internal/server"
	"github.com/tutoragent/NotesAPI/internal/tutor"
	"github.com/tutoragent/NotesAPI/internal/tutor/prompts"
	"github.com/tutoragent/NotesAPI/pkg/logger_i"
)

var listenAddr string

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()
	settings := config.Load()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	vectorDB := qdrantDB.GetQdrantClient(serviceContext, settings.QdrantHost, settings.QdrantPort)
	if vectorDB == nil {
		logger.Error("Vector store failed to initialize. Shutting down.")
		return
	}

	var embeddingService embedding.Embedder
	var llmProvider llm.Provider
	if settings.LLMProvider == config.LLMProviderGemini {
		embeddingService = googleEmbedding.GetGoogleEmbeddingClient(serviceContext, config.GoogleEmbeddingModel, settings.GeminiAPIKey)
		llmProvider = gemini.GetGeminiClient(serviceContext, config.GeminiModelName, settings.GeminiAPIKey)
	} else {
		embeddingService = openaiEmbedding.GetOpenAIEmbeddingClient(config.OpenAIEmbeddingModel, settings.OpenAIAPIKey)
		llmProvider = openaiLLM.GetOpenAIClient(config.OpenAIModelName, settings.OpenAIAPIKey)
	}
	if embeddingService == nil {
		logger.Error("Embedding service failed to initialize. Shutting down.")
		return
	}
	if !settings.GenerationConfigured() {
		logger.Warn("No generation credential configured, paper queries will fail", "provider", settings.LLMProvider)
	}

	//prompt overrides live in redis, with an in-memory fallback
	var promptStore prompts.OverrideStore
	if redisPromptStore := store.GetRedisPromptStore(serviceContext, settings.RedisAddr); redisPromptStore != nil {
		promptStore = redisPromptStore
	} else {
		logger.Error("Redis store is offline")
		promptStore = store.InitInMemoryPromptStore()
	}

	noteStore := notes.NewStore(vectorDB, embeddingService, config.UploadsRootDir)
	index := retrieval.NewIndex(vectorDB, embeddingService)
	resolver := prompts.NewResolver(promptStore)
	tutorService := tutor.NewService(index, resolver, llmProvider)

	handlers.Init(noteStore, tutorService, promptStore, settings)
	middleware.Init(settings)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
