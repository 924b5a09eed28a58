package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings holds the env-derived part of the configuration. It is built once
// in main and handed to the constructors that need it; core packages never
// reach into the environment themselves.
type Settings struct {
	OpenAIAPIKey string
	GeminiAPIKey string
	LLMProvider  string

	QdrantHost string
	QdrantPort int

	RedisAddr string
	AuthToken string
}

// Load reads .env (if present) and the process environment.
func Load() Settings {
	_ = godotenv.Load()

	s := Settings{
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		LLMProvider:  os.Getenv("LLM_PROVIDER"),
		QdrantHost:   os.Getenv("QDRANT_HOST"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		AuthToken:    os.Getenv("API_AUTH_TOKEN"),
	}

	if s.LLMProvider == "" {
		s.LLMProvider = LLMProviderOpenAI
	}
	if s.QdrantHost == "" {
		s.QdrantHost = QdrantHost
	}
	if s.RedisAddr == "" {
		s.RedisAddr = RedisAddr
	}
	if port, err := strconv.Atoi(os.Getenv("QDRANT_PORT")); err == nil {
		s.QdrantPort = port
	} else {
		s.QdrantPort = QdrantGrpcPort
	}

	return s
}

// GenerationConfigured reports whether a credential for the selected
// generation/embedding provider is available. Absence is a degraded state,
// not a startup failure.
func (s Settings) GenerationConfigured() bool {
	if s.LLMProvider == LLMProviderGemini {
		return s.GeminiAPIKey != ""
	}
	return s.OpenAIAPIKey != ""
}

// NoAuthBypass: requests are only authenticated when a token is configured.
func (s Settings) NoAuthBypass() bool {
	return s.AuthToken == ""
}
