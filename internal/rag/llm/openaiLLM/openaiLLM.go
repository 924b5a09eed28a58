package openaiLLM

import (
	"context"
	"errors"
	"sync"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/tutoragent/NotesAPI/internal/config"
	"github.com/tutoragent/NotesAPI/internal/rag/llm"
	"github.com/tutoragent/NotesAPI/pkg/logger_i"
)

type llmClient struct {
	client    *openai.Client
	modelName string
}

var logger *logger_i.Logger
var openaiClient *llmClient
var once sync.Once

func GetOpenAIClient(modelName string, apikey string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_openai")
		c := openai.NewClient(option.WithAPIKey(apikey))
		openaiClient = &llmClient{client: &c, modelName: modelName}
		logger.Info("OpenAI client created", "model", modelName)
	})

	if openaiClient == nil {
		return nil
	}
	return &llmClient{client: openaiClient.client, modelName: openaiClient.modelName}
}

func (c *llmClient) Generate(ctx context.Context, prompt string) (string, error) {
	log := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	result, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(config.ModelContext),
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(c.modelName),
		Temperature: openai.Float(float64(config.ModelTemperature)),
	})
	if err != nil {
		log.Error("OpenAI generation failed", "error", err)
		return "", err
	}

	// Single extraction rule for the chat completion result.
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", errors.New("empty completion")
	}
	return result.Choices[0].Message.Content, nil
}
