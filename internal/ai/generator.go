package ai

import (
	"context"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// chatClient is the slice of the OpenAI client the planner uses; tests
// substitute a stub.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator wraps the OpenAI chat client for layout planning.
type Generator struct {
	client      chatClient
	modelID     string
	callTimeout time.Duration
}

// NewGenerator builds a Generator talking to the real OpenAI API. An empty
// model id selects GPT-4o; callTimeout bounds each of the at most two
// external calls per planning request.
func NewGenerator(apiKey, modelID string, callTimeout time.Duration) *Generator {
	if modelID == "" {
		modelID = openai.GPT4o
	}
	if callTimeout <= 0 {
		callTimeout = 30 * time.Second
	}
	return &Generator{
		client:      openai.NewClient(apiKey),
		modelID:     modelID,
		callTimeout: callTimeout,
	}
}
