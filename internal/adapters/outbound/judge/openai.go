package judge

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/toolgauge/toolgauge/internal/domain/judging"
)

const openaiDefaultModel = "gpt-4o"

// OpenAIProvider implements judging.Provider using the OpenAI chat
// completion API.
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAI creates an OpenAI provider using the OPENAI_API_KEY env var.
func NewOpenAI() (*OpenAIProvider, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	return &OpenAIProvider{client: openai.NewClient(key)}, nil
}

func (o *OpenAIProvider) Name() string { return "openai" }

func (o *OpenAIProvider) Generate(ctx context.Context, prompt string, s judging.Settings) (string, error) {
	model := s.Model
	if model == "" {
		model = openaiDefaultModel
	}

	req := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: float32(s.Temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if s.MaxTokens > 0 {
		req.MaxTokens = s.MaxTokens
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
