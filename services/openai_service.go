package services

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIService is the alternative AIClient backend, selected with
// AI_PROVIDER=openai.
type OpenAIService struct {
	client *openai.Client
	model  string
}

func NewOpenAIService(apiKey string) (*OpenAIService, error) {
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable is missing")
	}
	return &OpenAIService{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}, nil
}

func (s *OpenAIService) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no valid response received")
	}
	return resp.Choices[0].Message.Content, nil
}
