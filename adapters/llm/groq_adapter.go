package llm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"

	"github.com/recruai/platform-api/internal/application/service"
	"github.com/recruai/platform-api/internal/config"
	"github.com/recruai/platform-api/pkg/logger"
)

// groqLLMAdapter talks to Groq through its OpenAI-compatible endpoint.
type groqLLMAdapter struct {
	client *openai.Client
	model  string
	log    logger.Logger
}

func NewGroqLLMAdapter(cfg config.Config, log logger.Logger) (service.LLMService, error) {
	if cfg.Groq.ApiKey == "" {
		return nil, fmt.Errorf("groq API key is not configured")
	}

	clientConfig := openai.DefaultConfig(cfg.Groq.ApiKey)
	clientConfig.BaseURL = cfg.Groq.BaseURL

	client := openai.NewClientWithConfig(clientConfig)

	log.Info("Groq Chat (LLM) Adapter initialized")
	return &groqLLMAdapter{client: client, model: cfg.Groq.Model, log: log}, nil
}

func (a *groqLLMAdapter) GenerateChatResponse(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Stream: false,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("groq chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq returned no chat choices")
	}

	return resp.Choices[0].Message.Content, nil
}

func (a *groqLLMAdapter) StreamChatResponse(ctx context.Context, prompt string) (service.TokenStream, error) {
	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Stream: true,
	}

	stream, err := a.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("groq chat completion stream failed: %w", err)
	}
	return &groqTokenStream{stream: stream}, nil
}

type groqTokenStream struct {
	stream *openai.ChatCompletionStream
}

func (s *groqTokenStream) Recv() (string, error) {
	for {
		resp, err := s.stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", io.EOF
			}
			return "", fmt.Errorf("groq stream recv failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		return resp.Choices[0].Delta.Content, nil
	}
}

func (s *groqTokenStream) Close() error {
	s.stream.Close()
	return nil
}
