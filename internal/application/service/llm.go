package service

import (
	"context"
)

// TokenStream yields model output incrementally. Recv returns io.EOF when
// the provider closes the stream.
type TokenStream interface {
	Recv() (string, error)
	Close() error
}

type LLMService interface {
	GenerateChatResponse(ctx context.Context, prompt string) (string, error)
	StreamChatResponse(ctx context.Context, prompt string) (TokenStream, error)
}
