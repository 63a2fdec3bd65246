package chat

import (
	"context"
	"strings"

	"github.com/recruai/platform-api/internal/application/service"
	"github.com/recruai/platform-api/internal/application/usecase/identity"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/logger"
)

type UseCase struct {
	resolver *identity.Resolver
	llm      service.LLMService
	logger   logger.Logger
}

func NewUseCase(resolver *identity.Resolver, llm service.LLMService, log logger.Logger) *UseCase {
	return &UseCase{
		resolver: resolver,
		llm:      llm,
		logger:   log,
	}
}

type Input struct {
	Message string
}

type Output struct {
	Response string `json:"response"`
}

func (uc *UseCase) Execute(ctx context.Context, identityToken string, input Input) (*Output, error) {
	if _, err := uc.resolver.ResolveOwner(ctx, identityToken); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, apperror.NewInvalidInput("message is required", nil)
	}

	prompt := uc.buildPrompt(input.Message)
	response, err := uc.llm.GenerateChatResponse(ctx, prompt)
	if err != nil {
		return nil, apperror.NewInternal("failed to generate chat response", err)
	}
	return &Output{Response: response}, nil
}

func (uc *UseCase) buildPrompt(message string) string {
	var b strings.Builder
	b.WriteString("User is asking about their presentation. Respond helpfully and concisely.\n\n")
	b.WriteString("User message: ")
	b.WriteString(message)
	b.WriteString("\n\nProvide a helpful response about presentation creation or suggestions for improving their slides.")
	return b.String()
}
