package chat

import (
	"context"
	"fmt"

	"verbum-app/internal/logger"
	"verbum-app/internal/service/llm"
	"verbum-app/internal/service/router"

	"github.com/sirupsen/logrus"
)

// CompletionResult contains the response from a non-streaming completion
type CompletionResult struct {
	Text  string
	Model string
}

// ChatService routes a message history to an upstream model and dispatches
// the completion. It is stateless: the full history arrives with each
// request and nothing is retained between calls.
type ChatService struct {
	provider     llm.Provider
	router       *router.Router
	systemPrompt string
}

// NewChatService creates a new ChatService
func NewChatService(provider llm.Provider, r *router.Router, systemPrompt string) *ChatService {
	return &ChatService{
		provider:     provider,
		router:       r,
		systemPrompt: systemPrompt,
	}
}

// Complete selects a model for the history and returns the full response
func (s *ChatService) Complete(ctx context.Context, messages []llm.Message) (*CompletionResult, error) {
	model := s.router.Select(messages)

	logger.Log.WithFields(logrus.Fields{
		"model":         model,
		"message_count": len(messages),
	}).Debug("Dispatching completion")

	text, err := s.provider.ChatWithHistory(ctx, messages, s.systemPrompt, model)
	if err != nil {
		return nil, fmt.Errorf("LLM error: %w", err)
	}

	return &CompletionResult{Text: text, Model: model}, nil
}

// Stream selects a model for the history and returns the fragment channel
// along with the chosen model handle. The channel closes when the upstream
// signals completion or the context is cancelled.
func (s *ChatService) Stream(ctx context.Context, messages []llm.Message) (<-chan llm.StreamChunk, string, error) {
	model := s.router.Select(messages)

	logger.Log.WithFields(logrus.Fields{
		"model":         model,
		"message_count": len(messages),
	}).Debug("Dispatching streaming completion")

	chunks, err := s.provider.ChatWithHistoryStream(ctx, messages, s.systemPrompt, model)
	if err != nil {
		return nil, "", fmt.Errorf("LLM error: %w", err)
	}

	return chunks, model, nil
}
