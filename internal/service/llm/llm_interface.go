package llm

import "context"

// Message is one turn of a chat conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// StreamChunk is one fragment of a streamed completion
type StreamChunk struct {
	Content string
	IsDone  bool
}

// Provider defines the interface for upstream model providers. The model
// argument is the opaque handle chosen by the router; the system prompt is
// prepended to the history before dispatch.
type Provider interface {
	// ChatWithHistory sends a chat request and returns the full response
	ChatWithHistory(ctx context.Context, messages []Message, systemPrompt, model string) (string, error)

	// ChatWithHistoryStream sends a chat request and streams the response.
	// The returned channel is closed when the upstream signals completion or
	// the context is cancelled; fragments already delivered stand.
	ChatWithHistoryStream(ctx context.Context, messages []Message, systemPrompt, model string) (<-chan StreamChunk, error)
}

// buildMessagesWithSystemPrompt prepends the fixed system instruction to the
// conversation history.
func buildMessagesWithSystemPrompt(messages []Message, systemPrompt string) []Message {
	if systemPrompt == "" {
		return messages
	}
	return append([]Message{{Role: "system", Content: systemPrompt}}, messages...)
}
