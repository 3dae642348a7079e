package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"verbum-app/internal/config"
	"verbum-app/internal/logger"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider on top of the go-openai client. With a
// custom base URL it also speaks to any OpenAI-compatible endpoint.
type OpenAIProvider struct {
	client *openai.Client
}

type headerTransport struct {
	rt      http.RoundTripper
	headers http.Header
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone request to avoid mutating the original
	cl := req.Clone(req.Context())
	for k, vs := range t.headers {
		for _, v := range vs {
			cl.Header.Add(k, v)
		}
	}
	return t.rt.RoundTrip(cl)
}

// NewOpenAIProvider creates a provider backed by the go-openai client
func NewOpenAIProvider(llmConfig *config.LLMConfig) *OpenAIProvider {
	cfg := openai.DefaultConfig(llmConfig.APIKey)
	if llmConfig.BaseURL != "" {
		cfg.BaseURL = llmConfig.BaseURL
	}

	// Inject optional attribution headers (useful for OpenRouter)
	if llmConfig.Referrer != "" || llmConfig.AppTitle != "" {
		h := http.Header{}
		if llmConfig.Referrer != "" {
			h.Set("HTTP-Referer", llmConfig.Referrer)
		}
		if llmConfig.AppTitle != "" {
			h.Set("X-Title", llmConfig.AppTitle)
		}
		cfg.HTTPClient = &http.Client{Transport: headerTransport{rt: http.DefaultTransport, headers: h}}
	}

	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg)}
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessage {
	oaMsgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	return oaMsgs
}

// ChatWithHistory sends a chat request and returns the full response
func (p *OpenAIProvider) ChatWithHistory(ctx context.Context, messages []Message, systemPrompt, model string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    model,
		Messages: toOpenAIMessages(buildMessagesWithSystemPrompt(messages, systemPrompt)),
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return resp.Choices[0].Message.Content, nil
}

// ChatWithHistoryStream sends a chat request and streams the response
func (p *OpenAIProvider) ChatWithHistoryStream(ctx context.Context, messages []Message, systemPrompt, model string) (<-chan StreamChunk, error) {
	req := openai.ChatCompletionRequest{
		Model:    model,
		Messages: toOpenAIMessages(buildMessagesWithSystemPrompt(messages, systemPrompt)),
		Stream:   true,
	}

	stream, err := p.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion stream: %w", err)
	}

	chunks := make(chan StreamChunk)

	go func() {
		defer stream.Close()
		defer close(chunks)

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				logger.Log.WithError(err).Error("Stream receive error")
				return
			}

			if len(resp.Choices) > 0 && resp.Choices[0].Delta.Content != "" {
				select {
				case chunks <- StreamChunk{Content: resp.Choices[0].Delta.Content}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return chunks, nil
}
