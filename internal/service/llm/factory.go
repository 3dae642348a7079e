package llm

import (
	"fmt"
	"strings"

	"verbum-app/internal/config"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderOpenAI     = "openai"
)

// NewProvider creates the configured upstream provider
func NewProvider(llmConfig *config.LLMConfig) (Provider, error) {
	switch strings.ToLower(llmConfig.Provider) {
	case ProviderOpenRouter:
		return NewOpenRouterProvider(llmConfig), nil
	case ProviderOpenAI:
		return NewOpenAIProvider(llmConfig), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", llmConfig.Provider)
	}
}
