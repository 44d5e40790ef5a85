package ai

import (
	"fmt"
	"strings"

	"aicodegen/src/config"
)

var SupportedProviders = []string{
	"OpenAI",
	"Anthropic",
	"OpenAI Compatible",
	"DeepSeek",
	"Mistral",
	"Groq",
	"xAI",
}

func NewProvider(cfg *config.Config) (Provider, error) {
	providerName := strings.ToLower(strings.ReplaceAll(cfg.Provider, " ", ""))

	switch providerName {
	case "openai", "gpt":
		return NewOpenAIProvider(cfg.APIKey, cfg.Model)

	case "anthropic", "claude":
		return NewAnthropicProvider(cfg.APIKey, cfg.Model)

	case "openaicompatible":
		return NewOpenAICompatibleProvider("openai-compatible", cfg.APIKey, cfg.Model, cfg.Endpoint)

	case "deepseek":
		endpoint := "https://api.deepseek.com/v1"
		if cfg.Endpoint != "" {
			endpoint = cfg.Endpoint
		}
		return NewOpenAICompatibleProvider("deepseek", cfg.APIKey, cfg.Model, endpoint)

	case "mistral":
		return NewOpenAICompatibleProvider("mistral", cfg.APIKey, cfg.Model, "https://api.mistral.ai/v1")

	case "groq":
		return NewOpenAICompatibleProvider("groq", cfg.APIKey, cfg.Model, "https://api.groq.com/openai/v1")

	case "xai", "grok":
		return NewOpenAICompatibleProvider("xai", cfg.APIKey, cfg.Model, "https://api.x.ai/v1")

	default:
		return nil, fmt.Errorf(
			"unsupported AI provider: '%s'. Supported providers are: %s",
			cfg.Provider,
			strings.Join(SupportedProviders, ", "),
		)
	}
}
