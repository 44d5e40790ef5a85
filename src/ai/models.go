package ai

type ModelPreset struct {
	DisplayName string
	Provider    string
	ModelName   string
}

var ModelPresets = []ModelPreset{
	{DisplayName: "GPT-4o (via OpenAI)", Provider: "OpenAI", ModelName: "gpt-4o"},
	{DisplayName: "GPT-4o-mini (via OpenAI)", Provider: "OpenAI", ModelName: "gpt-4o-mini"},
	{DisplayName: "Claude Sonnet 4 (via Anthropic)", Provider: "Anthropic", ModelName: "claude-sonnet-4-20250514"},
	{DisplayName: "Claude Haiku 3.5 (via Anthropic)", Provider: "Anthropic", ModelName: "claude-3-5-haiku-20241022"},
	{DisplayName: "DeepSeek Coder (via DeepSeek)", Provider: "DeepSeek", ModelName: "deepseek-coder"},
	{DisplayName: "Mistral Large (via Mistral)", Provider: "Mistral", ModelName: "mistral-large-latest"},
	{DisplayName: "Llama 3.3 70B (via Groq)", Provider: "Groq", ModelName: "llama-3.3-70b-versatile"},
}
