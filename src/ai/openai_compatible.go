package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type OpenAICompatibleProvider struct {
	client  *http.Client
	name    string
	apiKey  string
	model   string
	baseURL string
}

func NewOpenAICompatibleProvider(name, apiKey, modelName, endpoint string) (*OpenAICompatibleProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required for provider '%s'", name)
	}
	if endpoint == "" {
		return nil, fmt.Errorf("endpoint URL is required for provider '%s'", name)
	}

	return &OpenAICompatibleProvider{
		client: &http.Client{
			Timeout: 90 * time.Second,
		},
		name:    name,
		apiKey:  apiKey,
		model:   modelName,
		baseURL: strings.TrimSuffix(endpoint, "/"),
	}, nil
}

func (p *OpenAICompatibleProvider) Name() string {
	return p.name
}

func (p *OpenAICompatibleProvider) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	model := p.model
	if opts.Model != "" {
		model = opts.Model
	}

	payload := openAIRequest{
		Model: model,
		Messages: []openAIMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return "", &ProviderError{Provider: p.name, Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/chat/completions", bytes.NewBuffer(reqBody))
	if err != nil {
		return "", &ProviderError{Provider: p.name, Err: fmt.Errorf("failed to create http request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: p.name, Err: fmt.Errorf("failed to send request to %s: %w", p.name, err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: p.name, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	var apiResp openAIResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", &ProviderError{Provider: p.name, Err: fmt.Errorf("failed to parse json response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		if apiResp.Error != nil {
			return "", &ProviderError{Provider: p.name, Err: fmt.Errorf("%s api error (type: %s): %s", p.name, apiResp.Error.Type, apiResp.Error.Message)}
		}
		return "", &ProviderError{Provider: p.name, Err: fmt.Errorf("received non-200 status from %s: %d", p.name, resp.StatusCode)}
	}

	if len(apiResp.Choices) == 0 || apiResp.Choices[0].Message.Content == "" {
		return "", &ProviderError{Provider: p.name, Err: fmt.Errorf("received an empty or invalid response from %s", p.name)}
	}

	return apiResp.Choices[0].Message.Content, nil
}
