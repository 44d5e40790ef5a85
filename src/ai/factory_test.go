package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicodegen/src/config"
)

func TestNewProvider(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      *config.Config
		wantName string
		wantErr  bool
	}{
		{
			name:     "openai",
			cfg:      &config.Config{Provider: "OpenAI", APIKey: "key", Model: "gpt-4o-mini"},
			wantName: "openai",
		},
		{
			name:     "anthropic alias",
			cfg:      &config.Config{Provider: "claude", APIKey: "key", Model: "claude-3-5-haiku-20241022"},
			wantName: "anthropic",
		},
		{
			name:     "deepseek uses default endpoint",
			cfg:      &config.Config{Provider: "DeepSeek", APIKey: "key", Model: "deepseek-coder"},
			wantName: "deepseek",
		},
		{
			name:     "compatible requires endpoint",
			cfg:      &config.Config{Provider: "OpenAI Compatible", APIKey: "key", Model: "m"},
			wantErr:  true,
		},
		{
			name:    "missing api key",
			cfg:     &config.Config{Provider: "openai", Model: "gpt-4o-mini"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			cfg:     &config.Config{Provider: "carrier-pigeon", APIKey: "key"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			provider, err := NewProvider(tc.cfg)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, provider.Name())
		})
	}
}

func TestProviderErrorUnwrap(t *testing.T) {
	cause := assert.AnError
	err := &ProviderError{Provider: "openai", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "openai")
}
