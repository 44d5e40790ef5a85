package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicodegen/src/ai"
	"aicodegen/src/config"
	"aicodegen/src/template"
)

type stubProvider struct {
	response  string
	responses []string
	err       error
	calls     int
	prompts   []string
	lastOpts  ai.Options
}

func (s *stubProvider) Name() string {
	return "stub"
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, opts ai.Options) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	s.lastOpts = opts
	if s.err != nil {
		return "", s.err
	}
	if len(s.responses) > 0 && s.calls <= len(s.responses) {
		return s.responses[s.calls-1], nil
	}
	return s.response, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Provider:    "openai",
		Model:       "test-model",
		MaxTokens:   1000,
		Temperature: 0.7,
		OutputDir:   t.TempDir(),
		TemplateDir: t.TempDir(),
		Language:    "python",
		Languages:   config.DefaultLanguages,
	}
}

func testGenerator(t *testing.T, cfg *config.Config, provider ai.Provider) *Generator {
	t.Helper()
	store := template.NewStore(cfg.TemplateDir, cfg.TemplateDir)
	return New(cfg, provider, store, zerolog.Nop())
}

func writeTestTemplate(t *testing.T, cfg *config.Config, language, name, body string) {
	t.Helper()
	dir := filepath.Join(cfg.TemplateDir, language)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+template.Ext), []byte(body), 0644))
}

func TestGenerateCodePassThrough(t *testing.T) {
	provider := &stubProvider{response: "def fibonacci(n):\n    ...\n"}
	gen := testGenerator(t, testConfig(t), provider)

	result, err := gen.GenerateCode(context.Background(), Request{
		Prompt:   "Create a fibonacci function",
		Language: "python",
	})
	require.NoError(t, err)

	assert.Equal(t, "def fibonacci(n):\n    ...\n", result.SourceText)
	assert.Equal(t, "python", result.Language)
	assert.Equal(t, 1, provider.calls)
	assert.NotEmpty(t, result.Meta.RequestID)
	assert.Equal(t, "test-model", result.Meta.Model)
	assert.False(t, result.Meta.Timestamp.IsZero())
}

func TestGenerateCodeValidation(t *testing.T) {
	testCases := []struct {
		name  string
		req   Request
		field string
	}{
		{
			name:  "empty prompt",
			req:   Request{Prompt: "", Language: "python"},
			field: "prompt",
		},
		{
			name:  "whitespace prompt",
			req:   Request{Prompt: "   \n\t ", Language: "python"},
			field: "prompt",
		},
		{
			name:  "unsupported language",
			req:   Request{Prompt: "Create a parser", Language: "cobol77"},
			field: "language",
		},
		{
			name:  "bad temperature override",
			req:   Request{Prompt: "Create a parser", Language: "python", Extra: map[string]string{"temperature": "5.0"}},
			field: "temperature",
		},
		{
			name:  "bad max_tokens override",
			req:   Request{Prompt: "Create a parser", Language: "python", Extra: map[string]string{"max_tokens": "-1"}},
			field: "max_tokens",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &stubProvider{response: "unused"}
			gen := testGenerator(t, testConfig(t), provider)

			_, err := gen.GenerateCode(context.Background(), tc.req)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
			assert.Equal(t, 0, provider.calls, "provider must not be called on invalid input")
		})
	}
}

func TestGenerateCodeWithTemplate(t *testing.T) {
	cfg := testConfig(t)
	writeTestTemplate(t, cfg, "python", "class",
		"class {{ class_name || \"Gen\" }}:\n    {{ generated_code | indent(4) }}")

	provider := &stubProvider{response: "pass"}
	gen := testGenerator(t, cfg, provider)

	result, err := gen.GenerateCode(context.Background(), Request{
		Prompt:       "Write an empty class body",
		Language:     "python",
		TemplateName: "class",
	})
	require.NoError(t, err)
	assert.Equal(t, "class Gen:\n    pass", result.SourceText)
}

func TestGenerateCodeTemplateFromPromptName(t *testing.T) {
	cfg := testConfig(t)
	writeTestTemplate(t, cfg, "python", "class",
		"class {{ class_name || \"Gen\" }}:\n    {{ generated_code | indent(4) }}")

	provider := &stubProvider{response: "pass"}
	gen := testGenerator(t, cfg, provider)

	result, err := gen.GenerateCode(context.Background(), Request{
		Prompt:       "Create a class called inventory_manager. It tracks stock levels.",
		Language:     "python",
		TemplateName: "class",
	})
	require.NoError(t, err)
	assert.Equal(t, "class InventoryManager:\n    pass", result.SourceText)
}

func TestGenerateCodeMissingTemplate(t *testing.T) {
	provider := &stubProvider{response: "unused"}
	gen := testGenerator(t, testConfig(t), provider)

	_, err := gen.GenerateCode(context.Background(), Request{
		Prompt:       "Create a thing",
		Language:     "python",
		TemplateName: "nonexistent",
	})

	var notFound *template.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 0, provider.calls, "missing template must fail before the provider call")
}

func TestGenerateCodeProviderErrorPropagates(t *testing.T) {
	providerErr := &ai.ProviderError{Provider: "stub", Err: assert.AnError}
	provider := &stubProvider{err: providerErr}
	gen := testGenerator(t, testConfig(t), provider)

	_, err := gen.GenerateCode(context.Background(), Request{
		Prompt:   "Create a thing",
		Language: "python",
	})

	var got *ai.ProviderError
	require.ErrorAs(t, err, &got)
	assert.Same(t, providerErr, got)
}

func TestGenerateCodeOptionOverrides(t *testing.T) {
	provider := &stubProvider{response: "x"}
	gen := testGenerator(t, testConfig(t), provider)

	result, err := gen.GenerateCode(context.Background(), Request{
		Prompt:   "Create a thing",
		Language: "python",
		Extra: map[string]string{
			"model":       "other-model",
			"temperature": "0.2",
			"max_tokens":  "256",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "other-model", provider.lastOpts.Model)
	assert.Equal(t, 0.2, provider.lastOpts.Temperature)
	assert.Equal(t, 256, provider.lastOpts.MaxTokens)
	assert.Equal(t, "other-model", result.Meta.Model)
}

func TestGenerateProject(t *testing.T) {
	cfg := testConfig(t)
	provider := &stubProvider{responses: []string{
		"# main",
		"# utils",
		"# tests",
		"# readme",
	}}
	gen := testGenerator(t, cfg, provider)

	files, err := gen.GenerateProject(context.Background(), "A simple calculator app", "calculator", nil)
	require.NoError(t, err)

	require.Len(t, files, 4)
	assert.Contains(t, files, "main.py")
	assert.Contains(t, files, "utils.py")
	assert.Contains(t, files, "tests.py")
	assert.Contains(t, files, "README.md")

	projectDir := filepath.Join(cfg.OutputDir, "calculator")
	for filename := range files {
		_, err := os.Stat(filepath.Join(projectDir, filename))
		assert.NoError(t, err, "expected %s to be written", filename)
	}
}

func TestGenerateProjectValidation(t *testing.T) {
	provider := &stubProvider{response: "unused"}
	gen := testGenerator(t, testConfig(t), provider)

	_, err := gen.GenerateProject(context.Background(), "", "calculator", nil)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = gen.GenerateProject(context.Background(), "desc", "", nil)
	require.ErrorAs(t, err, &validationErr)

	assert.Equal(t, 0, provider.calls)
}

func TestTaskHelpers(t *testing.T) {
	provider := &stubProvider{response: "answer"}
	gen := testGenerator(t, testConfig(t), provider)
	ctx := context.Background()

	out, err := gen.ExplainCode(ctx, "print('hi')")
	require.NoError(t, err)
	assert.Equal(t, "answer", out)

	out, err = gen.ReviewCode(ctx, "print('hi')")
	require.NoError(t, err)
	assert.Equal(t, "answer", out)

	out, err = gen.CompleteCode(ctx, "def f(", "finish the signature")
	require.NoError(t, err)
	assert.Equal(t, "answer", out)

	out, err = gen.RefactorCode(ctx, "print('hi')", "extract a function")
	require.NoError(t, err)
	assert.Equal(t, "answer", out)

	out, err = gen.GenerateTests(ctx, "print('hi')", "")
	require.NoError(t, err)
	assert.Equal(t, "answer", out)

	var validationErr *ValidationError
	_, err = gen.ExplainCode(ctx, "   ")
	require.ErrorAs(t, err, &validationErr)
	_, err = gen.RefactorCode(ctx, "code", "")
	require.ErrorAs(t, err, &validationErr)
}

func TestDeriveContext(t *testing.T) {
	testCases := []struct {
		name            string
		prompt          string
		wantDescription string
		wantClassName   string
	}{
		{
			name:            "plain prompt",
			prompt:          "Create a fibonacci function",
			wantDescription: "Create a fibonacci function",
		},
		{
			name:            "description stops at sentence break",
			prompt:          "Create a queue. It should be thread safe.",
			wantDescription: "Create a queue",
		},
		{
			name:            "named entity becomes class name",
			prompt:          "Create a class named order_book. It matches orders.",
			wantDescription: "Create a class named order_book",
			wantClassName:   "OrderBook",
		},
		{
			name:            "called keyword",
			prompt:          "Build a service called Billing",
			wantDescription: "Build a service called Billing",
			wantClassName:   "Billing",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			derived := deriveContext(tc.prompt)
			assert.Equal(t, tc.wantDescription, derived["description"])
			assert.Equal(t, tc.wantClassName, derived["class_name"])
		})
	}
}
