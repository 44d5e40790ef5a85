package generator

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"aicodegen/src"
	"aicodegen/src/ai"
	"aicodegen/src/config"
	"aicodegen/src/template"
)

// charsPerToken is a rough estimate used for reporting only.
const charsPerToken = 4

var defaultProjectComponents = []string{"main", "utils", "tests", "readme"}

var fileExtensions = map[string]string{
	"python":     "py",
	"javascript": "js",
	"typescript": "ts",
	"java":       "java",
	"cpp":        "cpp",
	"csharp":     "cs",
	"go":         "go",
	"rust":       "rs",
}

type Generator struct {
	cfg      *config.Config
	provider ai.Provider
	store    *template.Store
	log      zerolog.Logger
}

func New(cfg *config.Config, provider ai.Provider, store *template.Store, log zerolog.Logger) *Generator {
	return &Generator{
		cfg:      cfg,
		provider: provider,
		store:    store,
		log:      log,
	}
}

// GenerateCode runs the full pipeline for one request: validate, call the
// provider, apply the requested template, wrap the result. Validation and
// template resolution both happen before the provider call so that invalid
// input never incurs a paid request.
func (g *Generator) GenerateCode(ctx context.Context, req Request) (*Result, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, &ValidationError{Field: "prompt", Reason: "prompt must not be empty"}
	}

	language := req.Language
	if language == "" {
		language = g.cfg.Language
	}
	language = strings.ToLower(language)
	if !g.cfg.SupportsLanguage(language) {
		return nil, &ValidationError{
			Field:  "language",
			Reason: fmt.Sprintf("unsupported language '%s', supported languages are: %s", language, strings.Join(g.cfg.Languages, ", ")),
		}
	}

	var tmpl *template.Template
	if req.TemplateName != "" {
		var err error
		tmpl, err = g.store.Load(language, req.TemplateName)
		if err != nil {
			return nil, err
		}
	}

	opts, err := g.options(req)
	if err != nil {
		return nil, err
	}

	var fullPrompt string
	if req.Reference != "" {
		fullPrompt = fmt.Sprintf(generateWithContextPromptTemplate, language, req.Reference, prompt)
	} else {
		fullPrompt = fmt.Sprintf(generatePromptTemplate, language, prompt)
	}

	g.log.Debug().
		Str("provider", g.provider.Name()).
		Str("model", opts.Model).
		Int("prompt_chars", len(fullPrompt)).
		Msg("requesting generation")

	generated, err := g.provider.Generate(ctx, fullPrompt, opts)
	if err != nil {
		return nil, err
	}

	sourceText := generated
	if tmpl != nil {
		sourceText, err = template.Render(tmpl, g.renderContext(req, language, generated))
		if err != nil {
			return nil, err
		}
	}

	return g.result(sourceText, language, opts), nil
}

// GenerateProject generates one file per component and writes the project
// tree under the configured output directory. Components run sequentially;
// one provider call is in flight at a time.
func (g *Generator) GenerateProject(ctx context.Context, description, name string, components []string) (map[string]string, error) {
	if strings.TrimSpace(description) == "" {
		return nil, &ValidationError{Field: "description", Reason: "project description must not be empty"}
	}
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "project name must not be empty"}
	}
	if len(components) == 0 {
		components = defaultProjectComponents
	}

	language := strings.ToLower(g.cfg.Language)
	if !g.cfg.SupportsLanguage(language) {
		return nil, &ValidationError{
			Field:  "language",
			Reason: fmt.Sprintf("unsupported language '%s', supported languages are: %s", language, strings.Join(g.cfg.Languages, ", ")),
		}
	}

	opts, err := g.options(Request{})
	if err != nil {
		return nil, err
	}

	files := make(map[string]string, len(components))
	for _, component := range components {
		prompt := fmt.Sprintf(projectComponentPromptTemplate, component, name, description, language)

		g.log.Debug().Str("component", component).Msg("generating project component")
		content, err := g.provider.Generate(ctx, prompt, opts)
		if err != nil {
			return nil, err
		}

		filename := component + "." + g.fileExtension(language)
		if component == "readme" {
			filename = "README.md"
		}
		files[filename] = content
	}

	projectDir := filepath.Join(g.cfg.OutputDir, name)
	for filename, content := range files {
		if err := src.SaveCode(filepath.Join(projectDir, filename), content); err != nil {
			return nil, err
		}
	}

	return files, nil
}

func (g *Generator) ExplainCode(ctx context.Context, code string) (string, error) {
	return g.runTask(ctx, code, explainPromptTemplate)
}

func (g *Generator) ReviewCode(ctx context.Context, code string) (string, error) {
	return g.runTask(ctx, code, reviewPromptTemplate)
}

func (g *Generator) CompleteCode(ctx context.Context, partialCode, hint string) (string, error) {
	if strings.TrimSpace(partialCode) == "" {
		return "", &ValidationError{Field: "code", Reason: "code must not be empty"}
	}
	prompt := fmt.Sprintf(completePromptTemplate, partialCode)
	if hint != "" {
		prompt = fmt.Sprintf(completeWithContextPromptTemplate, partialCode, hint)
	}
	opts, err := g.options(Request{})
	if err != nil {
		return "", err
	}
	return g.provider.Generate(ctx, prompt, opts)
}

func (g *Generator) RefactorCode(ctx context.Context, code, goal string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", &ValidationError{Field: "code", Reason: "code must not be empty"}
	}
	if strings.TrimSpace(goal) == "" {
		return "", &ValidationError{Field: "goal", Reason: "refactoring goal must not be empty"}
	}
	opts, err := g.options(Request{})
	if err != nil {
		return "", err
	}
	return g.provider.Generate(ctx, fmt.Sprintf(refactorPromptTemplate, goal, code), opts)
}

func (g *Generator) GenerateTests(ctx context.Context, code, framework string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", &ValidationError{Field: "code", Reason: "code must not be empty"}
	}
	if framework == "" {
		framework = "pytest"
	}
	opts, err := g.options(Request{})
	if err != nil {
		return "", err
	}
	return g.provider.Generate(ctx, fmt.Sprintf(testsPromptTemplate, framework, framework, code), opts)
}

func (g *Generator) runTask(ctx context.Context, code, promptTemplate string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", &ValidationError{Field: "code", Reason: "code must not be empty"}
	}
	opts, err := g.options(Request{})
	if err != nil {
		return "", err
	}
	return g.provider.Generate(ctx, fmt.Sprintf(promptTemplate, code), opts)
}

func (g *Generator) options(req Request) (ai.Options, error) {
	opts := ai.Options{
		Model:       g.cfg.Model,
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
	}

	if v := req.Extra["model"]; v != "" {
		opts.Model = v
	}
	if v := req.Extra["temperature"]; v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0.0 || f > 2.0 {
			return opts, &ValidationError{Field: "temperature", Reason: fmt.Sprintf("must be a number between 0.0 and 2.0, got '%s'", v)}
		}
		opts.Temperature = f
	}
	if v := req.Extra["max_tokens"]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return opts, &ValidationError{Field: "max_tokens", Reason: fmt.Sprintf("must be a positive integer, got '%s'", v)}
		}
		opts.MaxTokens = n
	}

	return opts, nil
}

func (g *Generator) renderContext(req Request, language, generated string) template.Context {
	ctx := template.Context{
		"generated_code": generated,
		"language":       language,
	}
	for k, v := range deriveContext(req.Prompt) {
		ctx[k] = v
	}
	for k, v := range req.Extra {
		switch k {
		case "model", "temperature", "max_tokens":
			continue
		}
		ctx[k] = v
	}
	return ctx
}

func (g *Generator) result(sourceText, language string, opts ai.Options) *Result {
	return &Result{
		SourceText: sourceText,
		Language:   language,
		Meta: Metadata{
			RequestID:     uuid.NewString(),
			Model:         opts.Model,
			TokenEstimate: len(sourceText) / charsPerToken,
			Timestamp:     time.Now().UTC(),
		},
	}
}

func (g *Generator) fileExtension(language string) string {
	if ext, ok := fileExtensions[language]; ok {
		return ext
	}
	return "txt"
}

var namedEntityRe = regexp.MustCompile(`(?i)\b(?:named|called)\s+['"]?([A-Za-z_][A-Za-z0-9_]*)['"]?`)

// deriveContext pulls template fields out of the prompt text ahead of the
// first sentence break.
func deriveContext(prompt string) map[string]string {
	sentence := firstSentence(prompt)
	derived := map[string]string{
		"description": sentence,
	}

	if m := namedEntityRe.FindStringSubmatch(sentence); m != nil {
		derived["class_name"] = toPascalCase(m[1])
		derived["module_name"] = strings.ToLower(m[1])
	}
	return derived
}

func firstSentence(s string) string {
	s = strings.TrimSpace(s)
	for i, r := range s {
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			return strings.TrimSpace(s[:i])
		}
	}
	return s
}

func toPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
