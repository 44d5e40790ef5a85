package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Provider    string   `yaml:"provider"`
	Model       string   `yaml:"model"`
	APIKey      string   `yaml:"api,omitempty"`
	Endpoint    string   `yaml:"endpoint,omitempty"`
	MaxTokens   int      `yaml:"maxTokens"`
	Temperature float64  `yaml:"temperature"`
	OutputDir   string   `yaml:"outputDir"`
	TemplateDir string   `yaml:"templateDir"`
	Language    string   `yaml:"language"`
	Languages   []string `yaml:"languages,omitempty"`
	Debug       bool     `yaml:"debug,omitempty"`
}

var DefaultLanguages = []string{
	"python", "javascript", "typescript", "java", "cpp", "csharp", "go", "rust",
}

func SetDefaults() {
	viper.SetDefault("provider", "openai")
	viper.SetDefault("model", "gpt-4o-mini")
	viper.SetDefault("maxTokens", 1000)
	viper.SetDefault("temperature", 0.7)
	viper.SetDefault("outputDir", "./generated")
	viper.SetDefault("templateDir", "./templates")
	viper.SetDefault("language", "python")
	viper.SetDefault("languages", DefaultLanguages)
	viper.SetDefault("debug", false)
}

func Load() (*Config, error) {
	cfg := &Config{
		Provider:    viper.GetString("provider"),
		Model:       viper.GetString("model"),
		APIKey:      viper.GetString("api"),
		Endpoint:    viper.GetString("endpoint"),
		MaxTokens:   viper.GetInt("maxTokens"),
		Temperature: viper.GetFloat64("temperature"),
		OutputDir:   viper.GetString("outputDir"),
		TemplateDir: viper.GetString("templateDir"),
		Language:    viper.GetString("language"),
		Languages:   viper.GetStringSlice("languages"),
		Debug:       viper.GetBool("debug"),
	}

	if cfg.APIKey == "" {
		cfg.APIKey = apiKeyFromEnv(cfg.Provider)
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = DefaultLanguages
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MaxTokens <= 0 {
		return fmt.Errorf("maxTokens must be greater than 0, got %d", c.MaxTokens)
	}
	if c.Temperature < 0.0 || c.Temperature > 2.0 {
		return fmt.Errorf("temperature must be between 0.0 and 2.0, got %g", c.Temperature)
	}
	return nil
}

func (c *Config) SupportsLanguage(language string) bool {
	for _, l := range c.Languages {
		if strings.EqualFold(l, language) {
			return true
		}
	}
	return false
}

func apiKeyFromEnv(provider string) string {
	switch strings.ToLower(strings.ReplaceAll(provider, " ", "")) {
	case "anthropic", "claude":
		return os.Getenv("ANTHROPIC_API_KEY")
	default:
		return os.Getenv("OPENAI_API_KEY")
	}
}
