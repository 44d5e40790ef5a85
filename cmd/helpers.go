package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"aicodegen/src"
	"aicodegen/src/ai"
	"aicodegen/src/config"
	"aicodegen/src/generator"
	"aicodegen/src/template"
)

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// builtinTemplateDir is the catalog shipped next to the binary, used when the
// configured template directory does not exist.
func builtinTemplateDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "templates"
	}
	return filepath.Join(filepath.Dir(exe), "templates")
}

func buildGenerator() (*generator.Generator, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	provider, err := ai.NewProvider(cfg)
	if err != nil {
		return nil, nil, err
	}

	store := template.NewStore(cfg.TemplateDir, builtinTemplateDir())
	log := newLogger(cfg.Debug)

	return generator.New(cfg, provider, store, log), cfg, nil
}

func fail(err error) {
	var validationErr *generator.ValidationError
	var notFoundErr *template.NotFoundError
	var providerErr *ai.ProviderError

	switch {
	case errors.As(err, &validationErr):
		src.PrintError("Invalid input: %v", err)
	case errors.As(err, &notFoundErr):
		src.PrintError("Template error: %v", err)
	case errors.As(err, &providerErr):
		src.PrintError("Provider error: %v", err)
	default:
		src.PrintError("Error: %v", err)
	}
	os.Exit(1)
}
