package src

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type ProjectRecipe struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Components  []string `yaml:"components"`
	OutputDir   string   `yaml:"outputDir,omitempty"`
}

func LoadProjectRecipe(filename string) (*ProjectRecipe, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("recipe file not found: %s", filename)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}

	var recipe ProjectRecipe
	err = yaml.Unmarshal(data, &recipe)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filename, err)
	}

	if recipe.Name == "" {
		return nil, fmt.Errorf("recipe %s is missing a project name", filename)
	}
	if recipe.Description == "" {
		return nil, fmt.Errorf("recipe %s is missing a project description", filename)
	}

	return &recipe, nil
}
