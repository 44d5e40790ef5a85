package cmd

import (
	"context"
	"errors"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"aicodegen/src"
)

var (
	projectComponents []string
	projectOutputDir  string
	projectRecipe     string
)

var projectCmd = &cobra.Command{
	Use:   "project [description] [name]",
	Short: "Generate a complete project structure",
	Args: func(cmd *cobra.Command, args []string) error {
		if projectRecipe != "" && len(args) == 0 {
			return nil
		}
		if len(args) == 2 {
			return nil
		}
		return errors.New("this command requires a description and a name, or a --recipe file")
	},
	Run: func(cmd *cobra.Command, args []string) {
		description, name := "", ""
		components := projectComponents

		if projectRecipe != "" {
			recipe, err := src.LoadProjectRecipe(projectRecipe)
			if err != nil {
				fail(err)
			}
			description = recipe.Description
			name = recipe.Name
			if len(recipe.Components) > 0 {
				components = recipe.Components
			}
			if recipe.OutputDir != "" && projectOutputDir == "" {
				projectOutputDir = recipe.OutputDir
			}
		} else {
			description, name = args[0], args[1]
		}

		if projectOutputDir != "" {
			viper.Set("outputDir", projectOutputDir)
		}

		gen, cfg, err := buildGenerator()
		if err != nil {
			fail(err)
		}

		yellow := src.Yellow()
		src.PrintHighlight("--- Generating project: %s ---", yellow.Sprint(name))

		files, err := gen.GenerateProject(context.Background(), description, name, components)
		if err != nil {
			fail(err)
		}

		filenames := make([]string, 0, len(files))
		for filename := range files {
			filenames = append(filenames, filename)
		}
		sort.Strings(filenames)

		src.PrintSuccess("Generated %d files in %s/%s:", len(files), cfg.OutputDir, name)
		for _, filename := range filenames {
			src.PrintInfo("  %s", filename)
		}
	},
}

func init() {
	projectCmd.Flags().StringArrayVarP(&projectComponents, "component", "C", nil, "component to generate (repeatable)")
	projectCmd.Flags().StringVarP(&projectOutputDir, "output-dir", "o", "", "output directory for the project")
	projectCmd.Flags().StringVarP(&projectRecipe, "recipe", "r", "", "YAML recipe file describing the project")

	rootCmd.AddCommand(projectCmd)
}
