package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"aicodegen/src"
	"aicodegen/src/generator"
)

var (
	generateOutput      string
	generateTemplate    string
	generateLanguage    string
	generateContextURL  string
	generateModel       string
	generateTemperature string
	generateMaxTokens   string
)

var generateCmd = &cobra.Command{
	Use:   "generate [prompt]",
	Short: "Generate code from a natural language prompt",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		gen, cfg, err := buildGenerator()
		if err != nil {
			fail(err)
		}

		reference := ""
		if generateContextURL != "" {
			src.PrintInfo("Fetching reference material from %s...", generateContextURL)
			reference, err = src.FetchPageText(generateContextURL)
			if err != nil {
				fail(err)
			}
		}

		extra := map[string]string{}
		if generateModel != "" {
			extra["model"] = generateModel
		}
		if generateTemperature != "" {
			extra["temperature"] = generateTemperature
		}
		if generateMaxTokens != "" {
			extra["max_tokens"] = generateMaxTokens
		}

		src.PrintInfo("Generating code...")
		result, err := gen.GenerateCode(context.Background(), generator.Request{
			Prompt:       args[0],
			Language:     generateLanguage,
			TemplateName: generateTemplate,
			Reference:    reference,
			Extra:        extra,
		})
		if err != nil {
			fail(err)
		}

		if generateOutput != "" {
			outputPath := filepath.Join(cfg.OutputDir, generateOutput)
			if err := src.SaveCode(outputPath, result.SourceText); err != nil {
				fail(err)
			}
			src.PrintSuccess("Code saved to: %s", outputPath)
		} else {
			src.PrintSuccess("Generated code (%s):", result.Language)
			fmt.Println(result.SourceText)
		}

		src.PrintInfo("Model: %s | ~%d tokens | Request: %s",
			result.Meta.Model, result.Meta.TokenEstimate, result.Meta.RequestID)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output file path, relative to the output directory")
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "", "template to apply to the generated code")
	generateCmd.Flags().StringVarP(&generateLanguage, "language", "l", "", "target programming language")
	generateCmd.Flags().StringVar(&generateContextURL, "context-url", "", "URL whose text is attached to the prompt as reference")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "override the configured model")
	generateCmd.Flags().StringVar(&generateTemperature, "temperature", "", "override the configured temperature")
	generateCmd.Flags().StringVar(&generateMaxTokens, "max-tokens", "", "override the configured token limit")

	rootCmd.AddCommand(generateCmd)
}
