package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"aicodegen/src"
)

var explainContextURL string

var explainCmd = &cobra.Command{
	Use:   "explain [path]",
	Short: "Explain a source file using AI",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		gen, _, err := buildGenerator()
		if err != nil {
			fail(err)
		}

		code, err := src.ReadSource(args[0])
		if err != nil {
			fail(err)
		}

		if explainContextURL != "" {
			src.PrintInfo("Fetching reference material from %s...", explainContextURL)
			reference, err := src.FetchPageText(explainContextURL)
			if err != nil {
				fail(err)
			}
			code = code + "\n\nReference material:\n" + reference
		}

		src.PrintInfo("Explaining %s...", args[0])
		explanation, err := gen.ExplainCode(context.Background(), code)
		if err != nil {
			fail(err)
		}

		src.PrintSuccess("Code explanation for %s:", args[0])
		fmt.Println(explanation)
	},
}

func init() {
	explainCmd.Flags().StringVar(&explainContextURL, "context-url", "", "URL whose text is attached as reference")
	rootCmd.AddCommand(explainCmd)
}
