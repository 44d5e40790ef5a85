package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"aicodegen/src"
	"aicodegen/src/analyzer"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze source file structure and line counts",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		code, err := src.ReadSource(args[0])
		if err != nil {
			fail(err)
		}

		language := analyzer.LanguageFromExtension(filepath.Ext(args[0]))
		yellow := src.Yellow()

		src.PrintHighlight("--- Analysis: %s (%s) ---", args[0], yellow.Sprint(language))

		counts := analyzer.CountLines(code)
		src.PrintInfo("Total lines:   %d", counts.Total)
		src.PrintInfo("Code lines:    %d", counts.Code)
		src.PrintInfo("Comment lines: %d", counts.Comment)
		src.PrintInfo("Blank lines:   %d", counts.Blank)

		if !analyzer.SupportsLanguage(language) {
			src.PrintInfo("Function extraction is not supported for %s files.", language)
			return
		}

		functions := analyzer.ExtractFunctions(code, language)
		src.PrintSuccess("Functions found: %d", len(functions))
		for _, fn := range functions {
			fmt.Printf("  %s (line %d): %s\n", yellow.Sprint(fn.Name), fn.Line, fn.Signature)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
