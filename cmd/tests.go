package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"aicodegen/src"
)

var testsFramework string

var testsCmd = &cobra.Command{
	Use:   "tests [path]",
	Short: "Generate unit tests for a source file using AI",
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

		src.PrintInfo("Generating %s tests for %s...", testsFramework, args[0])
		generated, err := gen.GenerateTests(context.Background(), code, testsFramework)
		if err != nil {
			fail(err)
		}

		src.PrintSuccess("Generated tests:")
		fmt.Println(generated)
	},
}

func init() {
	testsCmd.Flags().StringVar(&testsFramework, "framework", "pytest", "test framework to target")
	rootCmd.AddCommand(testsCmd)
}
