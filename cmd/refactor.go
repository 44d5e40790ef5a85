package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"aicodegen/src"
)

var refactorCmd = &cobra.Command{
	Use:   "refactor [path] [goal]",
	Short: "Refactor a source file towards a stated goal using AI",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		gen, _, err := buildGenerator()
		if err != nil {
			fail(err)
		}

		code, err := src.ReadSource(args[0])
		if err != nil {
			fail(err)
		}

		src.PrintInfo("Refactoring %s...", args[0])
		refactored, err := gen.RefactorCode(context.Background(), code, args[1])
		if err != nil {
			fail(err)
		}

		src.PrintSuccess("Refactored code:")
		fmt.Println(refactored)
	},
}

func init() {
	rootCmd.AddCommand(refactorCmd)
}
