package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"aicodegen/src"
)

var completeHint string

var completeCmd = &cobra.Command{
	Use:   "complete [path]",
	Short: "Complete partial code in a source file using AI",
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

		src.PrintInfo("Completing %s...", args[0])
		completed, err := gen.CompleteCode(context.Background(), code, completeHint)
		if err != nil {
			fail(err)
		}

		src.PrintSuccess("Completed code:")
		fmt.Println(completed)
	},
}

func init() {
	completeCmd.Flags().StringVar(&completeHint, "hint", "", "additional context for the completion")
	rootCmd.AddCommand(completeCmd)
}
