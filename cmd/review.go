package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"aicodegen/src"
)

var reviewCmd = &cobra.Command{
	Use:   "review [path]",
	Short: "Review a source file using AI",
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

		src.PrintInfo("Reviewing %s...", args[0])
		review, err := gen.ReviewCode(context.Background(), code)
		if err != nil {
			fail(err)
		}

		src.PrintSuccess("Code review for %s:", args[0])
		fmt.Println(review)
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}
