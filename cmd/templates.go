package cmd

import (
	"github.com/spf13/cobra"

	"aicodegen/src"
	"aicodegen/src/config"
	"aicodegen/src/template"
)

var templatesCmd = &cobra.Command{
	Use:   "templates [language]",
	Short: "List available code templates",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fail(err)
		}

		store := template.NewStore(cfg.TemplateDir, builtinTemplateDir())

		languages := args
		if len(languages) == 0 {
			languages, err = store.Languages()
			if err != nil {
				fail(err)
			}
			if len(languages) == 0 {
				src.PrintInfo("No templates found in %s.", store.Root())
				return
			}
		}

		yellow := src.Yellow()
		src.PrintHighlight("Templates in %s:", store.Root())
		for _, language := range languages {
			names, err := store.List(language)
			if err != nil {
				fail(err)
			}
			if len(names) == 0 {
				src.PrintInfo("%s: (none)", language)
				continue
			}
			for _, name := range names {
				src.PrintInfo("%s/%s", language, yellow.Sprint(name))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
