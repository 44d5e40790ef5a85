package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"aicodegen/src"
	"aicodegen/src/ai"
	"aicodegen/src/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively set up the AICodeGen configuration",
	Run: func(cmd *cobra.Command, args []string) {
		presetNames := make([]string, len(ai.ModelPresets))
		for i, preset := range ai.ModelPresets {
			presetNames[i] = preset.DisplayName
		}

		templates := &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   `{{ "›" | green | bold }} {{ . | green | bold }}`,
			Inactive: "  {{ . | faint }}",
			Selected: `{{ "✔" | green | bold }} {{ "Selected:" | bold }} {{ . | yellow }}`,
		}

		modelPrompt := promptui.Select{
			Label:     "Select a model",
			Items:     presetNames,
			Templates: templates,
		}

		modelIdx, _, err := modelPrompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				src.PrintInfo("Setup cancelled.")
			}
			return
		}
		preset := ai.ModelPresets[modelIdx]

		keyPrompt := promptui.Prompt{
			Label: "API key for " + preset.Provider + " (leave empty to use environment variables)",
			Mask:  '*',
		}
		apiKey, err := keyPrompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				src.PrintInfo("Setup cancelled.")
			}
			return
		}

		languagePrompt := promptui.Select{
			Label:     "Default target language",
			Items:     config.DefaultLanguages,
			Templates: templates,
		}
		_, language, err := languagePrompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				src.PrintInfo("Setup cancelled.")
			}
			return
		}

		viper.Set("provider", preset.Provider)
		viper.Set("model", preset.ModelName)
		viper.Set("language", language)
		if apiKey != "" {
			viper.Set("api", apiKey)
		}

		home, err := os.UserHomeDir()
		if err != nil {
			src.PrintError("Error locating home directory: %v", err)
			os.Exit(1)
		}
		configDir := filepath.Join(home, ".aicodegen")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			src.PrintError("Error creating config directory: %v", err)
			os.Exit(1)
		}
		configPath := filepath.Join(configDir, "config.yaml")
		if err := viper.WriteConfigAs(configPath); err != nil {
			src.PrintError("Error writing configuration: %v", err)
			os.Exit(1)
		}

		src.PrintSuccess("Configuration written to %s", configPath)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
