package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"aicodegen/src"
	"aicodegen/src/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fail(err)
		}

		if cfg.APIKey != "" {
			cfg.APIKey = maskKey(cfg.APIKey)
		}

		out, err := yaml.Marshal(cfg)
		if err != nil {
			fail(err)
		}

		src.PrintHighlight("AICodeGen configuration:")
		fmt.Print(string(out))
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value in the config file",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		key, value := args[0], args[1]

		viper.Set(key, value)
		if err := viper.WriteConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				src.PrintError("Error writing configuration: %v", err)
				os.Exit(1)
			}

			home, homeErr := os.UserHomeDir()
			if homeErr != nil {
				src.PrintError("Error locating home directory: %v", homeErr)
				os.Exit(1)
			}
			configDir := filepath.Join(home, ".aicodegen")
			if err := os.MkdirAll(configDir, 0755); err != nil {
				src.PrintError("Error creating config directory: %v", err)
				os.Exit(1)
			}
			if err := viper.WriteConfigAs(filepath.Join(configDir, "config.yaml")); err != nil {
				src.PrintError("Error writing configuration: %v", err)
				os.Exit(1)
			}
		}

		yellow := src.Yellow()
		src.PrintSuccess("Set %s to %s", key, yellow.Sprint(value))
	},
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
