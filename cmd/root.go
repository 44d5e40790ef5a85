package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"aicodegen/src/config"
)

type VersionInfo struct {
	Status string
	Number string
	Commit string
}

var (
	cfgFile            string
	debugFlag          bool
	currentVersionInfo VersionInfo
)

var rootCmd = &cobra.Command{
	Use:          "aicodegen",
	Short:        "AICodeGen - AI-powered code generation from the command line.",
	SilenceUsage: true,
}

func Execute(versionInfo VersionInfo) {
	currentVersionInfo = versionInfo

	rootCmd.Version = fmt.Sprintf("%s %s %s",
		versionInfo.Status, versionInfo.Number, versionInfo.Commit)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}

func initConfig() {
	_ = godotenv.Load()

	config.SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(filepath.Join(home, ".aicodegen"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("AICODEGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			cobra.CheckErr(err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile == "" {
			cobra.CheckErr(err)
		}
	}

	if debugFlag {
		viper.Set("debug", true)
	}
}
