package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"aicodegen/src"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer version of AICodeGen is available",
	Run: func(cmd *cobra.Command, args []string) {
		src.PrintInfo("Checking for updates...")

		remote, err := src.FetchRemoteVersionInfo()
		if err != nil {
			src.PrintError("Failed to fetch version information: %v", err)
			os.Exit(1)
		}

		available, err := src.IsUpdateAvailable(
			currentVersionInfo.Status,
			currentVersionInfo.Number,
			remote.Latest,
		)
		if err != nil {
			src.PrintError("Failed to compare versions: %v", err)
			os.Exit(1)
		}

		if available {
			yellow := src.Yellow()
			src.PrintSuccess("A new version is available: %s (%s)",
				yellow.Sprint(remote.Latest.Version), remote.Latest.Status)
			src.PrintInfo("Current version: %s (%s)", currentVersionInfo.Number, currentVersionInfo.Status)
		} else {
			src.PrintSuccess("You are running the latest version (%s).", currentVersionInfo.Number)
		}
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
