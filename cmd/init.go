package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/abircic/aash/core/config"
)

// initCmd writes a starter configuration file.
var initCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Write a default configuration file, to the current directory unless PATH is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		path := "."
		if len(args) > 0 {
			path = args[0]
		}

		logger := log.New(cmd.ErrOrStderr(), "", 0)

		return config.Initialize(path, logger)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
