// Package commands defines the CLI entry points.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"carmarket/version"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "carmarket",
		Short: "Car dealership REST API and event subscriber",
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "path to the configuration file")

	rootCmd.AddCommand(
		NewServerCommand(),
		NewSubscriberCommand(),
		newVersionCommand(),
	)

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Get())
		},
	}
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
