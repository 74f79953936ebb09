// Package main boots the carmarket server and subscriber.
package main

import (
	"fmt"
	"os"

	"carmarket/cmd/carmarket/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
