package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bgmi-server",
	Short: "Tournament registration and deposit tracking server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func main() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(adminTokenCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
