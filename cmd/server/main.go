package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "agendasync-server",
	Short: "Authority for shared meeting agendas",
	Long: `agendasync-server stores meeting agenda documents for groups of devices
and arbitrates concurrent edits with per-document versions.

Configuration is read from --config (YAML) and AGENDASYNC_* environment variables.`,
	SilenceUsage: true,
	Version:      Version,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (YAML)")
	rootCmd.SetVersionTemplate(fmt.Sprintf("agendasync-server\nVersion:    %s\nBuild Date: %s\nGit Commit: %s\n", Version, BuildDate, GitCommit))

	rootCmd.AddCommand(serveCmd, groupCmd, memberCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
