package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blogctl",
	Short: "Operational tooling for the blog backend",
	Long: `blogctl bundles the operations that do not belong in the HTTP API:
provisioning the first admin account, generating the journal master key and
running database migrations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
