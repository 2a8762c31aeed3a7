package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/config"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/infrastructure/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if err := migration.NewMigration(cfg, migration.DefaultEngine).Up(); err != nil {
			return err
		}

		color.Green("Migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
