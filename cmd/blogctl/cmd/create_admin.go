package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/app/server/config"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/user"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/infrastructure/storage/postgres"
	"github.com/tpdoyle87/tomanddeb-sub001/internal/utils/logger"
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Provision an admin account",
	Long: `Creates a user with the admin role. Registration is not open to the
public, so this is how the first account of a deployment comes to exist.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log := logger.New(cfg.Env)

		ctx := cmd.Context()
		storage, err := postgres.New(ctx, cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer storage.Close()

		fmt.Print("Email: ")
		var email string
		if _, err := fmt.Scanln(&email); err != nil {
			return fmt.Errorf("read email: %w", err)
		}

		fmt.Print("Name: ")
		var name string
		if _, err := fmt.Scanln(&name); err != nil {
			return fmt.Errorf("read name: %w", err)
		}

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		repo := postgres.NewUserRepository(storage.Pool(), log)
		service := user.NewService(repo, user.NewAccountValidator(), log)

		u, err := service.Register(ctx, email, name, string(password), user.RoleAdmin)
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}

		color.Green("Admin account created: %s (%s)", u.Email, u.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createAdminCmd)
}
