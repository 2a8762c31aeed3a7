package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var genkeyCmd = &cobra.Command{
	Use:   "genkey",
	Short: "Generate a journal master key",
	Long: `Prints a fresh random 32-byte key as hex, suitable for the
JOURNAL_MASTER_KEY environment variable. Losing this key makes every sealed
journal entry unrecoverable, so store it somewhere durable.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return fmt.Errorf("generate key: %w", err)
		}

		fmt.Println(hex.EncodeToString(key))
		color.Yellow("Store this key safely; entries sealed with it cannot be recovered without it.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genkeyCmd)
}
