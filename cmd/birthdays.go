package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dbassse/kartoteka/internal/config"
	"github.com/dbassse/kartoteka/internal/domain/birthday"
	"github.com/dbassse/kartoteka/internal/log"
	"github.com/dbassse/kartoteka/internal/shell"
)

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "Run the birthday book shell",
	Long: `Start an interactive session over the birthday book. Supports add,
list, filter <month>, save <file>, load <file>, help and exit.`,
	RunE: func(*cobra.Command, []string) error {
		return runSession(func(cfg config.Config, logger *log.Logger) *shell.Shell {
			return shell.BirthdaySession(os.Stdin, os.Stdout, logger,
				birthday.NewBook(), cfg.DataDir, cfg.DefaultExtension)
		})
	},
}

func init() {
	rootCmd.AddCommand(birthdaysCmd)
}
