package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dbassse/kartoteka/internal/config"
	"github.com/dbassse/kartoteka/internal/domain/garage"
	"github.com/dbassse/kartoteka/internal/log"
	"github.com/dbassse/kartoteka/internal/shell"
)

var carsCmd = &cobra.Command{
	Use:   "cars",
	Short: "Run the car registry shell",
	Long: `Start an interactive session over the car registry. Supports add,
list, check <speed>, speeding, brand <name>, save <file>, load <file>,
help and exit.`,
	RunE: func(*cobra.Command, []string) error {
		return runSession(func(cfg config.Config, logger *log.Logger) *shell.Shell {
			return shell.GarageSession(os.Stdin, os.Stdout, logger,
				garage.NewRegistry(), cfg.DataDir, cfg.DefaultExtension)
		})
	},
}

func init() {
	rootCmd.AddCommand(carsCmd)
}
