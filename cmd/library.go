package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dbassse/kartoteka/internal/config"
	"github.com/dbassse/kartoteka/internal/domain/library"
	"github.com/dbassse/kartoteka/internal/log"
	"github.com/dbassse/kartoteka/internal/shell"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Run the library catalog shell",
	Long: `Start an interactive session over the library catalog. Supports add,
list, select <text>, save <file>, load <file>, help and exit.`,
	RunE: func(*cobra.Command, []string) error {
		return runSession(func(cfg config.Config, logger *log.Logger) *shell.Shell {
			return shell.LibrarySession(os.Stdin, os.Stdout, logger,
				library.NewCatalog(cfg.Library.MaxYear), cfg.DataDir, cfg.DefaultExtension)
		})
	},
}

func init() {
	rootCmd.AddCommand(libraryCmd)
}
