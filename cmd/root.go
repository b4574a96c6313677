// Package cmd defines the kartoteka command-line interface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dbassse/kartoteka/internal/config"
	"github.com/dbassse/kartoteka/internal/log"
	"github.com/dbassse/kartoteka/internal/shell"
)

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "kartoteka",
	Short:   "Interactive record registries with XML persistence",
	Long: `Kartoteka keeps three small registries - a birthday book, a car
registry and a library catalog - each behind an interactive shell with
add/list/filter/save/load commands and tagged-XML persistence.`,
	Version: version,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/kartoteka/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"log debug-level entries")
	rootCmd.PersistentFlags().String("data-dir", "",
		"directory for relative data files")
	rootCmd.PersistentFlags().String("log-file", "",
		"file the session log is appended to")

	// Bind flags to viper
	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	_ = viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("data_dir", defaults.DataDir)
	viper.SetDefault("log_file", defaults.LogFile)
	viper.SetDefault("default_extension", defaults.DefaultExtension)
	viper.SetDefault("library.max_year", defaults.Library.MaxYear)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .kartoteka/config.yaml (current directory)
		// 2. ~/.config/kartoteka/config.yaml (user config)
		if _, err := os.Stat(".kartoteka/config.yaml"); err == nil {
			viper.SetConfigFile(".kartoteka/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "kartoteka"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .kartoteka/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".kartoteka/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// runSession validates the config, opens the session log, and runs the
// shell built by the given constructor until exit.
func runSession(build func(cfg config.Config, logger *log.Logger) *shell.Shell) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, cleanup, err := log.New(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer cleanup()

	if debug {
		logger.SetMinLevel(log.LevelDebug)
	} else {
		logger.SetMinLevel(log.LevelInfo)
	}
	logger.Debug(log.CatConfig, "effective configuration",
		"data_dir", cfg.DataDir, "log_file", cfg.LogFile,
		"extension", cfg.DefaultExtension, "library_max_year", cfg.Library.MaxYear)

	return build(cfg, logger).Run()
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
