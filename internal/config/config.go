// Package config provides configuration types, defaults, and persistence
// for kartoteka.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// LibraryConfig holds per-catalog policy for the library registry.
type LibraryConfig struct {
	// MaxYear is the fixed ceiling for a book's publication year. This is
	// deliberately not tied to the wall clock; the birthday book's year
	// bound is, and the asymmetry is intentional per-domain policy.
	MaxYear int `mapstructure:"max_year" validate:"gt=0"`
}

// Config holds all configuration options for kartoteka.
type Config struct {
	DataDir          string        `mapstructure:"data_dir" validate:"required"`
	LogFile          string        `mapstructure:"log_file" validate:"required"`
	DefaultExtension string        `mapstructure:"default_extension" validate:"required,startswith=."`
	Library          LibraryConfig `mapstructure:"library"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		DataDir:          ".",
		LogFile:          "kartoteka.log",
		DefaultExtension: ".xml",
		Library: LibraryConfig{
			MaxYear: 2024,
		},
	}
}

var validate = validator.New()

// Validate checks the configuration and returns the first violation found.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config field %s: failed %q constraint (value %v)",
				fe.Namespace(), fe.Tag(), fe.Value())
		}
		return err
	}
	return nil
}
