package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// defaultConfigTemplate is written on first run when no config file exists.
const defaultConfigTemplate = `# kartoteka configuration
# Directory where save/load resolves relative data files.
data_dir: %q

# File the session log is appended to.
log_file: %q

# Extension appended to bare filenames passed to save/load.
default_extension: %q

library:
  # Fixed ceiling for a book's publication year.
  max_year: %d
`

// WriteDefaultConfig writes the default configuration to path, creating
// parent directories as needed. The write is atomic (temp file + rename).
func WriteDefaultConfig(path string) error {
	d := Defaults()
	content := fmt.Sprintf(defaultConfigTemplate,
		d.DataDir, d.LogFile, d.DefaultExtension, d.Library.MaxYear)

	// Sanity check: the template must stay parseable YAML.
	var probe map[string]any
	if err := yaml.Unmarshal([]byte(content), &probe); err != nil {
		return fmt.Errorf("default config template is invalid: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".kartoteka.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(bytes.TrimLeft([]byte(content), "\n")); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
