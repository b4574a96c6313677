// Package storage reads and writes the tagged XML files the registries
// persist to. Writes are atomic (temp file + rename) so a failed save never
// leaves a truncated file behind.
package storage

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

// DataFormatError reports a structural save/load failure: I/O errors,
// missing files, or markup that does not parse at all.
type DataFormatError struct {
	Path string
	Err  error
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("%s -> invalid data format: %v", e.Path, e.Err)
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}

// WriteXML marshals doc and writes it to path with the standard XML
// declaration. The file appears either complete or not at all.
func WriteXML(path string, doc any) error {
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &DataFormatError{Path: path, Err: err}
	}
	payload := append([]byte(xml.Header), data...)
	payload = append(payload, '\n')

	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return &DataFormatError{Path: path, Err: err}
	}
	tempPath := temp.Name()

	if _, err := temp.Write(payload); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return &DataFormatError{Path: path, Err: err}
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return &DataFormatError{Path: path, Err: err}
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return &DataFormatError{Path: path, Err: err}
	}
	return nil
}

// ReadXML parses the file at path into doc. A missing file or malformed
// markup is a structural failure; per-entry problems are the caller's to
// tolerate.
func ReadXML(path string, doc any) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is a user-supplied data file
	if err != nil {
		return &DataFormatError{Path: path, Err: err}
	}
	if err := xml.Unmarshal(data, doc); err != nil {
		return &DataFormatError{Path: path, Err: err}
	}
	return nil
}
