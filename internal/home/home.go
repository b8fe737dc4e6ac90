package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name for the bookvault home directory.
	DefaultDirName = ".bookvault"

	// DataDirName is the subdirectory for the catalog database.
	DataDirName = "data"

	// UploadsDirName is the subdirectory for uploaded PDF files.
	UploadsDirName = "uploads"

	// CoversDirName is the subdirectory for extracted cover images.
	CoversDirName = "covers"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"

	// DatabaseFileName is the catalog database file name.
	DatabaseFileName = "catalog.db"
)

// Dir represents the bookvault home directory structure.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.bookvault).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// DataPath returns the path to the data directory.
func (d *Dir) DataPath() string {
	return filepath.Join(d.path, DataDirName)
}

// DatabasePath returns the path to the catalog database file.
func (d *Dir) DatabasePath() string {
	return filepath.Join(d.DataPath(), DatabaseFileName)
}

// UploadsPath returns the path to the uploads directory.
func (d *Dir) UploadsPath() string {
	return filepath.Join(d.path, UploadsDirName)
}

// UploadPath returns the path for a stored upload by its server-side
// file name.
func (d *Dir) UploadPath(fileName string) string {
	return filepath.Join(d.UploadsPath(), fileName)
}

// CoversPath returns the path to the covers directory.
func (d *Dir) CoversPath() string {
	return filepath.Join(d.path, CoversDirName)
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// EnsureExists creates the home directory and subdirectories if they
// don't exist.
func (d *Dir) EnsureExists() error {
	for _, dir := range []string{d.DataPath(), d.UploadsPath(), d.CoversPath()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the config file exists in the home directory.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}
