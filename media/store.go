package media

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Store defines the interface for saving and deleting uploaded assets
type Store interface {
	// Save stores data under subDir with the given filename and returns the
	// final relative path used
	Save(subDir, filename string, data io.Reader) (string, error)
	// Delete removes an asset; a missing file is not an error
	Delete(relativePath string) error
	// FullPath returns the absolute filesystem path for a relative asset path
	FullPath(relativePath string) (string, error)
	// EnsureDir makes sure a subdirectory exists under the storage root
	EnsureDir(subDir string) (string, error)
}

// LocalStorage implements the Store interface using the local filesystem
type LocalStorage struct {
	basePath string // absolute path to the UPLOAD_STORAGE_PATH
}

// NewLocalStorage creates a new local filesystem store rooted at basePath
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	absBasePath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("invalid base storage path '%s': %w", basePath, err)
	}

	if err := os.MkdirAll(absBasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base storage directory '%s': %w", absBasePath, err)
	}

	log.Printf("media.store: Initialized LocalStorage at %s", absBasePath)
	return &LocalStorage{basePath: absBasePath}, nil
}

// EnsureDir creates the subdirectory if it doesn't exist and returns its
// absolute path
func (ls *LocalStorage) EnsureDir(subDir string) (string, error) {
	dirPath := filepath.Join(ls.basePath, subDir)
	if !strings.HasPrefix(filepath.Clean(dirPath), ls.basePath) {
		return "", fmt.Errorf("subdirectory '%s' resolves outside base path", subDir)
	}
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return "", fmt.Errorf("failed to ensure directory '%s': %w", dirPath, err)
	}
	return dirPath, nil
}

// Save writes data to <basePath>/<subDir>/<filename> and returns the relative
// path with forward slashes
func (ls *LocalStorage) Save(subDir, filename string, data io.Reader) (string, error) {
	targetDir, err := ls.EnsureDir(subDir)
	if err != nil {
		return "", err
	}

	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty for LocalStorage.Save")
	}

	fullSavePath := filepath.Join(targetDir, filename)
	if !strings.HasPrefix(filepath.Clean(fullSavePath), targetDir) {
		return "", fmt.Errorf("invalid filename '%s'", filename)
	}

	outFile, err := os.Create(fullSavePath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file '%s': %w", fullSavePath, err)
	}
	defer outFile.Close()

	_, err = io.Copy(outFile, data)
	if err != nil {
		outFile.Close()
		os.Remove(fullSavePath)
		return "", fmt.Errorf("failed to write data to '%s': %w", fullSavePath, err)
	}

	relativePath, err := filepath.Rel(ls.basePath, fullSavePath)
	if err != nil {
		return "", fmt.Errorf("internal error calculating relative path: %w", err)
	}

	return filepath.ToSlash(relativePath), nil
}

// Delete removes an asset file. Missing files are treated as already deleted.
func (ls *LocalStorage) Delete(relativePath string) error {
	fullPath, err := ls.FullPath(relativePath)
	if err != nil {
		return err
	}

	err = os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete asset '%s': %w", relativePath, err)
	}
	if err == nil {
		log.Printf("media.store: Deleted asset %s", fullPath)
	}
	return nil
}

// FullPath calculates the absolute path and performs a traversal check
func (ls *LocalStorage) FullPath(relativePath string) (string, error) {
	cleanRelativePath := filepath.Clean(relativePath)

	fullPath := filepath.Join(ls.basePath, cleanRelativePath)

	absFullPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for '%s': %w", relativePath, err)
	}

	if !strings.HasPrefix(absFullPath, ls.basePath) {
		return "", fmt.Errorf("invalid path: access denied for '%s'", relativePath)
	}

	return absFullPath, nil
}
