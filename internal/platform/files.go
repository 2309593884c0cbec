package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

const dirPermissions = 0o755

// EnsureDir creates the directory if it does not exist.
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, dirPermissions)
	}
	return nil
}

// DefaultDownloadsDir returns the standard Downloads directory for the user.
func DefaultDownloadsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, "Downloads"), nil
}

// FileSize returns the size of the file in bytes, or 0 if it cannot be
// determined.
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
