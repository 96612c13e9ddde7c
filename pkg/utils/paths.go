package utils

import (
	"os"
	"path/filepath"
)

// ExpandPath expands a leading ~ and environment variables in a path.
// If the home directory is unknown, ~ is left in place.
func ExpandPath(path string) string {
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, os.ExpandEnv(path[2:]))
	}

	return os.ExpandEnv(path)
}
