package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for pydist.
type Paths struct {
	// ConfigFile is the path to the config file (~/.pydist/config.yaml).
	ConfigFile string

	// HomeDir is the pydist home directory (~/.pydist).
	HomeDir string
}

// DefaultPaths returns the default paths for pydist.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	pydistHome := filepath.Join(homeDir, ".pydist")

	return &Paths{
		ConfigFile: filepath.Join(pydistHome, "config.yaml"),
		HomeDir:    pydistHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If PYDIST_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("PYDIST_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// EnsureHomeDir creates the pydist home directory if it doesn't exist.
func EnsureHomeDir() error {
	paths, err := DefaultPaths()
	if err != nil {
		return err
	}

	return os.MkdirAll(paths.HomeDir, 0o755)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username expansion is not supported, return as-is.
	return path, nil
}
