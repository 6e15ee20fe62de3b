package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver finds user supplied files (word lists) relative to the places
// a hangsolve binary is usually run from.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver determines the executable, home and config locations for appName.
func NewPathResolver(appName string) (*PathResolver, error) {
	execDir, err := GetExecutableDir()
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		homeDir:       homeDir,
		configDir:     platformConfigDir(homeDir, appName),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", execDir, pr.configDir)
	return pr, nil
}

// platformConfigDir returns the appropriate config directory for the platform
func platformConfigDir(homeDir, appName string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, appName)
		}
		return filepath.Join(homeDir, ".config", appName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", appName)
	default:
		return filepath.Join(homeDir, ".config", appName)
	}
}

// ConfigDir returns the platform config directory.
func (pr *PathResolver) ConfigDir() string {
	return pr.configDir
}

// ExecutableDir returns the directory containing the executable.
func (pr *PathResolver) ExecutableDir() string {
	return pr.executableDir
}

// Candidates lists the locations tried for a relative path, in order:
// as given (cwd), next to the executable, then inside the config dir.
func (pr *PathResolver) Candidates(path string) []string {
	if filepath.IsAbs(path) {
		return []string{path}
	}
	return []string{
		path,
		filepath.Join(pr.executableDir, path),
		filepath.Join(pr.configDir, path),
	}
}

// ResolveFile returns the first candidate that exists as a regular file.
func (pr *PathResolver) ResolveFile(path string) (string, error) {
	for _, candidate := range pr.Candidates(path) {
		if FileExists(candidate) {
			log.Debugf("Resolved %s to %s", path, candidate)
			return candidate, nil
		}
		log.Debugf("File candidate not found: %s", candidate)
	}
	return "", os.ErrNotExist
}
