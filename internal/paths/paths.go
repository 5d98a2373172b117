package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "kp"

// AppDataDir returns the application config directory.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory.
// This is where application-managed data (like the history database) lives.
//   - macOS: ~/Library/Application Support/kp
//   - Linux: $XDG_DATA_HOME/kp or ~/.local/share/kp
//   - Windows: %LOCALAPPDATA%\kp
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	path := filepath.Join(base, appDirName)
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the path to the YAML config file.
func ConfigFilePath() string {
	return filepath.Join(AppDataDir(), "config.yaml")
}

// LogFilePath returns the path to the application log file.
//   - macOS: ~/Library/Application Support/kp/kp.log
//   - Linux: $XDG_CONFIG_HOME/kp/kp.log or ~/.config/kp/kp.log
//   - Windows: %AppData%\kp\kp.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "kp.log")
}
