package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "vomnibar"
	databaseName = "history.sqlite"
)

// XDGDirs holds the per-application XDG base directories.
type XDGDirs struct {
	ConfigHome string // $XDG_CONFIG_HOME/vomnibar
	DataHome   string // $XDG_DATA_HOME/vomnibar, holds the history database
	StateHome  string // $XDG_STATE_HOME/vomnibar, holds logs
}

// GetXDGDirs resolves the XDG directories for vomnibar. With ENV=dev all
// three collapse into ./.dev/vomnibar so development runs never touch the
// user's history.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: dir, DataHome: dir, StateHome: dir}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &XDGDirs{
		ConfigHome: xdgDir("XDG_CONFIG_HOME", home, ".config"),
		DataHome:   xdgDir("XDG_DATA_HOME", home, ".local", "share"),
		StateHome:  xdgDir("XDG_STATE_HOME", home, ".local", "state"),
	}, nil
}

func xdgDir(env, home string, fallback ...string) string {
	base := os.Getenv(env)
	if base == "" {
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	return filepath.Join(base, appName)
}

// GetConfigDir returns the directory searched for config.json.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetLogDir returns the directory the terminal UI logs into.
func GetLogDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, "logs"), nil
}

// GetDatabaseFile returns the default history database path.
func GetDatabaseFile() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.DataHome, databaseName), nil
}
