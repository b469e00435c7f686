// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/twitchkit/twitchkit/constant"
	"github.com/twitchkit/twitchkit/filesystem"
)

// Environment variable identifiers used to override the default directories.
const (
	EnvConfigPath = "TWITCHKIT_CONFIG_PATH"
	EnvDataPath   = "TWITCHKIT_DATA_PATH"
)

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The path can be overridden via the TWITCHKIT_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Data resolves the addon data directory holding the preferences document.
// It is not created here; the preference storage creates it on first access.
func Data() string {
	if custom, ok := os.LookupEnv(EnvDataPath); ok {
		return custom
	}
	return filepath.Join(Config(), "addon_data")
}

// Preferences resolves the path of the JSON preferences document.
func Preferences() string {
	return filepath.Join(Data(), "storage.json")
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// PreviewStamp resolves the path of the live-preview refresh stamp.
func PreviewStamp() string {
	return filepath.Join(Cache(), "preview_stamp.json")
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}
