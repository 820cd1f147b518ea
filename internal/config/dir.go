// Package config resolves the directories tm reads templates from and
// writes rendered files to.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the tm subdirectory under the config and cache roots.
const appName = "tm"

// Dir returns the tm configuration directory.
//
// Resolution:
//   - $TM_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/tm if set (respects XDG on any platform)
//   - %AppData%/tm on Windows
//   - ~/.config/tm on macOS and Linux
func Dir() string {
	if dir := os.Getenv("TM_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// TemplateDir returns the directory templates are read from.
//
// Resolution:
//   - $TM_TEMPLATE_DIR if set
//   - the config file's templates key
//   - Dir(), so templates sit directly in the config directory
func TemplateDir(file *File) string {
	if dir := os.Getenv("TM_TEMPLATE_DIR"); dir != "" {
		return dir
	}
	if file != nil && file.Templates != "" {
		return file.Templates
	}
	return Dir()
}

// CacheDir returns the directory rendered templates are written to.
//
// Resolution:
//   - $TM_CACHE_DIR if set
//   - the config file's cache key
//   - $XDG_CACHE_HOME/tm if set
//   - the OS user cache directory + /tm (~/.cache/tm on Linux)
func CacheDir(file *File) string {
	if dir := os.Getenv("TM_CACHE_DIR"); dir != "" {
		return dir
	}
	if file != nil && file.Cache != "" {
		return file.Cache
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	cache, err := os.UserCacheDir()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return ""
		}
		return filepath.Join(home, ".cache", appName)
	}
	return filepath.Join(cache, appName)
}
