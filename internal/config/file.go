package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in Dir(). The leading dot keeps it
// out of template discovery, which skips dotfiles.
const FileName = ".tm.yaml"

// File is the optional YAML config file.
//
//	palette: ~/colors/viking
//	templates: ~/dotfiles/tm
//	cache: ~/.cache/tm
//	include: ["*.h", "*.conf"]
//	exclude: ["*.bak"]
type File struct {
	Palette   string   `yaml:"palette,omitempty"`
	Templates string   `yaml:"templates,omitempty"`
	Cache     string   `yaml:"cache,omitempty"`
	Include   []string `yaml:"include,omitempty"`
	Exclude   []string `yaml:"exclude,omitempty"`

	// Path the file was read from; empty when no file exists.
	Path string `yaml:"-"`
}

// FilePath returns the config file location: $TM_CONFIG if set, otherwise
// FileName inside Dir().
func FilePath() string {
	if path := os.Getenv("TM_CONFIG"); path != "" {
		return path
	}
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, FileName)
}

// LoadFile reads the config file at path. A missing file yields an empty
// File and no error. Paths in the file may start with "~/".
func LoadFile(path string) (*File, error) {
	file := &File{}
	if path == "" {
		return file, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return file, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	file.Path = path
	file.Palette = expandHome(file.Palette)
	file.Templates = expandHome(file.Templates)
	file.Cache = expandHome(file.Cache)
	return file, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
