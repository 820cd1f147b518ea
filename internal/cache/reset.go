package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorewood/tm/internal/output"
)

// Reset empties dir by removing and recreating it.
//
// It refuses to touch an empty path, a filesystem root, the home
// directory, or any directory that is or contains one of protected.
func Reset(dir string, protected ...string) error {
	if err := checkRemovable(dir, protected); err != nil {
		return output.NewError(output.ExitCacheError, err.Error())
	}

	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		if err := os.RemoveAll(dir); err != nil {
			return output.NewErrorWithCause(output.ExitCacheError, "clearing cache directory "+dir, err)
		}
	case err == nil:
		return output.NewError(output.ExitCacheError, "cache path "+dir+" exists and is not a directory")
	case !errors.Is(err, fs.ErrNotExist):
		return output.NewErrorWithCause(output.ExitCacheError, "checking cache directory "+dir, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return output.NewErrorWithCause(output.ExitTemplateDir, "creating cache directory "+dir, err)
	}
	return nil
}

func checkRemovable(dir string, protected []string) error {
	if strings.TrimSpace(dir) == "" {
		return errors.New("cache directory is not set")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving cache directory %s: %w", dir, err)
	}
	if filepath.Dir(abs) == abs {
		return fmt.Errorf("refusing to clear filesystem root %s", abs)
	}
	if home, err := os.UserHomeDir(); err == nil && sameDir(abs, home) {
		return fmt.Errorf("refusing to clear home directory %s", abs)
	}

	for _, p := range protected {
		if p == "" {
			continue
		}
		pAbs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		if within(pAbs, abs) {
			return fmt.Errorf("refusing to clear %s: it contains %s", abs, pAbs)
		}
	}
	return nil
}

// within reports whether path is dir or lies beneath it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func sameDir(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
