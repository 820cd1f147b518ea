//go:build !windows

package cache

import (
	"os"

	"github.com/google/renameio/v2"
)

// writeFile replaces path with data in a single rename.
func writeFile(path string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(path, data, perm)
}
