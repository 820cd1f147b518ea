// Package envfile loads TM_* settings from an env file in the config
// directory. Variables already set in the environment take precedence.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// FileName is the env file looked up in the config directory.
const FileName = ".env"

// Var is one KEY=VALUE assignment.
type Var struct {
	Key   string
	Value string
}

// Parse reads KEY=VALUE lines from r in file order. Blank lines, comments,
// and lines without "=" are skipped. An "export " prefix and matching quotes
// around the value are stripped.
func Parse(r io.Reader) ([]Var, error) {
	var vars []Var

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if v, ok := parseLine(line); ok {
			vars = append(vars, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vars, nil
}

// Load applies the env file at path, setting only variables that are unset
// or empty. A missing file is not an error. Returns the keys it set.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	vars, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	var applied []string
	for _, v := range vars {
		if os.Getenv(v.Key) != "" {
			continue
		}
		if err := os.Setenv(v.Key, v.Value); err != nil {
			return applied, fmt.Errorf("setting %s: %w", v.Key, err)
		}
		applied = append(applied, v.Key)
	}
	return applied, nil
}

func parseLine(line string) (Var, bool) {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return Var{}, false
	}

	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	if key == "" {
		return Var{}, false
	}

	value = strings.TrimSpace(value)
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			value = value[1 : len(value)-1]
		}
	}

	return Var{Key: key, Value: value}, true
}
