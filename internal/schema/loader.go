package schema

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/multierr"
)

// Loader errors
var (
	ErrSchemaFileNotFound = errors.New("schema file not found")
)

// LoadSchema loads and builds the module in the YAML file at path.
func LoadSchema(path string) (*Schema, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSchemaFileNotFound, path)
		}
		return nil, err
	}
	defer file.Close()

	s, err := LoadSchemaFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadSchemaFromReader parses and builds one YAML module.
func LoadSchemaFromReader(r io.Reader) (*Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(m)
}

// LoadSchemas loads every path. A directory contributes its *.yaml and
// *.yml files in name order. Modules that fail are reported together and
// left out of the result.
func LoadSchemas(paths ...string) ([]*Schema, error) {
	files, err := expandPaths(paths)
	var out []*Schema
	for _, path := range files {
		s, loadErr := LoadSchema(path)
		if loadErr != nil {
			err = multierr.Append(err, loadErr)
			continue
		}
		out = append(out, s)
	}
	return out, err
}

func expandPaths(paths []string) ([]string, error) {
	var (
		files []string
		err   error
	)
	for _, path := range paths {
		info, statErr := os.Stat(path)
		if statErr != nil {
			if os.IsNotExist(statErr) {
				statErr = fmt.Errorf("%w: %s", ErrSchemaFileNotFound, path)
			}
			err = multierr.Append(err, statErr)
			continue
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		var matches []string
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			m, _ := filepath.Glob(filepath.Join(path, pattern))
			matches = append(matches, m...)
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	return files, err
}
