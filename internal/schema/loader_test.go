package schema

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func TestLoadSchema_NotFound(t *testing.T) {
	_, err := LoadSchema(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrSchemaFileNotFound) {
		t.Errorf("LoadSchema() error = %v, want ErrSchemaFileNotFound", err)
	}
}

func TestLoadSchemaFromReader(t *testing.T) {
	s, err := LoadSchemaFromReader(strings.NewReader("module: R\ntypes:\n  - {name: Flag, kind: boolean}\n"))
	if err != nil {
		t.Fatalf("LoadSchemaFromReader() error = %v", err)
	}
	if s.Len() != 1 || s.GetType("Flag") == nil {
		t.Errorf("types = %v", s.Names())
	}
	if s.GetType("Other") != nil {
		t.Error("GetType(Other) should be nil")
	}
}

func TestLoadSchemas_Directory(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.yml":      "module: B\ntypes:\n  - {name: T, kind: null}\n",
		"a.yaml":     "module: A\ntypes:\n  - {name: T, kind: oid}\n",
		"broken.yml": "module: C\ntypes:\n  - {name: T, kind: real}\n",
		"notes.txt":  "ignored",
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	schemas, err := LoadSchemas(dir, filepath.Join(dir, "gone.yaml"))
	if got := len(multierr.Errors(err)); got != 2 {
		t.Errorf("LoadSchemas() reported %d errors, want 2: %v", got, err)
	}
	if !errors.Is(err, ErrSchemaFileNotFound) {
		t.Errorf("LoadSchemas() error = %v, want ErrSchemaFileNotFound", err)
	}

	var modules []string
	for _, s := range schemas {
		modules = append(modules, s.Module)
	}
	if strings.Join(modules, ",") != "A,B" {
		t.Errorf("modules = %v, want [A B]", modules)
	}
}
