package schema

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry(t *testing.T) {
	schemas, err := LoadSchemas("testdata/explicit.yaml", "testdata/directory.yaml")
	if err != nil {
		t.Fatalf("LoadSchemas() error = %v", err)
	}

	r := NewRegistry()
	for _, s := range schemas {
		if err := r.Register(s); err != nil {
			t.Fatalf("Register(%s) error = %v", s.Module, err)
		}
	}

	if r.Len() != 9 {
		t.Errorf("Len() = %d, want 9", r.Len())
	}
	want := []string{
		"Directory.Entries", "Directory.Entry", "Directory.Name", "Directory.Result",
		"Directory.Status", "Directory.Version",
		"Messages.Envelope", "Messages.Message", "Messages.Number",
	}
	if diff := cmp.Diff(want, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	typ, ok := r.Lookup("Messages.Number")
	if !ok || typ.Kind != KindChoice {
		t.Errorf("Lookup(Messages.Number) = %v, %v", typ, ok)
	}
	if QualifiedName(typ) != "Messages.Number" {
		t.Errorf("QualifiedName() = %q", QualifiedName(typ))
	}
	if _, ok := r.Lookup("Number"); ok {
		t.Error("unqualified names should not resolve")
	}
}

func TestRegistry_Duplicate(t *testing.T) {
	s, err := LoadSchema("testdata/explicit.yaml")
	if err != nil {
		t.Fatalf("LoadSchema() error = %v", err)
	}

	r := NewRegistry()
	if err := r.Register(s); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	err = r.Register(s)
	if !errors.Is(err, ErrDuplicateType) {
		t.Errorf("second Register() error = %v, want ErrDuplicateType", err)
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	s, err := LoadSchema("testdata/directory.yaml")
	if err != nil {
		t.Fatalf("LoadSchema() error = %v", err)
	}
	r := NewRegistry()
	if err := r.Register(s); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, name := range r.Names() {
				if _, ok := r.Lookup(name); !ok {
					t.Errorf("Lookup(%s) failed", name)
				}
			}
		}()
	}
	wg.Wait()
}
