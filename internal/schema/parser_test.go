package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/KilimcininKorOglu/asntypes/internal/types"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		in   string
		want types.Tag
	}{
		{"[0]", types.ContextTag(0)},
		{" [31] ", types.ContextTag(31)},
		{"[APPLICATION 3]", types.ApplicationTag(3)},
		{"[PRIVATE 7]", types.PrivateTag(7)},
		{"[UNIVERSAL 16]", types.TagSequence},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTag(tt.in)
			if err != nil {
				t.Fatalf("ParseTag(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseTag(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTag_Invalid(t *testing.T) {
	for _, in := range []string{"", "3", "[", "[]", "[x]", "[-1]", "[CONTEXT 1]", "[APPLICATION]", "[APPLICATION 1 2]", "[4294967296]"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseTag(in); !errors.Is(err, ErrInvalidTag) {
				t.Errorf("ParseTag(%q) error = %v, want ErrInvalidTag", in, err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
module: Test
types:
  - name: Flags
    kind: bitString
    tag: "[APPLICATION 2]"
    constraints:
      size: {min: "8", max: "8"}
  - name: Color
    kind: enumerated
    items:
      - {name: red, value: 0}
`)
	m, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := &Module{
		Name:    "Test",
		Tagging: TaggingExplicit,
		Types: []Definition{
			{
				Name:        "Flags",
				Kind:        "bitString",
				Tag:         "[APPLICATION 2]",
				Constraints: &ConstraintSpec{Size: &RangeSpec{Min: "8", Max: "8"}},
			},
			{
				Name:  "Color",
				Kind:  "enumerated",
				Items: []Item{{Name: "red", Value: 0}},
			},
		},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		is   error
	}{
		{"unknown key", "module: X\nversion: 2\n", nil},
		{"unknown definition key", "module: X\ntypes:\n  - {name: A, kind: integer, size: 3}\n", nil},
		{"bad tagging", "module: X\ntagging: loose\n", ErrInvalidTagging},
		{"not yaml", "module: [\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Parse() error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestConstraintSpec(t *testing.T) {
	tests := []struct {
		name string
		spec *ConstraintSpec
		want string
	}{
		{"none", nil, ""},
		{"value", &ConstraintSpec{Value: &RangeSpec{Min: "0", Max: "255"}}, "(0..255)"},
		{"extensible value", &ConstraintSpec{Value: &RangeSpec{Min: "-5", Max: "MAX", Extensible: true}}, "(-5..MAX, ...)"},
		{"big value", &ConstraintSpec{Value: &RangeSpec{Max: "18446744073709551616"}}, "(MIN..18446744073709551616)"},
		{"fixed size", &ConstraintSpec{Size: &RangeSpec{Min: "4", Max: "4"}}, "SIZE(4)"},
		{"size up to", &ConstraintSpec{Size: &RangeSpec{Max: "10"}}, "SIZE(MIN..10)"},
		{"size from", &ConstraintSpec{Size: &RangeSpec{Min: "1", Max: "MAX"}}, "SIZE(1..MAX)"},
		{"unbounded size", &ConstraintSpec{Size: &RangeSpec{}}, "SIZE(MIN..MAX)"},
		{"alphabet", &ConstraintSpec{Alphabet: &AlphabetSpec{Chars: "01", Extensible: true}}, `FROM("01", ...)`},
		{
			"ordered",
			&ConstraintSpec{
				Alphabet: &AlphabetSpec{Chars: "ab"},
				Size:     &RangeSpec{Min: "1", Max: "2"},
				Value:    &RangeSpec{Min: "1"},
			},
			`(1..MAX) SIZE(1..2) FROM("ab")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.spec.constraints()
			if err != nil {
				t.Fatalf("constraints() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("constraints() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestConstraintSpec_Invalid(t *testing.T) {
	for name, spec := range map[string]*ConstraintSpec{
		"value":         {Value: &RangeSpec{Min: "zero"}},
		"negative size": {Size: &RangeSpec{Min: "-1"}},
		"size text":     {Size: &RangeSpec{Max: "many"}},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := spec.constraints(); !errors.Is(err, ErrInvalidConstraint) {
				t.Errorf("constraints() error = %v, want ErrInvalidConstraint", err)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for k, s := range syntaxes {
		got, err := ParseKind(s.name)
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", s.name, got, err, k)
		}
		if k.String() != s.name {
			t.Errorf("%v.String() = %q, want %q", k, k.String(), s.name)
		}
	}
	if _, err := ParseKind("real"); err == nil {
		t.Error("ParseKind(real) should fail")
	}
	if KindInvalid.String() != "invalid" {
		t.Errorf("KindInvalid.String() = %q", KindInvalid.String())
	}
}

func TestKind_Accepts(t *testing.T) {
	tests := []struct {
		kind  Kind
		value bool
		size  bool
		alpha bool
	}{
		{KindInteger, true, false, false},
		{KindBoolean, false, false, false},
		{KindOctetString, false, true, false},
		{KindIA5String, false, true, true},
		{KindSequenceOf, false, true, false},
		{KindChoice, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := []bool{
				tt.kind.accepts(types.KindValue),
				tt.kind.accepts(types.KindSize),
				tt.kind.accepts(types.KindPermittedAlphabet),
			}
			if diff := cmp.Diff([]bool{tt.value, tt.size, tt.alpha}, got); diff != "" {
				t.Errorf("accepts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
