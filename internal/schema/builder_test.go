package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"

	"github.com/KilimcininKorOglu/asntypes/internal/types"
)

func mustBuild(t *testing.T, data string) *Schema {
	t.Helper()
	m, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	s, err := Build(m)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return s
}

func buildErr(t *testing.T, data string) error {
	t.Helper()
	m, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	s, err := Build(m)
	if err == nil {
		t.Fatal("Build() should fail")
	}
	if s != nil {
		t.Error("Build() should not return a schema on error")
	}
	return err
}

func TestBuild_Automatic(t *testing.T) {
	s, err := LoadSchema("testdata/directory.yaml")
	if err != nil {
		t.Fatalf("LoadSchema() error = %v", err)
	}
	if s.Module != "Directory" || s.Tagging != TaggingAutomatic {
		t.Fatalf("module = %s %s", s.Module, s.Tagging)
	}

	entry := s.GetType("Entry")
	if entry == nil {
		t.Fatal("Entry not built")
	}
	if entry.AsnTag() != types.TagSequence {
		t.Errorf("Entry tag = %s", entry.AsnTag())
	}
	view, ok := entry.Constructed()
	if !ok {
		t.Fatal("Entry should have a constructed view")
	}
	wantRoot := []types.Field{
		types.NewField("version", types.ContextTag(0), types.Required),
		types.NewField("name", types.ContextTag(1), types.Optional),
		types.NewField("status", types.ContextTag(2), types.Default),
	}
	if diff := cmp.Diff(wantRoot, view.Fields().All()); diff != "" {
		t.Errorf("Entry fields mismatch (-want +got):\n%s", diff)
	}
	ext, ok := view.ExtendedFields()
	if !ok {
		t.Fatal("Entry should be extensible")
	}
	wantExt := []types.Field{types.NewField("note", types.ContextTag(3), types.Optional)}
	if diff := cmp.Diff(wantExt, ext.All()); diff != "" {
		t.Errorf("Entry extension mismatch (-want +got):\n%s", diff)
	}

	result := s.GetType("Result")
	want := types.ChoiceOf(types.Leaf(types.ContextTag(0)), types.Leaf(types.ContextTag(1)))
	if !result.AsnTagTree().Equal(want) {
		t.Errorf("Result tree = %s, want %s", result.AsnTagTree(), want)
	}
	if result.AsnTag() != types.TagEOC {
		t.Errorf("Result tag = %s, want EOC", result.AsnTag())
	}
}

func TestBuild_TypesAndConstraints(t *testing.T) {
	s, err := LoadSchema("testdata/directory.yaml")
	if err != nil {
		t.Fatalf("LoadSchema() error = %v", err)
	}

	tests := []struct {
		name        string
		kind        Kind
		tree        string
		constraints string
	}{
		{"Version", KindInteger, "[UNIVERSAL 2]", "(0..255, ...)"},
		{"Name", KindPrintableString, "[UNIVERSAL 19]", "SIZE(1..64)"},
		{"Status", KindEnumerated, "[UNIVERSAL 10]", ""},
		{"Entries", KindSequenceOf, "[UNIVERSAL 16]", "SIZE(MIN..100)"},
		{"Result", KindChoice, "CHOICE{[0], [1]}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := s.GetType(tt.name)
			if typ == nil {
				t.Fatalf("%s not built", tt.name)
			}
			d := typ.Descriptor()
			got := []string{typ.Kind.String(), d.TagTree.String(), d.Constraints.String()}
			want := []string{tt.kind.String(), tt.tree, tt.constraints}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("descriptor mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if el := s.GetType("Entries").Element(); el != s.GetType("Entry") {
		t.Errorf("Entries element = %v, want Entry", el)
	}
	if got := s.Names(); !cmp.Equal(got, []string{"Entries", "Entry", "Name", "Result", "Status", "Version"}) {
		t.Errorf("Names() = %v", got)
	}
}

func TestBuild_Enumerated(t *testing.T) {
	s, err := LoadSchema("testdata/directory.yaml")
	if err != nil {
		t.Fatalf("LoadSchema() error = %v", err)
	}
	status := s.GetType("Status")

	if v, ok := status.Discriminant("deleted"); !ok || v != 9 {
		t.Errorf("Discriminant(deleted) = %d, %v", v, ok)
	}
	if _, ok := status.Discriminant("gone"); ok {
		t.Error("Discriminant(gone) should not resolve")
	}
	if it, ok := status.ItemOf(1); !ok || it.Name != "suspended" {
		t.Errorf("ItemOf(1) = %v, %v", it, ok)
	}
	if !status.IsExtensible() {
		t.Error("Status declares extension items and should be extensible")
	}
	if diff := cmp.Diff([]Item{{Name: "deleted", Value: 9}}, status.ExtensionItems()); diff != "" {
		t.Errorf("ExtensionItems mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Explicit(t *testing.T) {
	s, err := LoadSchema("testdata/explicit.yaml")
	if err != nil {
		t.Fatalf("LoadSchema() error = %v", err)
	}

	number := s.GetType("Number")
	numberTree := types.ChoiceOf(
		types.Leaf(types.TagInteger),
		types.Leaf(types.TagUTF8String),
		types.Leaf(types.TagBoolean),
	)
	if !number.AsnTagTree().Equal(numberTree) {
		t.Errorf("Number tree = %s, want %s", number.AsnTagTree(), numberTree)
	}

	choice, ok := number.Choice()
	if !ok {
		t.Fatal("Number should have a choice view")
	}
	if got := types.TagTreeOf(choice); !got.Equal(numberTree) {
		t.Errorf("choice view tree = %s", got)
	}
	ext, ok := choice.ExtendedVariants()
	if !ok || len(ext) != 1 {
		t.Errorf("ExtendedVariants() = %v, %v", ext, ok)
	}
	if diff := cmp.Diff([]string{"small", "text", "flag"}, choice.Identifiers()); diff != "" {
		t.Errorf("Identifiers mismatch (-want +got):\n%s", diff)
	}
	v, ok := types.ResolveChoice(choice, types.TagBoolean)
	if !ok || !v.Extended || v.Position(choice) != 2 {
		t.Errorf("ResolveChoice(BOOLEAN) = %+v, %v", v, ok)
	}

	message, _ := s.GetType("Message").Constructed()
	wantFields := []types.Field{
		types.NewField("id", types.ContextTag(0), types.Required),
		types.ChoiceField("value", numberTree, types.Required),
		types.NewField("raw", types.ContextTag(1), types.Optional),
	}
	if diff := cmp.Diff(wantFields, message.Fields().All()); diff != "" {
		t.Errorf("Message fields mismatch (-want +got):\n%s", diff)
	}
	if _, ok := message.ExtendedFields(); ok {
		t.Error("Message is not extensible")
	}

	envelope := s.GetType("Envelope")
	if envelope.AsnTag() != types.ApplicationTag(1) || !envelope.IsTagged() {
		t.Errorf("Envelope tag = %s", envelope.AsnTag())
	}
	view, _ := envelope.Constructed()
	wantSet := []types.Field{
		types.NewField("body", types.ContextTag(0), types.Required),
		types.NewField("sent", types.TagUTCTime, types.Optional),
	}
	if diff := cmp.Diff(wantSet, view.Fields().All()); diff != "" {
		t.Errorf("Envelope fields mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Views(t *testing.T) {
	s := mustBuild(t, `
module: Views
types:
  - name: Tagged
    kind: choice
    tag: "[5]"
    variants:
      - {name: a, type: boolean}
  - name: Plain
    kind: integer
`)

	tagged := s.GetType("Tagged")
	if _, ok := tagged.Choice(); ok {
		t.Error("a tagged CHOICE has no choice view")
	}
	if !tagged.AsnTagTree().Equal(types.Leaf(types.ContextTag(5))) {
		t.Errorf("Tagged tree = %s", tagged.AsnTagTree())
	}
	if _, ok := s.GetType("Plain").Constructed(); ok {
		t.Error("INTEGER has no constructed view")
	}
	if _, ok := s.GetType("Plain").Choice(); ok {
		t.Error("INTEGER has no choice view")
	}
}

func TestBuild_AutomaticSkippedWhenTagged(t *testing.T) {
	s := mustBuild(t, `
module: Mixed
tagging: automatic
types:
  - name: Pair
    kind: sequence
    fields:
      - {name: a, type: integer}
      - {name: b, type: boolean, tag: "[7]"}
`)
	view, _ := s.GetType("Pair").Constructed()
	want := []types.Field{
		types.NewField("a", types.TagInteger, types.Required),
		types.NewField("b", types.ContextTag(7), types.Required),
	}
	if diff := cmp.Diff(want, view.Fields().All()); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_NestedChoice(t *testing.T) {
	s := mustBuild(t, `
module: Nested
types:
  - name: Inner
    kind: choice
    variants:
      - {name: i, type: integer}
      - {name: o, type: octetString}
  - name: Outer
    kind: choice
    variants:
      - {name: inner, type: Inner}
      - {name: b, type: boolean}
`)
	want := types.ChoiceOf(
		types.ChoiceOf(types.Leaf(types.TagInteger), types.Leaf(types.TagOctetString)),
		types.Leaf(types.TagBoolean),
	)
	if got := s.GetType("Outer").AsnTagTree(); !got.Equal(want) {
		t.Errorf("Outer tree = %s, want %s", got, want)
	}
}

func TestBuild_RecursiveSequence(t *testing.T) {
	s := mustBuild(t, `
module: List
types:
  - name: Node
    kind: sequence
    fields:
      - {name: value, type: integer}
      - {name: next, type: Node, presence: optional}
`)
	node := s.GetType("Node")
	next := node.Components()[1]
	if next.Type != node {
		t.Error("next should refer to Node itself")
	}
	if next.Field.Tag != types.TagSequence {
		t.Errorf("next tag = %s", next.Field.Tag)
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		is   error
	}{
		{
			"choice cycle",
			"module: X\ntypes:\n  - name: A\n    kind: choice\n    variants:\n      - {name: self, type: A}\n",
			ErrChoiceCycle,
		},
		{
			"indirect cycle",
			"module: X\ntypes:\n  - name: A\n    kind: choice\n    variants:\n      - {name: b, type: B}\n  - name: B\n    kind: choice\n    variants:\n      - {name: a, type: A}\n",
			ErrChoiceCycle,
		},
		{
			"unknown reference",
			"module: X\ntypes:\n  - name: A\n    kind: sequence\n    fields:\n      - {name: x, type: Missing}\n",
			ErrUnknownType,
		},
		{
			"anonymous constructed",
			"module: X\ntypes:\n  - name: A\n    kind: sequence\n    fields:\n      - {name: x, type: sequence}\n",
			ErrUnknownType,
		},
		{
			"duplicate",
			"module: X\ntypes:\n  - {name: A, kind: integer}\n  - {name: A, kind: boolean}\n",
			ErrDuplicateType,
		},
		{
			"optional alternative",
			"module: X\ntypes:\n  - name: A\n    kind: choice\n    variants:\n      - {name: x, type: integer, presence: optional}\n",
			ErrInvalidMember,
		},
		{
			"missing element",
			"module: X\ntypes:\n  - {name: A, kind: setOf}\n",
			ErrInvalidMember,
		},
		{
			"bad member tag",
			"module: X\ntypes:\n  - name: A\n    kind: set\n    fields:\n      - {name: x, type: integer, tag: \"[x]\"}\n",
			ErrInvalidTag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := buildErr(t, tt.data); !errors.Is(err, tt.is) {
				t.Errorf("Build() error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestBuild_CollectsErrors(t *testing.T) {
	err := buildErr(t, `
module: X
types:
  - {name: A, kind: real}
  - name: B
    kind: sequence
    fields:
      - {name: x, type: Missing}
      - {name: y, type: integer, presence: sometimes}
`)
	if got := len(multierr.Errors(err)); got != 3 {
		t.Errorf("Build() reported %d errors, want 3: %v", got, err)
	}
}
