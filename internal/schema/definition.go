package schema

import (
	"github.com/KilimcininKorOglu/asntypes/internal/types"
)

// Type is a built type definition. It implements types.AsnType,
// types.TagTreer and types.Constrained; Constructed and Choice return the
// views of SEQUENCE, SET and CHOICE types.
type Type struct {
	Name   string
	Kind   Kind
	Module string

	tag         types.Tag
	tagged      bool // tag comes from the definition rather than the kind
	tree        types.TagTree
	constraints types.Constraints
	extensible  bool

	members    []Component // root fields or alternatives
	extensions []Component // fields or alternatives after the marker
	items      []Item
	extItems   []Item
	element    *Type
}

// Component is a resolved SEQUENCE or SET member, or CHOICE alternative.
type Component struct {
	Field types.Field
	Type  *Type

	tagged bool // the member carries its own tag
}

// IsTagged reports whether the member declares its own tag.
func (c Component) IsTagged() bool { return c.tagged }

// AsnTag returns the tag of the type. Untagged CHOICE and ANY types return
// types.TagEOC.
func (t *Type) AsnTag() types.Tag { return t.tag }

// AsnTagTree returns the tag tree of the type.
func (t *Type) AsnTagTree() types.TagTree { return t.tree }

// AsnConstraints returns the constraints of the type.
func (t *Type) AsnConstraints() types.Constraints { return t.constraints }

// Descriptor returns the metadata of the type.
func (t *Type) Descriptor() types.Descriptor {
	return types.DescribeAsnType(t)
}

// IsTagged reports whether the definition carries its own tag.
func (t *Type) IsTagged() bool { return t.tagged }

// IsExtensible reports whether the definition has an extension marker.
func (t *Type) IsExtensible() bool { return t.extensible }

// Components returns the root members or alternatives.
func (t *Type) Components() []Component {
	return append([]Component(nil), t.members...)
}

// ExtensionComponents returns the members or alternatives after the
// extension marker.
func (t *Type) ExtensionComponents() []Component {
	return append([]Component(nil), t.extensions...)
}

// Items returns the root items of an ENUMERATED type.
func (t *Type) Items() []Item {
	return append([]Item(nil), t.items...)
}

// ExtensionItems returns the extension items of an ENUMERATED type.
func (t *Type) ExtensionItems() []Item {
	return append([]Item(nil), t.extItems...)
}

// Element returns the element type of a SEQUENCE OF or SET OF, or nil.
func (t *Type) Element() *Type { return t.element }

// Discriminant returns the value of the item named name, root or extension.
func (t *Type) Discriminant(name string) (int, bool) {
	for _, list := range [][]Item{t.items, t.extItems} {
		for _, it := range list {
			if it.Name == name {
				return it.Value, true
			}
		}
	}
	return 0, false
}

// ItemOf returns the item whose value is v, root or extension.
func (t *Type) ItemOf(v int) (Item, bool) {
	for _, list := range [][]Item{t.items, t.extItems} {
		for _, it := range list {
			if it.Value == v {
				return it, true
			}
		}
	}
	return Item{}, false
}

// Constructed returns the SEQUENCE or SET view of the type.
func (t *Type) Constructed() (types.Constructed, bool) {
	if !t.Kind.IsConstructed() {
		return nil, false
	}
	return constructedView{t}, true
}

// Choice returns the CHOICE view of the type. Tagged CHOICE types have a
// leaf tree and are not returned.
func (t *Type) Choice() (types.Choice, bool) {
	if t.Kind != KindChoice || t.tagged {
		return nil, false
	}
	return choiceView{t}, true
}

// String returns the type reference.
func (t *Type) String() string {
	if t.Name == "" {
		return t.Kind.Notation()
	}
	return t.Name
}

func fieldsOf(cs []Component) types.Fields {
	fs := make([]types.Field, len(cs))
	for i, c := range cs {
		fs[i] = c.Field
	}
	return types.NewFields(fs...)
}

func treesOf(cs []Component) []types.TagTree {
	trees := make([]types.TagTree, len(cs))
	for i, c := range cs {
		trees[i] = c.Field.TagTree
	}
	return trees
}

type constructedView struct{ t *Type }

func (v constructedView) AsnTag() types.Tag { return v.t.tag }

func (v constructedView) Fields() types.Fields { return fieldsOf(v.t.members) }

func (v constructedView) ExtendedFields() (types.Fields, bool) {
	if !v.t.extensible {
		return types.Fields{}, false
	}
	return fieldsOf(v.t.extensions), true
}

type choiceView struct{ t *Type }

func (v choiceView) AsnTag() types.Tag { return types.TagEOC }

func (v choiceView) AsnTagTree() types.TagTree { return v.t.tree }

func (v choiceView) Variants() []types.TagTree { return treesOf(v.t.members) }

func (v choiceView) ExtendedVariants() ([]types.TagTree, bool) {
	if !v.t.extensible {
		return nil, false
	}
	return treesOf(v.t.extensions), true
}

func (v choiceView) Identifiers() []string {
	ids := make([]string, 0, len(v.t.members)+len(v.t.extensions))
	for _, c := range v.t.members {
		ids = append(ids, c.Field.Name)
	}
	for _, c := range v.t.extensions {
		ids = append(ids, c.Field.Name)
	}
	return ids
}
