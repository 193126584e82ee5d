package types

// AsnType is implemented by every type with an ASN.1 mapping.
//
// CHOICE types return TagEOC and implement TagTreer to list their variants.
type AsnType interface {
	AsnTag() Tag
}

// TagTreer overrides the default tag tree Leaf(AsnTag()).
type TagTreer interface {
	AsnTagTree() TagTree
}

// Constrained overrides the default NoConstraints.
type Constrained interface {
	AsnConstraints() Constraints
}

// Constructed is implemented by SEQUENCE and SET types.
type Constructed interface {
	AsnType
	// Fields returns the members of the root component list.
	Fields() Fields
	// ExtendedFields returns the members after the extension marker. The
	// second result is false for types without an extension marker, whose
	// decoders must reject unknown trailing members.
	ExtendedFields() (Fields, bool)
}

// Descriptor is the metadata a codec needs to handle a value.
type Descriptor struct {
	Tag         Tag
	TagTree     TagTree
	Constraints Constraints
}

// IsChoice reports whether the descriptor belongs to a CHOICE or open type.
func (d Descriptor) IsChoice() bool {
	return d.TagTree.IsChoice()
}

// String formats the descriptor for diagnostics.
func (d Descriptor) String() string {
	s := d.TagTree.String()
	if !d.Constraints.IsEmpty() {
		s += " " + d.Constraints.String()
	}
	return s
}

// TagOf returns the tag of an AsnType.
func TagOf(t AsnType) Tag {
	return t.AsnTag()
}

// TagTreeOf returns the tag tree of an AsnType, defaulting to Leaf(AsnTag()).
func TagTreeOf(t AsnType) TagTree {
	if tt, ok := t.(TagTreer); ok {
		return tt.AsnTagTree()
	}
	return Leaf(t.AsnTag())
}

// ConstraintsOf returns the constraints of an AsnType, defaulting to none.
func ConstraintsOf(t AsnType) Constraints {
	if c, ok := t.(Constrained); ok {
		return c.AsnConstraints()
	}
	return NoConstraints
}

// DescribeAsnType returns the descriptor of an AsnType with defaults applied.
func DescribeAsnType(t AsnType) Descriptor {
	return Descriptor{
		Tag:         t.AsnTag(),
		TagTree:     TagTreeOf(t),
		Constraints: ConstraintsOf(t),
	}
}
