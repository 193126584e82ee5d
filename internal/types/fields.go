package types

import (
	"sort"
	"strings"
)

// Presence describes whether a member of a SEQUENCE or SET must appear.
type Presence int

const (
	// Required members are always encoded.
	Required Presence = iota
	// Optional members may be absent.
	Optional
	// Default members may be absent, in which case their DEFAULT value applies.
	Default
)

// String returns the ASN.1 keyword for the presence, or "" for Required.
func (p Presence) String() string {
	switch p {
	case Optional:
		return "OPTIONAL"
	case Default:
		return "DEFAULT"
	default:
		return ""
	}
}

// Field describes one member of a SEQUENCE or SET.
type Field struct {
	Name     string
	Tag      Tag
	TagTree  TagTree
	Presence Presence
}

// NewField returns a member whose tag tree is Leaf(tag).
func NewField(name string, tag Tag, presence Presence) Field {
	return Field{Name: name, Tag: tag, TagTree: Leaf(tag), Presence: presence}
}

// ChoiceField returns an untagged CHOICE member. Its tag is TagEOC and tree
// lists the alternatives.
func ChoiceField(name string, tree TagTree, presence Presence) Field {
	return Field{Name: name, Tag: TagEOC, TagTree: tree, Presence: presence}
}

// IsOptionalOrDefault reports whether the member may be absent.
func (f Field) IsOptionalOrDefault() bool {
	return f.Presence != Required
}

// Fields is an ordered, immutable list of members in declaration order.
type Fields struct {
	list []Field
}

// NewFields returns a list holding fs in order.
func NewFields(fs ...Field) Fields {
	list := make([]Field, len(fs))
	copy(list, fs)
	return Fields{list: list}
}

// EmptyFields is the member list of an empty SEQUENCE, and the extension
// list of an extensible type that declares no extensions yet.
var EmptyFields = Fields{}

// Len returns the number of members.
func (f Fields) Len() int {
	return len(f.list)
}

// IsEmpty reports whether there are no members.
func (f Fields) IsEmpty() bool {
	return len(f.list) == 0
}

// At returns the i-th member. It panics if i is out of range.
func (f Fields) At(i int) Field {
	return f.list[i]
}

// All returns a copy of the members.
func (f Fields) All() []Field {
	out := make([]Field, len(f.list))
	copy(out, f.list)
	return out
}

// Lookup returns the member named name.
func (f Fields) Lookup(name string) (Field, bool) {
	for _, field := range f.list {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Identifiers returns the member names in order.
func (f Fields) Identifiers() []string {
	names := make([]string, len(f.list))
	for i, field := range f.list {
		names[i] = field.Name
	}
	return names
}

// OptionalCount returns the number of OPTIONAL and DEFAULT members. PER
// prefixes a SEQUENCE with one presence bit per such member.
func (f Fields) OptionalCount() int {
	n := 0
	for _, field := range f.list {
		if field.IsOptionalOrDefault() {
			n++
		}
	}
	return n
}

// RequiredCount returns the number of members that are always present.
func (f Fields) RequiredCount() int {
	return len(f.list) - f.OptionalCount()
}

// Canonised returns the members sorted by the smallest tag of their tree,
// the canonical order of SET components under DER and CER.
func (f Fields) Canonised() Fields {
	list := f.All()
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].TagTree.Smallest().Less(list[j].TagTree.Smallest())
	})
	return Fields{list: list}
}

// AutomaticTags returns the members retagged [0], [1], ... in declaration
// order, as under AUTOMATIC TAGS. Extension members continue the numbering
// from offset.
func (f Fields) AutomaticTags(offset int) Fields {
	list := f.All()
	for i := range list {
		t := ContextTag(uint32(offset + i))
		list[i].Tag = t
		list[i].TagTree = Leaf(t)
	}
	return Fields{list: list}
}

// TagTrees returns the tag tree of every member in order.
func (f Fields) TagTrees() []TagTree {
	trees := make([]TagTree, len(f.list))
	for i, field := range f.list {
		trees[i] = field.TagTree
	}
	return trees
}

// String formats the members, e.g. "{id [0], name [1] OPTIONAL}".
func (f Fields) String() string {
	parts := make([]string, len(f.list))
	for i, field := range f.list {
		s := field.Name + " " + field.TagTree.String()
		if p := field.Presence.String(); p != "" {
			s += " " + p
		}
		parts[i] = s
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
