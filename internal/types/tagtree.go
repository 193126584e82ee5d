package types

import "strings"

// TagTree is the tag shape of a type: a single leaf tag for ordinary types,
// or an ordered list of subtrees for a CHOICE.
//
// The leaves of a choice tree must be pairwise distinct across the whole tree
// for a decoder to pick an alternative from a tag alone. The tree does not
// enforce this; see IsUnique.
type TagTree struct {
	tag      Tag
	children []TagTree
	choice   bool
}

// Leaf returns the tree of a type whose only tag is t.
func Leaf(t Tag) TagTree {
	return TagTree{tag: t}
}

// ChoiceOf returns the tree of a CHOICE whose alternatives have the given
// trees, in declaration order. ChoiceOf() with no arguments is the tree of
// the open type, which accepts any tag.
func ChoiceOf(variants ...TagTree) TagTree {
	children := make([]TagTree, len(variants))
	copy(children, variants)
	return TagTree{tag: TagEOC, children: children, choice: true}
}

// AnyTree is the tag tree of the open type.
var AnyTree = ChoiceOf()

// IsLeaf reports whether the tree is a single tag.
func (tt TagTree) IsLeaf() bool {
	return !tt.choice
}

// IsChoice reports whether the tree describes a CHOICE.
func (tt TagTree) IsChoice() bool {
	return tt.choice
}

// IsOpen reports whether the tree is the empty choice of the open type.
func (tt TagTree) IsOpen() bool {
	return tt.choice && len(tt.children) == 0
}

// Tag returns the tag of a leaf. The second result is false for choices.
func (tt TagTree) Tag() (Tag, bool) {
	if tt.choice {
		return TagEOC, false
	}
	return tt.tag, true
}

// Variants returns a copy of the subtrees of a choice, or nil for a leaf.
func (tt TagTree) Variants() []TagTree {
	if !tt.choice {
		return nil
	}
	out := make([]TagTree, len(tt.children))
	copy(out, tt.children)
	return out
}

// Contains reports whether tag is one of the leaves of the tree.
//
// The open tree contains no tag; decoders treat IsOpen trees as accepting
// everything before calling Contains.
func (tt TagTree) Contains(tag Tag) bool {
	if !tt.choice {
		return tt.tag == tag
	}
	for _, child := range tt.children {
		if child.Contains(tag) {
			return true
		}
	}
	return false
}

// Leaves returns every leaf tag in depth-first declaration order.
func (tt TagTree) Leaves() []Tag {
	return tt.appendLeaves(nil)
}

func (tt TagTree) appendLeaves(dst []Tag) []Tag {
	if !tt.choice {
		return append(dst, tt.tag)
	}
	for _, child := range tt.children {
		dst = child.appendLeaves(dst)
	}
	return dst
}

// Smallest returns the lowest leaf tag of the tree. DER orders SET members
// and untagged CHOICE members by this tag. The open tree yields TagEOC.
func (tt TagTree) Smallest() Tag {
	leaves := tt.Leaves()
	if len(leaves) == 0 {
		return TagEOC
	}
	smallest := leaves[0]
	for _, t := range leaves[1:] {
		if t.Less(smallest) {
			smallest = t
		}
	}
	return smallest
}

// IsUnique reports whether no leaf tag occurs twice in the tree.
func (tt TagTree) IsUnique() bool {
	_, dup := firstDuplicate(tt.Leaves())
	return !dup
}

// Duplicate returns the first leaf tag found twice in the tree.
func (tt TagTree) Duplicate() (Tag, bool) {
	return firstDuplicate(tt.Leaves())
}

// TagTreesAreUnique reports whether the leaves of all trees together are
// pairwise distinct.
func TagTreesAreUnique(trees ...TagTree) bool {
	return ChoiceOf(trees...).IsUnique()
}

func firstDuplicate(tags []Tag) (Tag, bool) {
	seen := make(map[Tag]struct{}, len(tags))
	for _, t := range tags {
		if _, dup := seen[t]; dup {
			return t, true
		}
		seen[t] = struct{}{}
	}
	return TagEOC, false
}

// Equal reports whether two trees have the same shape and leaves.
func (tt TagTree) Equal(other TagTree) bool {
	if tt.choice != other.choice {
		return false
	}
	if !tt.choice {
		return tt.tag == other.tag
	}
	if len(tt.children) != len(other.children) {
		return false
	}
	for i := range tt.children {
		if !tt.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// String formats the tree, e.g. "[UNIVERSAL 2]" or "CHOICE{[0], [1]}".
func (tt TagTree) String() string {
	if !tt.choice {
		return tt.tag.String()
	}
	var b strings.Builder
	b.WriteString("CHOICE{")
	for i, child := range tt.children {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(child.String())
	}
	b.WriteString("}")
	return b.String()
}
