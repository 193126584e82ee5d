package types

import "fmt"

// Choice is implemented by CHOICE types. AsnTag must return TagEOC and
// AsnTagTree must return ChoiceOf(Variants()...) plus any extension variants.
type Choice interface {
	AsnType
	// Variants returns the tag trees of the root alternatives in declaration order.
	Variants() []TagTree
	// ExtendedVariants returns the tag trees of the alternatives after the
	// extension marker. The second result is false for non-extensible CHOICEs.
	ExtendedVariants() ([]TagTree, bool)
	// Identifiers returns the alternative names, root then extension, for
	// text-based encoding rules.
	Identifiers() []string
}

// Decoder is the codec side of DecodeChoice: the operations FromTag may use
// to read the selected alternative.
type Decoder interface {
	// Decode reads the next value of the input into v, a pointer.
	Decode(v any) error
	// NoValidChoice returns the error reporting that no alternative of the
	// CHOICE named name accepts tag.
	NoValidChoice(name string, tag Tag) error
}

// DecodeChoice is implemented by pointers to CHOICE types.
type DecodeChoice interface {
	Choice
	// FromTag decodes the alternative selected by tag into the receiver. It
	// returns dec.NoValidChoice when no alternative accepts tag.
	FromTag(dec Decoder, tag Tag) error
}

// Variant identifies a resolved CHOICE alternative.
type Variant struct {
	// Index is the position within the root or the extension list.
	Index int
	// Extended reports whether the alternative comes after the extension marker.
	Extended bool
	// Identifier is the alternative name, if the CHOICE provides one.
	Identifier string
}

// Position returns the index of the alternative across root and extension
// alternatives together.
func (v Variant) Position(c Choice) int {
	if v.Extended {
		return len(c.Variants()) + v.Index
	}
	return v.Index
}

// ResolveChoice returns the alternative of c whose tag tree contains tag,
// testing root alternatives and then extension alternatives in declaration
// order. The first match wins. The second result is false when no
// alternative contains tag.
func ResolveChoice(c Choice, tag Tag) (Variant, bool) {
	ids := c.Identifiers()
	root := c.Variants()
	for i, tree := range root {
		if tree.Contains(tag) {
			return Variant{Index: i, Identifier: identifierAt(ids, i)}, true
		}
	}
	ext, ok := c.ExtendedVariants()
	if !ok {
		return Variant{}, false
	}
	for i, tree := range ext {
		if tree.Contains(tag) {
			return Variant{Index: i, Extended: true, Identifier: identifierAt(ids, len(root)+i)}, true
		}
	}
	return Variant{}, false
}

func identifierAt(ids []string, i int) string {
	if i < len(ids) {
		return ids[i]
	}
	return ""
}

// ChoiceTagTree returns the tag tree of a CHOICE with the given root and
// extension alternatives.
func ChoiceTagTree(root []TagTree, extended []TagTree) TagTree {
	all := make([]TagTree, 0, len(root)+len(extended))
	all = append(all, root...)
	all = append(all, extended...)
	return ChoiceOf(all...)
}

// ValidateChoice checks the tables of c: AsnTag is TagEOC, every
// alternative has an identifier, and no leaf tag occurs twice across the
// root and extension alternatives.
func ValidateChoice(c Choice) error {
	name := fmt.Sprintf("%T", c)
	if c.AsnTag() != TagEOC {
		return &TableError{Type: name, Message: fmt.Sprintf("CHOICE tag is %s, want %s", c.AsnTag(), TagEOC)}
	}
	ext, _ := c.ExtendedVariants()
	tree := ChoiceTagTree(c.Variants(), ext)
	if n, ids := len(c.Variants())+len(ext), len(c.Identifiers()); n != ids {
		return &TableError{Type: name, Message: fmt.Sprintf("%d alternatives but %d identifiers", n, ids)}
	}
	if dup, found := tree.Duplicate(); found {
		return &TableError{Type: name, Message: fmt.Sprintf("tag %s selects more than one alternative", dup)}
	}
	return nil
}
