package types

import "fmt"

// Discriminant maps an ENUMERATED variant to its number on the wire.
type Discriminant[E comparable] struct {
	Variant E
	Value   int
}

// Enumerated is implemented by ENUMERATED types on their value receiver.
// The methods report the tables of the type and must not depend on the
// receiver's value.
//
// Every variant has exactly one entry in the discriminant tables, and
// discriminants are unique across root and extension variants.
type Enumerated[E comparable] interface {
	comparable
	// Variants returns the root variants in declaration order.
	Variants() []E
	// ExtendedVariants returns the variants after the extension marker. The
	// second result is false for non-extensible types.
	ExtendedVariants() ([]E, bool)
	// Discriminants maps every root variant to its discriminant.
	Discriminants() []Discriminant[E]
	// ExtendedDiscriminants maps every extension variant to its discriminant.
	ExtendedDiscriminants() ([]Discriminant[E], bool)
}

func tables[E Enumerated[E]]() E {
	var zero E
	return zero
}

// Variance returns the number of root variants of E.
func Variance[E Enumerated[E]]() int {
	return len(tables[E]().Variants())
}

// ExtendedVariance returns the number of extension variants of E, 0 if E
// is not extensible.
func ExtendedVariance[E Enumerated[E]]() int {
	ext, _ := tables[E]().ExtendedVariants()
	return len(ext)
}

// CompleteVariance returns the number of root and extension variants of E.
func CompleteVariance[E Enumerated[E]]() int {
	return Variance[E]() + ExtendedVariance[E]()
}

// IsExtendedVariant reports whether v is one of the extension variants of E.
func IsExtendedVariant[E Enumerated[E]](v E) bool {
	ext, _ := v.ExtendedVariants()
	return indexOf(ext, v) >= 0
}

// EnumerationIndex returns the position of v within the extension variants
// if it is one, otherwise its position within the root variants.
//
// It panics if v is in neither list: the tables of E are inconsistent with
// its values.
func EnumerationIndex[E Enumerated[E]](v E) int {
	if ext, _ := v.ExtendedVariants(); len(ext) > 0 {
		if i := indexOf(ext, v); i >= 0 {
			return i
		}
	}
	i := indexOf(v.Variants(), v)
	if i < 0 {
		panic(fmt.Sprintf("types: variant %v not defined in %T.Variants", v, v))
	}
	return i
}

// DiscriminantOf returns the discriminant of v, searching the root table and
// then the extension table.
//
// It panics if v has no entry: the tables of E are inconsistent with its values.
func DiscriminantOf[E Enumerated[E]](v E) int {
	for _, d := range v.Discriminants() {
		if d.Variant == v {
			return d.Value
		}
	}
	ext, _ := v.ExtendedDiscriminants()
	for _, d := range ext {
		if d.Variant == v {
			return d.Value
		}
	}
	panic(fmt.Sprintf("types: variant %v not defined in %T discriminants", v, v))
}

// FromDiscriminant returns the variant of E whose discriminant is value,
// searching the root table and then the extension table. The second result
// is false if no variant matches; value usually comes from the wire.
func FromDiscriminant[E Enumerated[E]](value int) (E, bool) {
	t := tables[E]()
	for _, d := range t.Discriminants() {
		if d.Value == value {
			return d.Variant, true
		}
	}
	ext, _ := t.ExtendedDiscriminants()
	for _, d := range ext {
		if d.Value == value {
			return d.Variant, true
		}
	}
	var zero E
	return zero, false
}

// FromEnumerationIndex returns the root variant at index.
func FromEnumerationIndex[E Enumerated[E]](index int) (E, bool) {
	return at(tables[E]().Variants(), index)
}

// FromExtendedEnumerationIndex returns the extension variant at index.
func FromExtendedEnumerationIndex[E Enumerated[E]](index int) (E, bool) {
	ext, _ := tables[E]().ExtendedVariants()
	return at(ext, index)
}

// ValidateEnumerated checks the tables of E: every variant has exactly one
// discriminant entry in the matching table, no variant is both root and
// extension, and discriminants are unique.
func ValidateEnumerated[E Enumerated[E]]() error {
	t := tables[E]()
	name := fmt.Sprintf("%T", t)
	root := t.Variants()
	ext, extensible := t.ExtendedVariants()
	rootD := t.Discriminants()
	extD, extDPresent := t.ExtendedDiscriminants()

	if extensible != extDPresent && (len(ext) > 0 || len(extD) > 0) {
		return &TableError{Type: name, Message: "extension variants and extension discriminants disagree on presence"}
	}
	if err := matchTable(name, "root", root, rootD); err != nil {
		return err
	}
	if err := matchTable(name, "extension", ext, extD); err != nil {
		return err
	}
	for _, v := range ext {
		if indexOf(root, v) >= 0 {
			return &TableError{Type: name, Message: fmt.Sprintf("variant %v is both root and extension", v)}
		}
	}
	seen := make(map[int]E, len(rootD)+len(extD))
	for _, d := range append(append([]Discriminant[E]{}, rootD...), extD...) {
		if prev, dup := seen[d.Value]; dup {
			return &TableError{Type: name, Message: fmt.Sprintf("discriminant %d used by %v and %v", d.Value, prev, d.Variant)}
		}
		seen[d.Value] = d.Variant
	}
	return nil
}

func matchTable[E comparable](name, list string, variants []E, discriminants []Discriminant[E]) error {
	if len(variants) != len(discriminants) {
		return &TableError{Type: name, Message: fmt.Sprintf("%d %s variants but %d discriminants", len(variants), list, len(discriminants))}
	}
	for _, v := range variants {
		n := 0
		for _, d := range discriminants {
			if d.Variant == v {
				n++
			}
		}
		if n != 1 {
			return &TableError{Type: name, Message: fmt.Sprintf("%s variant %v has %d discriminants", list, v, n)}
		}
	}
	return nil
}

func indexOf[E comparable](list []E, v E) int {
	for i, it := range list {
		if it == v {
			return i
		}
	}
	return -1
}

func at[E any](list []E, i int) (E, bool) {
	if i < 0 || i >= len(list) {
		var zero E
		return zero, false
	}
	return list[i], true
}
