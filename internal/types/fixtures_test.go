package types

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// color is ENUMERATED { red(0), green(1), blue(2), ..., purple(10) }.
type color int

const (
	red color = iota
	green
	blue
	purple
)

func (c color) String() string {
	return [...]string{"red", "green", "blue", "purple"}[c]
}

func (color) Variants() []color { return []color{red, green, blue} }

func (color) ExtendedVariants() ([]color, bool) { return []color{purple}, true }

func (color) Discriminants() []Discriminant[color] {
	return []Discriminant[color]{{red, 0}, {green, 1}, {blue, 2}}
}

func (color) ExtendedDiscriminants() ([]Discriminant[color], bool) {
	return []Discriminant[color]{{purple, 10}}, true
}

// status is ENUMERATED { ok(0), failed(-1) }. unknownStatus is a Go value
// the tables do not declare.
type status int

const (
	statusOK status = iota
	statusFailed
	unknownStatus
)

func (status) Variants() []status { return []status{statusOK, statusFailed} }

func (status) ExtendedVariants() ([]status, bool) { return nil, false }

func (status) Discriminants() []Discriminant[status] {
	return []Discriminant[status]{{statusOK, 0}, {statusFailed, -1}}
}

func (status) ExtendedDiscriminants() ([]Discriminant[status], bool) { return nil, false }

// clash reuses discriminant 1 across root and extension.
type clash int

func (clash) Variants() []clash { return []clash{0, 1} }

func (clash) ExtendedVariants() ([]clash, bool) { return []clash{2}, true }

func (clash) Discriminants() []Discriminant[clash] {
	return []Discriminant[clash]{{0, 0}, {1, 1}}
}

func (clash) ExtendedDiscriminants() ([]Discriminant[clash], bool) {
	return []Discriminant[clash]{{2, 1}}, true
}

// missing declares a root variant without a discriminant.
type missing int

func (missing) Variants() []missing { return []missing{0, 1} }

func (missing) ExtendedVariants() ([]missing, bool) { return nil, false }

func (missing) Discriminants() []Discriminant[missing] {
	return []Discriminant[missing]{{0, 0}, {0, 1}}
}

func (missing) ExtendedDiscriminants() ([]Discriminant[missing], bool) { return nil, false }

// number is CHOICE { int INTEGER, text UTF8String, ..., flag [0] BOOLEAN }.
type number struct {
	variant int
	n       int64
	text    string
	flag    bool
}

func (number) AsnTag() Tag { return TagEOC }

func (n number) AsnTagTree() TagTree {
	ext, _ := n.ExtendedVariants()
	return ChoiceTagTree(n.Variants(), ext)
}

func (number) Variants() []TagTree {
	return []TagTree{Leaf(TagInteger), Leaf(TagUTF8String)}
}

func (number) ExtendedVariants() ([]TagTree, bool) {
	return []TagTree{Leaf(ContextTag(0))}, true
}

func (number) Identifiers() []string { return []string{"int", "text", "flag"} }

func (n *number) FromTag(dec Decoder, tag Tag) error {
	v, ok := ResolveChoice(n, tag)
	if !ok {
		return dec.NoValidChoice("Number", tag)
	}
	n.variant = v.Position(n)
	switch n.variant {
	case 0:
		return dec.Decode(&n.n)
	case 1:
		return dec.Decode(&n.text)
	default:
		return dec.Decode(&n.flag)
	}
}

var errNoChoice = errors.New("no valid choice")

// scriptedDecoder hands out a fixed value to whatever Decode asks for.
type scriptedDecoder struct {
	next any
}

func (d *scriptedDecoder) Decode(v any) error {
	switch p := v.(type) {
	case *int64:
		*p = d.next.(int64)
	case *string:
		*p = d.next.(string)
	case *bool:
		*p = d.next.(bool)
	default:
		return fmt.Errorf("unsupported target %T", v)
	}
	return nil
}

func (d *scriptedDecoder) NoValidChoice(name string, tag Tag) error {
	return fmt.Errorf("%s: %s: %w", name, tag, errNoChoice)
}

// record is SEQUENCE { id [0] INTEGER, name [1] UTF8String OPTIONAL, ... }.
type record struct{}

func (record) AsnTag() Tag { return TagSequence }

func (record) Fields() Fields {
	return NewFields(
		NewField("id", ContextTag(0), Required),
		NewField("name", ContextTag(1), Optional),
	)
}

func (record) ExtendedFields() (Fields, bool) { return EmptyFields, true }

// closed is a non-extensible SEQUENCE.
type closed struct{}

func (closed) AsnTag() Tag { return TagSequence }

func (closed) Fields() Fields { return NewFields(NewField("flag", TagBoolean, Required)) }

func (closed) ExtendedFields() (Fields, bool) { return Fields{}, false }

// octet fixes the range 0..255.
type octet struct{}

func (octet) Bounds() (int64, int64) { return 0, 255 }

// unsigned64 fixes the range 0..2^64-1, which needs big bounds.
type unsigned64 struct{}

func (unsigned64) Bounds() (int64, int64) { return 0, math.MaxInt64 }

func (unsigned64) BigBounds() (*big.Int, *big.Int) {
	return big.NewInt(0), new(big.Int).SetUint64(math.MaxUint64)
}

// nonNegative fixes the range 0..MAX.
type nonNegative struct{}

func (nonNegative) Bounds() (int64, int64) { return 0, math.MaxInt64 }

func (nonNegative) BigBounds() (*big.Int, *big.Int) { return big.NewInt(0), nil }
