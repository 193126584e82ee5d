package ber

import (
	"fmt"

	"github.com/KilimcininKorOglu/asntypes/internal/types"
)

// color is ENUMERATED { red(0), green(1), blue(2), ..., purple(10) }.
type color int

const (
	red color = iota
	green
	blue
	purple
)

func (color) Variants() []color { return []color{red, green, blue} }

func (color) ExtendedVariants() ([]color, bool) { return []color{purple}, true }

func (color) Discriminants() []types.Discriminant[color] {
	return []types.Discriminant[color]{{Variant: red, Value: 0}, {Variant: green, Value: 1}, {Variant: blue, Value: 2}}
}

func (color) ExtendedDiscriminants() ([]types.Discriminant[color], bool) {
	return []types.Discriminant[color]{{Variant: purple, Value: 10}}, true
}

type contextFlag bool

func (contextFlag) AsnTag() types.Tag { return types.ContextTag(0) }

// number is CHOICE { int INTEGER, text UTF8String, ..., flag [0] BOOLEAN }.
type number struct {
	variant int
	n       int64
	text    string
	flag    contextFlag
}

func (number) AsnTag() types.Tag { return types.TagEOC }

func (n number) AsnTagTree() types.TagTree {
	ext, _ := n.ExtendedVariants()
	return types.ChoiceTagTree(n.Variants(), ext)
}

func (number) Variants() []types.TagTree {
	return []types.TagTree{types.Leaf(types.TagInteger), types.Leaf(types.TagUTF8String)}
}

func (number) ExtendedVariants() ([]types.TagTree, bool) {
	return []types.TagTree{types.Leaf(types.ContextTag(0))}, true
}

func (number) Identifiers() []string { return []string{"int", "text", "flag"} }

func (n *number) FromTag(dec types.Decoder, tag types.Tag) error {
	v, ok := types.ResolveChoice(n, tag)
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

func (n number) MarshalBER(enc *BEREncoder) error {
	switch n.variant {
	case 0:
		return enc.Encode(n.n)
	case 1:
		return enc.Encode(n.text)
	default:
		return enc.Encode(n.flag)
	}
}

// octet fixes the range 0..255.
type octet struct{}

func (octet) Bounds() (int64, int64) { return 0, 255 }

// message is SEQUENCE {
//
//	id    [0] INTEGER (0..255),
//	name  [1] UTF8String OPTIONAL,
//	value Number,
//	...,
//	tags  [2] SEQUENCE OF UTF8String OPTIONAL
//
// }
type message struct {
	ID    types.ConstrainedInteger[octet]
	Name  *string
	Value number
	Tags  []string
}

func (message) AsnTag() types.Tag { return types.TagSequence }

func (message) Fields() types.Fields {
	return types.NewFields(
		types.NewField("id", types.ContextTag(0), types.Required),
		types.NewField("name", types.ContextTag(1), types.Optional),
		types.ChoiceField("value", number{}.AsnTagTree(), types.Required),
	)
}

func (message) ExtendedFields() (types.Fields, bool) {
	return types.NewFields(types.NewField("tags", types.ContextTag(2), types.Optional)), true
}

// closedFlag is SEQUENCE { flag BOOLEAN } without an extension marker.
type closedFlag struct {
	Flag bool
}

func (closedFlag) AsnTag() types.Tag { return types.TagSequence }

func (closedFlag) Fields() types.Fields {
	return types.NewFields(types.NewField("flag", types.TagBoolean, types.Required))
}

func (closedFlag) ExtendedFields() (types.Fields, bool) { return types.Fields{}, false }

// openFlag is SEQUENCE { flag BOOLEAN, ... }.
type openFlag struct {
	Flag bool
}

func (openFlag) AsnTag() types.Tag { return types.TagSequence }

func (openFlag) Fields() types.Fields { return closedFlag{}.Fields() }

func (openFlag) ExtendedFields() (types.Fields, bool) { return types.EmptyFields, true }

// wrapper is SEQUENCE { pick [3] Number }; the tag is explicit for a CHOICE.
type wrapper struct {
	Pick number
}

func (wrapper) AsnTag() types.Tag { return types.TagSequence }

func (wrapper) Fields() types.Fields {
	return types.NewFields(types.NewField("pick", types.ContextTag(3), types.Required))
}

func (wrapper) ExtendedFields() (types.Fields, bool) { return types.Fields{}, false }

// pair is SET { a [0] INTEGER, b [1] BOOLEAN OPTIONAL }.
type pair struct {
	A int64
	B bool
}

func (pair) AsnTag() types.Tag { return types.TagSet }

func (pair) Fields() types.Fields {
	return types.NewFields(
		types.NewField("a", types.ContextTag(0), types.Required),
		types.NewField("b", types.ContextTag(1), types.Optional),
	)
}

func (pair) ExtendedFields() (types.Fields, bool) { return types.Fields{}, false }

// recordV1 is SEQUENCE { a [0] INTEGER, ... }.
type recordV1 struct {
	A int64
}

func (recordV1) AsnTag() types.Tag { return types.TagSequence }

func (recordV1) Fields() types.Fields {
	return types.NewFields(types.NewField("a", types.ContextTag(0), types.Required))
}

func (recordV1) ExtendedFields() (types.Fields, bool) { return types.EmptyFields, true }

// recordV2 is recordV1 with the extension addition b [1] INTEGER.
type recordV2 struct {
	A int64
	B int64
}

func (recordV2) AsnTag() types.Tag { return types.TagSequence }

func (recordV2) Fields() types.Fields { return recordV1{}.Fields() }

func (recordV2) ExtendedFields() (types.Fields, bool) {
	return types.NewFields(types.NewField("b", types.ContextTag(1), types.Required)), true
}

// pairV2 is pair with an extension marker and the addition c [2] INTEGER.
type pairV2 struct {
	A int64
	B bool
	C int64
}

func (pairV2) AsnTag() types.Tag { return types.TagSet }

func (pairV2) Fields() types.Fields { return pair{}.Fields() }

func (pairV2) ExtendedFields() (types.Fields, bool) {
	return types.NewFields(types.NewField("c", types.ContextTag(2), types.Required)), true
}

// shortName is UTF8String (SIZE(1..4)).
type shortName string

func (shortName) AsnTag() types.Tag { return types.TagUTF8String }

func (shortName) AsnConstraints() types.Constraints {
	return types.NewConstraints(types.Size(types.NewExtensible(types.SizeRange(1, 4))))
}

// smallInt is INTEGER (0..7, ...).
type smallInt int

func (smallInt) AsnTag() types.Tag { return types.TagInteger }

func (smallInt) AsnConstraints() types.Constraints {
	return types.NewConstraints(types.Value(types.Extended(types.ValueRange(0, 7))))
}

// version writes itself as a two byte OCTET STRING.
type version struct {
	major, minor byte
}

func (version) AsnTag() types.Tag { return types.TagOctetString }

func (v version) MarshalBER(enc *BEREncoder) error {
	return enc.WriteOctetString([]byte{v.major, v.minor})
}

func (v *version) UnmarshalBER(dec *BERDecoder) error {
	b, err := dec.ReadOctetString()
	if err != nil {
		return err
	}
	if len(b) != 2 {
		return fmt.Errorf("version: expected 2 bytes, got %d", len(b))
	}
	v.major, v.minor = b[0], b[1]
	return nil
}
