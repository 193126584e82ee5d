package schema

import (
	"fmt"

	"github.com/KilimcininKorOglu/asntypes/internal/types"
)

// Kind identifies the ASN.1 built-in type a definition is based on.
type Kind int

const (
	KindInvalid Kind = iota
	KindBoolean
	KindInteger
	KindEnumerated
	KindBitString
	KindOctetString
	KindNull
	KindObjectIdentifier
	KindUTF8String
	KindPrintableString
	KindIA5String
	KindUTCTime
	KindGeneralizedTime
	KindSequence
	KindSet
	KindSequenceOf
	KindSetOf
	KindChoice
	KindAny
)

// syntax describes one Kind: its schema keyword, ASN.1 notation, universal
// tag and the constraints it accepts.
type syntax struct {
	name     string
	notation string
	tag      types.Tag
	value    bool // accepts a value constraint
	size     bool // accepts a size constraint
	alphabet bool // accepts a permitted alphabet
}

var syntaxes = map[Kind]syntax{
	KindBoolean:          {name: "boolean", notation: "BOOLEAN", tag: types.TagBoolean},
	KindInteger:          {name: "integer", notation: "INTEGER", tag: types.TagInteger, value: true},
	KindEnumerated:       {name: "enumerated", notation: "ENUMERATED", tag: types.TagEnumerated},
	KindBitString:        {name: "bitString", notation: "BIT STRING", tag: types.TagBitString, size: true},
	KindOctetString:      {name: "octetString", notation: "OCTET STRING", tag: types.TagOctetString, size: true},
	KindNull:             {name: "null", notation: "NULL", tag: types.TagNull},
	KindObjectIdentifier: {name: "oid", notation: "OBJECT IDENTIFIER", tag: types.TagObjectIdentifier},
	KindUTF8String:       {name: "utf8String", notation: "UTF8String", tag: types.TagUTF8String, size: true, alphabet: true},
	KindPrintableString:  {name: "printableString", notation: "PrintableString", tag: types.TagPrintableString, size: true, alphabet: true},
	KindIA5String:        {name: "ia5String", notation: "IA5String", tag: types.TagIA5String, size: true, alphabet: true},
	KindUTCTime:          {name: "utcTime", notation: "UTCTime", tag: types.TagUTCTime},
	KindGeneralizedTime:  {name: "generalizedTime", notation: "GeneralizedTime", tag: types.TagGeneralizedTime},
	KindSequence:         {name: "sequence", notation: "SEQUENCE", tag: types.TagSequence},
	KindSet:              {name: "set", notation: "SET", tag: types.TagSet},
	KindSequenceOf:       {name: "sequenceOf", notation: "SEQUENCE OF", tag: types.TagSequence, size: true},
	KindSetOf:            {name: "setOf", notation: "SET OF", tag: types.TagSet, size: true},
	KindChoice:           {name: "choice", notation: "CHOICE", tag: types.TagEOC},
	KindAny:              {name: "any", notation: "ANY", tag: types.TagEOC},
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(syntaxes))
	for k, s := range syntaxes {
		m[s.name] = k
	}
	return m
}()

// ParseKind returns the Kind named by a schema keyword such as "utf8String".
func ParseKind(name string) (Kind, error) {
	if k, ok := kindsByName[name]; ok {
		return k, nil
	}
	return KindInvalid, fmt.Errorf("schema: unknown kind %q", name)
}

// String returns the schema keyword of the kind.
func (k Kind) String() string {
	if s, ok := syntaxes[k]; ok {
		return s.name
	}
	return "invalid"
}

// Notation returns the ASN.1 notation of the kind, e.g. "SEQUENCE OF".
func (k Kind) Notation() string {
	return syntaxes[k].notation
}

// UniversalTag returns the tag of an untagged type of this kind. CHOICE and
// ANY return types.TagEOC.
func (k Kind) UniversalTag() types.Tag {
	return syntaxes[k].tag
}

// IsConstructed reports whether the kind has named members.
func (k Kind) IsConstructed() bool {
	return k == KindSequence || k == KindSet
}

// IsCollection reports whether the kind is SEQUENCE OF or SET OF.
func (k Kind) IsCollection() bool {
	return k == KindSequenceOf || k == KindSetOf
}

// IsChoice reports whether values of the kind are selected by tag.
func (k Kind) IsChoice() bool {
	return k == KindChoice || k == KindAny
}

// accepts reports whether the kind accepts constraints of kind c.
func (k Kind) accepts(c types.ConstraintKind) bool {
	s := syntaxes[k]
	switch c {
	case types.KindValue:
		return s.value
	case types.KindSize:
		return s.size
	case types.KindPermittedAlphabet:
		return s.alphabet
	default:
		return false
	}
}
