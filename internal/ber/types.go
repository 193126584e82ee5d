// Package ber implements ASN.1 BER (Basic Encoding Rules) encoding
// as specified in ITU-T X.690.
package ber

import "github.com/KilimcininKorOglu/asntypes/internal/types"

// Tag class bits (bits 7-8 of the identifier octet)
const (
	ClassUniversal       = 0x00 // 00xxxxxx
	ClassApplication     = 0x40 // 01xxxxxx
	ClassContextSpecific = 0x80 // 10xxxxxx
	ClassPrivate         = 0xC0 // 11xxxxxx
)

// Constructed flag (bit 6 of the identifier octet)
const (
	TypePrimitive   = 0x00 // xx0xxxxx
	TypeConstructed = 0x20 // xx1xxxxx
)

// Length encoding constants
const (
	// LengthLongFormBit indicates long form length encoding (bit 8 set)
	LengthLongFormBit = 0x80
	// MaxShortFormLength is the maximum length encodable in short form (0-127)
	MaxShortFormLength = 127
	// LongFormTagNumber in the low 5 bits announces a base-128 tag number
	LongFormTagNumber = 0x1F
)

// classBits returns the identifier bits of a tag class.
func classBits(c types.Class) (byte, error) {
	switch c {
	case types.ClassUniversal:
		return ClassUniversal, nil
	case types.ClassApplication:
		return ClassApplication, nil
	case types.ClassContext:
		return ClassContextSpecific, nil
	case types.ClassPrivate:
		return ClassPrivate, nil
	default:
		return 0, ErrInvalidTagClass
	}
}

// classFromBits returns the tag class encoded in an identifier octet.
func classFromBits(b byte) types.Class {
	switch b & 0xC0 {
	case ClassApplication:
		return types.ClassApplication
	case ClassContextSpecific:
		return types.ClassContext
	case ClassPrivate:
		return types.ClassPrivate
	default:
		return types.ClassUniversal
	}
}

// isConstructedTag reports whether BER always encodes values carrying tag
// in constructed form.
func isConstructedTag(t types.Tag) bool {
	return t == types.TagSequence || t == types.TagSet ||
		t == types.TagExternal || t == types.TagEmbeddedPDV || t == types.TagCharacterString
}
