package types

import (
	"cmp"
	"fmt"
)

// Class is the class of an ASN.1 tag.
type Class uint8

// Tag classes as defined in X.680. The values sort in the canonical order
// used by DER for SET components.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContext
	ClassPrivate
)

// String returns the ASN.1 keyword for the class.
func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "UNIVERSAL"
	case ClassApplication:
		return "APPLICATION"
	case ClassContext:
		return "CONTEXT"
	case ClassPrivate:
		return "PRIVATE"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// Tag identifies an ASN.1 type on the wire.
//
// Tags are comparable with == and ordered by class and then number.
type Tag struct {
	Class  Class
	Number uint32
}

// Universal tags as defined in X.680.
var (
	TagEOC              = Tag{ClassUniversal, 0}  // end-of-contents, also the CHOICE sentinel
	TagBoolean          = Tag{ClassUniversal, 1}  // BOOLEAN
	TagInteger          = Tag{ClassUniversal, 2}  // INTEGER
	TagBitString        = Tag{ClassUniversal, 3}  // BIT STRING
	TagOctetString      = Tag{ClassUniversal, 4}  // OCTET STRING
	TagNull             = Tag{ClassUniversal, 5}  // NULL
	TagObjectIdentifier = Tag{ClassUniversal, 6}  // OBJECT IDENTIFIER
	TagObjectDescriptor = Tag{ClassUniversal, 7}  // ObjectDescriptor
	TagExternal         = Tag{ClassUniversal, 8}  // EXTERNAL
	TagReal             = Tag{ClassUniversal, 9}  // REAL
	TagEnumerated       = Tag{ClassUniversal, 10} // ENUMERATED
	TagEmbeddedPDV      = Tag{ClassUniversal, 11} // EMBEDDED PDV
	TagUTF8String       = Tag{ClassUniversal, 12} // UTF8String
	TagRelativeOID      = Tag{ClassUniversal, 13} // RELATIVE-OID
	TagTime             = Tag{ClassUniversal, 14} // TIME
	TagSequence         = Tag{ClassUniversal, 16} // SEQUENCE, SEQUENCE OF
	TagSet              = Tag{ClassUniversal, 17} // SET, SET OF
	TagNumericString    = Tag{ClassUniversal, 18} // NumericString
	TagPrintableString  = Tag{ClassUniversal, 19} // PrintableString
	TagTeletexString    = Tag{ClassUniversal, 20} // TeletexString (T61String)
	TagVideotexString   = Tag{ClassUniversal, 21} // VideotexString
	TagIA5String        = Tag{ClassUniversal, 22} // IA5String
	TagUTCTime          = Tag{ClassUniversal, 23} // UTCTime
	TagGeneralizedTime  = Tag{ClassUniversal, 24} // GeneralizedTime
	TagGraphicString    = Tag{ClassUniversal, 25} // GraphicString
	TagVisibleString    = Tag{ClassUniversal, 26} // VisibleString (ISO646String)
	TagGeneralString    = Tag{ClassUniversal, 27} // GeneralString
	TagUniversalString  = Tag{ClassUniversal, 28} // UniversalString
	TagCharacterString  = Tag{ClassUniversal, 29} // CHARACTER STRING
	TagBMPString        = Tag{ClassUniversal, 30} // BMPString
	TagDate             = Tag{ClassUniversal, 31} // DATE
	TagTimeOfDay        = Tag{ClassUniversal, 32} // TIME-OF-DAY
	TagDateTime         = Tag{ClassUniversal, 33} // DATE-TIME
	TagDuration         = Tag{ClassUniversal, 34} // DURATION
)

var universalNames = map[uint32]string{
	0:  "EOC",
	1:  "BOOLEAN",
	2:  "INTEGER",
	3:  "BIT STRING",
	4:  "OCTET STRING",
	5:  "NULL",
	6:  "OBJECT IDENTIFIER",
	7:  "ObjectDescriptor",
	8:  "EXTERNAL",
	9:  "REAL",
	10: "ENUMERATED",
	11: "EMBEDDED PDV",
	12: "UTF8String",
	13: "RELATIVE-OID",
	14: "TIME",
	16: "SEQUENCE",
	17: "SET",
	18: "NumericString",
	19: "PrintableString",
	20: "TeletexString",
	21: "VideotexString",
	22: "IA5String",
	23: "UTCTime",
	24: "GeneralizedTime",
	25: "GraphicString",
	26: "VisibleString",
	27: "GeneralString",
	28: "UniversalString",
	29: "CHARACTER STRING",
	30: "BMPString",
	31: "DATE",
	32: "TIME-OF-DAY",
	33: "DATE-TIME",
	34: "DURATION",
}

// NewTag returns the tag with the given class and number.
func NewTag(class Class, number uint32) Tag {
	return Tag{Class: class, Number: number}
}

// ContextTag returns the context-specific tag [number].
func ContextTag(number uint32) Tag {
	return Tag{Class: ClassContext, Number: number}
}

// ApplicationTag returns the tag [APPLICATION number].
func ApplicationTag(number uint32) Tag {
	return Tag{Class: ClassApplication, Number: number}
}

// PrivateTag returns the tag [PRIVATE number].
func PrivateTag(number uint32) Tag {
	return Tag{Class: ClassPrivate, Number: number}
}

// UniversalTags returns every named universal tag in number order.
func UniversalTags() []Tag {
	tags := make([]Tag, 0, len(universalNames))
	for n := uint32(0); n <= TagDuration.Number; n++ {
		if _, ok := universalNames[n]; ok {
			tags = append(tags, Tag{ClassUniversal, n})
		}
	}
	return tags
}

// IsUniversal reports whether t is in the UNIVERSAL class.
func (t Tag) IsUniversal() bool {
	return t.Class == ClassUniversal
}

// IsEOC reports whether t is the end-of-contents sentinel.
func (t Tag) IsEOC() bool {
	return t == TagEOC
}

// Compare orders tags by class and then by number. It returns -1, 0 or +1.
func (t Tag) Compare(other Tag) int {
	if c := cmp.Compare(t.Class, other.Class); c != 0 {
		return c
	}
	return cmp.Compare(t.Number, other.Number)
}

// Less reports whether t sorts before other.
func (t Tag) Less(other Tag) bool {
	return t.Compare(other) < 0
}

// Name returns the ASN.1 name of a universal tag, or "" if t is not a known
// universal tag.
func (t Tag) Name() string {
	if !t.IsUniversal() {
		return ""
	}
	return universalNames[t.Number]
}

// String formats t in ASN.1 notation, e.g. "[UNIVERSAL 2]" or "[3]".
func (t Tag) String() string {
	if t.Class == ClassContext {
		return fmt.Sprintf("[%d]", t.Number)
	}
	return fmt.Sprintf("[%s %d]", t.Class, t.Number)
}
