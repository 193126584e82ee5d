package types

import (
	"encoding/asn1"
	"math"
	"math/big"
	"reflect"
	"time"
)

// Null is the ASN.1 NULL value. struct{} maps to NULL as well.
type Null struct{}

// AsnTag returns TagNull.
func (Null) AsnTag() Tag { return TagNull }

// Any is an open type value: a complete encoding whose type is unknown to
// the schema. It accepts any tag.
type Any struct {
	Contents []byte
}

// AsnTag returns TagEOC.
func (Any) AsnTag() Tag { return TagEOC }

// AsnTagTree returns the open tree.
func (Any) AsnTagTree() TagTree { return AnyTree }

// UTCTime is a time encoded as UTCTime. Plain time.Time maps to UTCTime too.
type UTCTime struct {
	time.Time
}

// AsnTag returns TagUTCTime.
func (UTCTime) AsnTag() Tag { return TagUTCTime }

// GeneralizedTime is a time encoded as GeneralizedTime.
type GeneralizedTime struct {
	time.Time
}

// AsnTag returns TagGeneralizedTime.
func (GeneralizedTime) AsnTag() Tag { return TagGeneralizedTime }

// SetOf is a SET OF collection. Members are unique and kept in insertion
// order; canonical encoding rules sort them on output.
type SetOf[T comparable] struct {
	items []T
}

// NewSetOf returns a set holding items with duplicates dropped.
func NewSetOf[T comparable](items ...T) SetOf[T] {
	var s SetOf[T]
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// AsnTag returns TagSet.
func (SetOf[T]) AsnTag() Tag { return TagSet }

// Add inserts item unless it is already present and reports whether it was added.
func (s *SetOf[T]) Add(item T) bool {
	if s.Contains(item) {
		return false
	}
	s.items = append(s.items, item)
	return true
}

// Contains reports whether item is in the set.
func (s SetOf[T]) Contains(item T) bool {
	for _, it := range s.items {
		if it == item {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (s SetOf[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the members.
func (s SetOf[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Elements returns the members as values of type any, for reflective codecs.
func (s SetOf[T]) Elements() []any {
	out := make([]any, len(s.items))
	for i, it := range s.items {
		out[i] = it
	}
	return out
}

// NewElement returns a pointer to a zero member for a decoder to fill.
func (s *SetOf[T]) NewElement() any {
	return new(T)
}

// AddElement inserts the member pointed to by e, which must come from NewElement.
func (s *SetOf[T]) AddElement(e any) {
	s.Add(*e.(*T))
}

// ElementLister is implemented by SET OF collections for reflective encoders.
type ElementLister interface {
	Elements() []any
}

// ElementAdder is implemented by SET OF collections for reflective decoders.
type ElementAdder interface {
	NewElement() any
	AddElement(e any)
}

var (
	asnTypeInterface = reflect.TypeOf((*AsnType)(nil)).Elem()
	bigIntType       = reflect.TypeOf(big.Int{})
	timeType         = reflect.TypeOf(time.Time{})
	oidType          = reflect.TypeOf(asn1.ObjectIdentifier{})
	bitStringType    = reflect.TypeOf(asn1.BitString{})
)

func nativeRange(lo, hi *big.Int) Constraints {
	return NewConstraints(Value(NewExtensible(BigValueRange(lo, hi))))
}

var nativeIntegers = map[reflect.Kind]Constraints{
	reflect.Int8:    nativeRange(big.NewInt(math.MinInt8), big.NewInt(math.MaxInt8)),
	reflect.Int16:   nativeRange(big.NewInt(math.MinInt16), big.NewInt(math.MaxInt16)),
	reflect.Int32:   nativeRange(big.NewInt(math.MinInt32), big.NewInt(math.MaxInt32)),
	reflect.Int64:   nativeRange(big.NewInt(math.MinInt64), big.NewInt(math.MaxInt64)),
	reflect.Int:     nativeRange(big.NewInt(math.MinInt), big.NewInt(math.MaxInt)),
	reflect.Uint8:   nativeRange(big.NewInt(0), big.NewInt(math.MaxUint8)),
	reflect.Uint16:  nativeRange(big.NewInt(0), big.NewInt(math.MaxUint16)),
	reflect.Uint32:  nativeRange(big.NewInt(0), big.NewInt(math.MaxUint32)),
	reflect.Uint64:  nativeRange(big.NewInt(0), new(big.Int).SetUint64(math.MaxUint64)),
	reflect.Uint:    nativeRange(big.NewInt(0), new(big.Int).SetUint64(math.MaxUint)),
	reflect.Uintptr: nativeRange(big.NewInt(0), new(big.Int).SetUint64(math.MaxUint)),
}

// DescriptorOf returns the descriptor of v: its own metadata if it
// implements AsnType, otherwise the builtin binding of its Go type. The
// second result is false for values with no ASN.1 mapping.
func DescriptorOf(v any) (Descriptor, bool) {
	if t, ok := v.(AsnType); ok {
		if rv := reflect.ValueOf(v); rv.Kind() != reflect.Pointer || !rv.IsNil() {
			return DescribeAsnType(t), true
		}
	}
	if v == nil {
		return Descriptor{}, false
	}
	return DescriptorOfType(reflect.TypeOf(v))
}

// DescriptorOfType returns the descriptor of values of type rt.
//
// The builtin bindings are:
//
//	bool                          BOOLEAN
//	int8..int64, uint8..uint64    INTEGER (native range)
//	big.Int, *big.Int             INTEGER
//	[]byte                        OCTET STRING
//	[N]byte                       OCTET STRING SIZE(N)
//	string                        UTF8String
//	asn1.ObjectIdentifier         OBJECT IDENTIFIER
//	asn1.BitString                BIT STRING
//	time.Time                     UTCTime
//	struct{}                      NULL
//	[]T                           SEQUENCE OF
//	[N]T                          SEQUENCE OF SIZE(N)
//	*T                            same as T
func DescriptorOfType(rt reflect.Type) (Descriptor, bool) {
	if rt == nil {
		return Descriptor{}, false
	}
	if rt.Kind() == reflect.Pointer {
		elem := rt.Elem()
		if !elem.Implements(asnTypeInterface) && rt.Implements(asnTypeInterface) {
			return DescribeAsnType(reflect.New(elem).Interface().(AsnType)), true
		}
		return DescriptorOfType(elem)
	}
	if rt.Implements(asnTypeInterface) {
		if rt.Kind() == reflect.Interface {
			return Descriptor{}, false
		}
		return DescribeAsnType(reflect.Zero(rt).Interface().(AsnType)), true
	}

	switch rt {
	case bigIntType:
		return primitive(TagInteger), true
	case timeType:
		return primitive(TagUTCTime), true
	case oidType:
		return primitive(TagObjectIdentifier), true
	case bitStringType:
		return primitive(TagBitString), true
	}

	switch rt.Kind() {
	case reflect.Bool:
		return primitive(TagBoolean), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Descriptor{Tag: TagInteger, TagTree: Leaf(TagInteger), Constraints: nativeIntegers[rt.Kind()]}, true
	case reflect.String:
		return primitive(TagUTF8String), true
	case reflect.Slice:
		if rt.Elem().Kind() == reflect.Uint8 {
			return primitive(TagOctetString), true
		}
		return primitive(TagSequence), true
	case reflect.Array:
		tag := TagSequence
		if rt.Elem().Kind() == reflect.Uint8 {
			tag = TagOctetString
		}
		return Descriptor{
			Tag:         tag,
			TagTree:     Leaf(tag),
			Constraints: NewConstraints(Size(NewExtensible(FixedSize(rt.Len())))),
		}, true
	case reflect.Struct:
		if rt.NumField() == 0 {
			return primitive(TagNull), true
		}
	}
	return Descriptor{}, false
}

func primitive(t Tag) Descriptor {
	return Descriptor{Tag: t, TagTree: Leaf(t), Constraints: NoConstraints}
}
