package ber

import (
	"encoding/asn1"
	"fmt"
	"math/big"
	"reflect"
	"time"
	"unicode/utf8"

	"github.com/KilimcininKorOglu/asntypes/internal/types"
)

// DefaultMaxDepth is the nesting limit applied when Options.MaxDepth is unset.
const DefaultMaxDepth = 64

// Options controls the descriptor-driven Encode and Decode.
type Options struct {
	// MaxDepth limits the nesting of constructed elements.
	MaxDepth int
	// EnforceConstraints rejects values outside the Value and Size
	// constraints of their type. Extensible constraints accept any value.
	EnforceConstraints bool
}

// DefaultOptions returns the options used by NewBEREncoder and NewBERDecoder.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth, EnforceConstraints: true}
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

// check wraps a failed constraint check in a *ConstraintError.
func (o Options) check(offset int, rt reflect.Type, err error) error {
	if err == nil || !o.EnforceConstraints {
		return nil
	}
	return &ConstraintError{Offset: offset, Type: rt.String(), Err: err}
}

// Marshaler is implemented by types that write their own encoding. CHOICE
// types implement it to encode the selected alternative.
type Marshaler interface {
	MarshalBER(enc *BEREncoder) error
}

// Unmarshaler is implemented by pointers to types that read their own
// encoding. UnmarshalBER must consume exactly one element.
type Unmarshaler interface {
	UnmarshalBER(dec *BERDecoder) error
}

// integerValue is implemented by INTEGER wrappers such as types.ConstrainedInteger.
type integerValue interface {
	types.AsnType
	Int() *big.Int
}

// integerSetter is implemented by pointers to INTEGER wrappers.
type integerSetter interface {
	SetBig(n *big.Int)
}

var bigIntPtrType = reflect.TypeOf((*big.Int)(nil))

// Marshal returns the BER encoding of v.
func Marshal(v any) ([]byte, error) {
	return MarshalWithOptions(v, DefaultOptions())
}

// MarshalWithOptions returns the BER encoding of v using opts.
func MarshalWithOptions(v any, opts Options) ([]byte, error) {
	enc := NewBEREncoderWithOptions(256, opts)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return enc.Bytes(), nil
}

// Unmarshal decodes one element of data into v, a non-nil pointer, and
// rejects trailing bytes.
func Unmarshal(data []byte, v any) error {
	return UnmarshalWithOptions(data, v, DefaultOptions())
}

// UnmarshalWithOptions is Unmarshal using opts.
func UnmarshalWithOptions(data []byte, v any, opts Options) error {
	dec := NewBERDecoderWithOptions(data, opts)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return NewDecodeError(dec.pos(), fmt.Sprintf("%d bytes after element", dec.Remaining()), ErrTrailingData)
	}
	return nil
}

// Encode writes v using the descriptor of its type.
func (e *BEREncoder) Encode(v any) error {
	return e.encode(reflect.ValueOf(v), nil)
}

// encode writes rv. A non-nil override replaces the tag of rv's descriptor:
// implicitly for ordinary types, explicitly for CHOICE and Marshaler types.
func (e *BEREncoder) encode(rv reflect.Value, override *types.Tag) error {
	if !rv.IsValid() {
		return fmt.Errorf("%w: nil value", ErrUnsupportedType)
	}
	if rv.Kind() == reflect.Interface {
		return e.encode(rv.Elem(), override)
	}
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return fmt.Errorf("%w: nil %s", ErrUnsupportedType, rv.Type())
	}

	desc, known := types.DescriptorOf(rv.Interface())

	if m, ok := marshalerOf(rv); ok {
		if override != nil && (!known || desc.Tag != *override) {
			return e.WriteConstructed(*override, m.MarshalBER)
		}
		return m.MarshalBER(e)
	}
	if rv.Kind() == reflect.Pointer && rv.Type() != bigIntPtrType {
		return e.encode(rv.Elem(), override)
	}
	if !known {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
	}

	tag := desc.Tag
	if override != nil {
		if desc.IsChoice() {
			return e.WriteConstructed(*override, func(inner *BEREncoder) error {
				return inner.encode(rv, nil)
			})
		}
		tag = *override
	}

	switch x := rv.Interface().(type) {
	case types.Any:
		e.WriteRaw(x.Contents)
		return nil
	case types.Null:
		return e.WriteTLV(tag, false, nil)
	case types.UTCTime:
		return e.writeStdlib(tag, x.UTC(), "utc")
	case types.GeneralizedTime:
		return e.writeStdlib(tag, x.UTC(), "generalized")
	case time.Time:
		return e.writeStdlib(tag, x.UTC(), "utc")
	case asn1.ObjectIdentifier:
		return e.writeStdlib(tag, x, "")
	case asn1.BitString:
		return e.writeStdlib(tag, x, "")
	case *big.Int:
		return e.writeBigInteger(tag, rv.Type(), desc, x)
	case big.Int:
		return e.writeBigInteger(tag, rv.Type(), desc, &x)
	case integerValue:
		return e.writeBigInteger(tag, rv.Type(), desc, x.Int())
	case types.ElementLister:
		elems := x.Elements()
		if err := e.opts.check(-1, rv.Type(), desc.Constraints.CheckSize(len(elems))); err != nil {
			return err
		}
		return e.WriteConstructed(tag, func(inner *BEREncoder) error {
			for _, el := range elems {
				if err := inner.Encode(el); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if desc.IsChoice() {
		return fmt.Errorf("%w: CHOICE %s does not implement Marshaler", ErrUnsupportedType, rv.Type())
	}

	switch rv.Kind() {
	case reflect.Bool:
		return e.WriteBooleanWithTag(tag, rv.Bool())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if err := e.opts.check(-1, rv.Type(), desc.Constraints.CheckValue(big.NewInt(n))); err != nil {
			return err
		}
		return e.WriteIntegerWithTag(tag, n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return e.writeBigInteger(tag, rv.Type(), desc, new(big.Int).SetUint64(rv.Uint()))

	case reflect.String:
		s := rv.String()
		if !utf8.ValidString(s) {
			return ErrInvalidString
		}
		if err := e.opts.check(-1, rv.Type(), desc.Constraints.CheckString(s)); err != nil {
			return err
		}
		return e.WriteTLV(tag, false, []byte(s))

	case reflect.Slice, reflect.Array:
		if err := e.opts.check(-1, rv.Type(), desc.Constraints.CheckSize(rv.Len())); err != nil {
			return err
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			contents := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(contents), rv)
			return e.WriteTLV(tag, false, contents)
		}
		return e.WriteConstructed(tag, func(inner *BEREncoder) error {
			for i := 0; i < rv.Len(); i++ {
				if err := inner.encode(rv.Index(i), nil); err != nil {
					return fmt.Errorf("ber: %s[%d]: %w", rv.Type(), i, err)
				}
			}
			return nil
		})

	case reflect.Struct:
		if rv.NumField() == 0 {
			return e.WriteTLV(tag, false, nil)
		}
		if c, ok := rv.Interface().(types.Constructed); ok {
			return e.encodeConstructed(rv, c, tag)
		}
	}

	return fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
}

func (e *BEREncoder) writeBigInteger(tag types.Tag, rt reflect.Type, desc types.Descriptor, n *big.Int) error {
	if err := e.opts.check(-1, rt, desc.Constraints.CheckValue(n)); err != nil {
		return err
	}
	return e.WriteTLV(tag, false, encodeBigInteger(n))
}

// encodeConstructed writes the exported fields of rv in order as the
// members of c. Absent OPTIONAL and DEFAULT members are omitted.
func (e *BEREncoder) encodeConstructed(rv reflect.Value, c types.Constructed, tag types.Tag) error {
	fields := memberFields(c)
	members, err := memberValues(rv, fields)
	if err != nil {
		return err
	}

	return e.WriteConstructed(tag, func(inner *BEREncoder) error {
		for i, f := range fields {
			mv := members[i]
			if isAbsent(mv) {
				if f.IsOptionalOrDefault() {
					continue
				}
				return fmt.Errorf("ber: %s.%s: required member is absent", rv.Type(), f.Name)
			}
			if err := inner.encode(mv, memberTag(f)); err != nil {
				return fmt.Errorf("ber: %s.%s: %w", rv.Type(), f.Name, err)
			}
		}
		return nil
	})
}

func marshalerOf(rv reflect.Value) (Marshaler, bool) {
	if m, ok := rv.Interface().(Marshaler); ok {
		return m, true
	}
	if rv.CanAddr() {
		if m, ok := rv.Addr().Interface().(Marshaler); ok {
			return m, true
		}
	}
	return nil, false
}

// memberFields returns the root members of c followed by its extension members.
func memberFields(c types.Constructed) []types.Field {
	fields := c.Fields().All()
	if ext, ok := c.ExtendedFields(); ok {
		fields = append(fields, ext.All()...)
	}
	return fields
}

// memberValues returns the exported fields of struct rv, which must match
// the member list one to one.
func memberValues(rv reflect.Value, fields []types.Field) ([]reflect.Value, error) {
	var members []reflect.Value
	for i := 0; i < rv.NumField(); i++ {
		if rv.Type().Field(i).IsExported() {
			members = append(members, rv.Field(i))
		}
	}
	if len(members) != len(fields) {
		return nil, fmt.Errorf("ber: %s has %d exported fields for %d members", rv.Type(), len(members), len(fields))
	}
	return members, nil
}

// memberTag returns the tag a member is encoded with, or nil for untagged
// CHOICE members.
func memberTag(f types.Field) *types.Tag {
	if f.Tag.IsEOC() {
		return nil
	}
	tag := f.Tag
	return &tag
}

// memberAccepts reports whether an element tagged tag can be member f.
func memberAccepts(f types.Field, tag types.Tag) bool {
	if !f.Tag.IsEOC() {
		return f.Tag == tag
	}
	return f.TagTree.IsOpen() || f.TagTree.Contains(tag)
}

// isAbsent reports whether an OPTIONAL member holds no value.
func isAbsent(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return rv.IsNil()
	}
	if a, ok := rv.Interface().(types.Any); ok {
		return a.Contents == nil
	}
	return false
}

// Decode reads the next element into v, a non-nil pointer, using the
// descriptor of its type. It implements types.Decoder.
func (d *BERDecoder) Decode(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: Decode needs a non-nil pointer, got %T", ErrUnsupportedType, v)
	}
	return d.decode(rv.Elem(), nil)
}

// NoValidChoice reports that no alternative of the CHOICE name accepts tag.
// It implements types.Decoder.
func (d *BERDecoder) NoValidChoice(name string, tag types.Tag) error {
	return NewDecodeError(d.pos(), fmt.Sprintf("no alternative of %s accepts %s", name, tag), ErrUnknownChoice)
}

// DecodeChoice peeks the next tag and lets c decode the alternative it selects.
func (d *BERDecoder) DecodeChoice(c types.DecodeChoice) error {
	tag, _, err := d.PeekTag()
	if err != nil {
		return err
	}
	return c.FromTag(d, tag)
}

// DecodeSequence reads the SEQUENCE or SET envelope of c and calls fn to
// read its members. Elements left over after fn returns are skipped when c
// has an extension marker and rejected with ErrTrailingData otherwise.
func (d *BERDecoder) DecodeSequence(c types.Constructed, fn func(*BERDecoder) error) error {
	return d.decodeEnvelope(c.AsnTag(), c, fn)
}

func (d *BERDecoder) decodeEnvelope(tag types.Tag, c types.Constructed, fn func(*BERDecoder) error) error {
	sub, err := d.ReadConstructed(tag)
	if err != nil {
		return err
	}
	if err := fn(sub); err != nil {
		return err
	}
	return sub.finish(c)
}

// finish applies the trailing data rule of c to the unread elements.
func (d *BERDecoder) finish(c types.Constructed) error {
	if !d.More() {
		return nil
	}
	if _, ok := c.ExtendedFields(); !ok {
		return NewDecodeError(d.pos(), fmt.Sprintf("%d bytes after last member", d.Remaining()), ErrTrailingData)
	}
	for d.More() {
		if err := d.Skip(); err != nil {
			return err
		}
	}
	return nil
}

// decode reads the next element into the settable rv. A non-nil override
// replaces the tag of rv's descriptor as in encode.
func (d *BERDecoder) decode(rv reflect.Value, override *types.Tag) error {
	start := d.pos()

	if rv.CanAddr() {
		ptr := rv.Addr().Interface()
		desc, known := types.DescriptorOf(ptr)

		if u, ok := ptr.(Unmarshaler); ok {
			if override != nil && (!known || desc.Tag != *override) {
				return d.decodeExplicit(*override, func(sub *BERDecoder) error { return u.UnmarshalBER(sub) })
			}
			return u.UnmarshalBER(d)
		}
		if c, ok := ptr.(types.DecodeChoice); ok {
			if override != nil {
				return d.decodeExplicit(*override, func(sub *BERDecoder) error { return sub.DecodeChoice(c) })
			}
			return d.DecodeChoice(c)
		}
	}

	if rv.Kind() == reflect.Pointer && rv.Type() != bigIntPtrType {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return d.decode(rv.Elem(), override)
	}

	desc, known := types.DescriptorOfType(rv.Type())
	if !known {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
	}
	tag := desc.Tag
	if override != nil {
		if desc.IsChoice() {
			return d.decodeExplicit(*override, func(sub *BERDecoder) error { return sub.decode(rv, nil) })
		}
		tag = *override
	}
	if !rv.CanAddr() {
		return fmt.Errorf("%w: unaddressable %s", ErrUnsupportedType, rv.Type())
	}

	switch p := rv.Addr().Interface().(type) {
	case *types.Any:
		raw, err := d.ReadRawValue()
		if err != nil {
			return err
		}
		p.Contents = raw
		return nil
	case *types.Null:
		return d.ReadNullWithTag(tag)
	case *types.UTCTime:
		return d.readStdlib(tag, types.TagUTCTime, &p.Time, "utc")
	case *types.GeneralizedTime:
		return d.readStdlib(tag, types.TagGeneralizedTime, &p.Time, "generalized")
	case *time.Time:
		return d.readStdlib(tag, types.TagUTCTime, p, "utc")
	case *asn1.ObjectIdentifier:
		return d.readStdlib(tag, types.TagObjectIdentifier, p, "")
	case *asn1.BitString:
		return d.readStdlib(tag, types.TagBitString, p, "")
	case **big.Int:
		n, err := d.readBigInteger(tag, rv.Type(), desc)
		if err != nil {
			return err
		}
		*p = n
		return nil
	case *big.Int:
		n, err := d.readBigInteger(tag, rv.Type(), desc)
		if err != nil {
			return err
		}
		p.Set(n)
		return nil
	case integerSetter:
		n, err := d.readBigInteger(tag, rv.Type(), desc)
		if err != nil {
			return err
		}
		p.SetBig(n)
		return nil
	case types.ElementAdder:
		sub, err := d.ReadConstructed(tag)
		if err != nil {
			return err
		}
		count := 0
		for sub.More() {
			el := p.NewElement()
			if err := sub.decode(reflect.ValueOf(el).Elem(), nil); err != nil {
				return err
			}
			p.AddElement(el)
			count++
		}
		return d.opts.check(start, rv.Type(), desc.Constraints.CheckSize(count))
	}

	switch rv.Kind() {
	case reflect.Bool:
		b, err := d.ReadBooleanWithTag(tag)
		if err != nil {
			return err
		}
		rv.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := d.readBigInteger(tag, rv.Type(), desc)
		if err != nil {
			return err
		}
		if !n.IsInt64() || rv.OverflowInt(n.Int64()) {
			return NewDecodeError(start, fmt.Sprintf("%s overflows %s", n, rv.Type()), ErrInvalidInteger)
		}
		rv.SetInt(n.Int64())
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := d.readBigInteger(tag, rv.Type(), desc)
		if err != nil {
			return err
		}
		if n.Sign() < 0 || !n.IsUint64() || rv.OverflowUint(n.Uint64()) {
			return NewDecodeError(start, fmt.Sprintf("%s overflows %s", n, rv.Type()), ErrInvalidInteger)
		}
		rv.SetUint(n.Uint64())
		return nil

	case reflect.String:
		s, err := d.ReadUTF8StringWithTag(tag)
		if err != nil {
			return err
		}
		if err := d.opts.check(start, rv.Type(), desc.Constraints.CheckString(s)); err != nil {
			return err
		}
		rv.SetString(s)
		return nil

	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b, err := d.ReadOctetStringWithTag(tag)
			if err != nil {
				return err
			}
			if err := d.opts.check(start, rv.Type(), desc.Constraints.CheckSize(len(b))); err != nil {
				return err
			}
			rv.SetBytes(b)
			return nil
		}
		sub, err := d.ReadConstructed(tag)
		if err != nil {
			return err
		}
		s := reflect.MakeSlice(rv.Type(), 0, 0)
		for sub.More() {
			el := reflect.New(rv.Type().Elem()).Elem()
			if err := sub.decode(el, nil); err != nil {
				return fmt.Errorf("ber: %s[%d]: %w", rv.Type(), s.Len(), err)
			}
			s = reflect.Append(s, el)
		}
		if err := d.opts.check(start, rv.Type(), desc.Constraints.CheckSize(s.Len())); err != nil {
			return err
		}
		rv.Set(s)
		return nil

	case reflect.Array:
		return d.decodeArray(rv, tag, start)

	case reflect.Struct:
		if rv.NumField() == 0 {
			return d.ReadNullWithTag(tag)
		}
		if c, ok := rv.Interface().(types.Constructed); ok {
			return d.decodeConstructed(rv, c, tag)
		}
	}

	return fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
}

// decodeExplicit reads an element of one nested value wrapped in tag.
func (d *BERDecoder) decodeExplicit(tag types.Tag, fn func(*BERDecoder) error) error {
	sub, err := d.ReadConstructed(tag)
	if err != nil {
		return err
	}
	if err := fn(sub); err != nil {
		return err
	}
	if sub.More() {
		return NewDecodeError(sub.pos(), "explicit tag "+tag.String()+" holds more than one element", ErrTrailingData)
	}
	return nil
}

func (d *BERDecoder) readBigInteger(tag types.Tag, rt reflect.Type, desc types.Descriptor) (*big.Int, error) {
	start := d.pos()
	n, err := d.ReadBigIntegerWithTag(tag)
	if err != nil {
		return nil, err
	}
	if err := d.opts.check(start, rt, desc.Constraints.CheckValue(n)); err != nil {
		return nil, err
	}
	return n, nil
}

// decodeArray reads a fixed size OCTET STRING or SEQUENCE OF into rv.
func (d *BERDecoder) decodeArray(rv reflect.Value, tag types.Tag, start int) error {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		b, err := d.ReadOctetStringWithTag(tag)
		if err != nil {
			return err
		}
		if len(b) != rv.Len() {
			return &ConstraintError{Offset: start, Type: rv.Type().String(), Err: &types.BoundError{
				Kind:   types.KindSize,
				Value:  fmt.Sprint(len(b)),
				Bounds: fmt.Sprint(rv.Len()),
			}}
		}
		reflect.Copy(rv, reflect.ValueOf(b))
		return nil
	}

	sub, err := d.ReadConstructed(tag)
	if err != nil {
		return err
	}
	for i := 0; i < rv.Len(); i++ {
		if !sub.More() {
			return NewDecodeError(sub.pos(), fmt.Sprintf("%s needs %d elements, got %d", rv.Type(), rv.Len(), i), ErrUnexpectedEOF)
		}
		if err := sub.decode(rv.Index(i), nil); err != nil {
			return fmt.Errorf("ber: %s[%d]: %w", rv.Type(), i, err)
		}
	}
	if sub.More() {
		return NewDecodeError(sub.pos(), fmt.Sprintf("%s holds more than %d elements", rv.Type(), rv.Len()), ErrTrailingData)
	}
	return nil
}

// decodeConstructed reads the members of c into the exported fields of rv.
// SEQUENCE members are matched in order, SET members by tag. Extension
// members are absent in encodings made before they were added, so a missing
// one is never an error.
func (d *BERDecoder) decodeConstructed(rv reflect.Value, c types.Constructed, tag types.Tag) error {
	fields := memberFields(c)
	members, err := memberValues(rv, fields)
	if err != nil {
		return err
	}

	root := c.Fields().Len()

	if c.AsnTag() == types.TagSet {
		return d.decodeEnvelope(tag, c, func(sub *BERDecoder) error {
			return sub.decodeSetMembers(rv.Type(), fields, root, members)
		})
	}

	return d.decodeEnvelope(tag, c, func(sub *BERDecoder) error {
		for i, f := range fields {
			mayBeAbsent := i >= root || f.IsOptionalOrDefault()
			if !sub.More() {
				if mayBeAbsent {
					continue
				}
				return NewDecodeError(sub.pos(), fmt.Sprintf("%s.%s: required member is missing", rv.Type(), f.Name), ErrUnexpectedEOF)
			}
			next, constructed, err := sub.PeekTag()
			if err != nil {
				return err
			}
			if !memberAccepts(f, next) {
				if mayBeAbsent {
					continue
				}
				return &TagMismatchError{Offset: sub.pos(), Expected: f.TagTree.Smallest(), Actual: next, Constructed: constructed}
			}
			if err := sub.decode(members[i], memberTag(f)); err != nil {
				return fmt.Errorf("ber: %s.%s: %w", rv.Type(), f.Name, err)
			}
		}
		return nil
	})
}

// decodeSetMembers reads SET members in any order. Elements no member
// accepts are left for the trailing data rule. Members from index root on
// are extension additions and may be absent.
func (d *BERDecoder) decodeSetMembers(rt reflect.Type, fields []types.Field, root int, members []reflect.Value) error {
	seen := make([]bool, len(fields))
	for d.More() {
		next, _, err := d.PeekTag()
		if err != nil {
			return err
		}
		i := -1
		for j, f := range fields {
			if !seen[j] && memberAccepts(f, next) {
				i = j
				break
			}
		}
		if i < 0 {
			break
		}
		if err := d.decode(members[i], memberTag(fields[i])); err != nil {
			return fmt.Errorf("ber: %s.%s: %w", rt, fields[i].Name, err)
		}
		seen[i] = true
	}
	for j, f := range fields {
		if !seen[j] && j < root && !f.IsOptionalOrDefault() {
			return NewDecodeError(d.pos(), fmt.Sprintf("%s.%s: required member is missing", rt, f.Name), ErrUnexpectedEOF)
		}
	}
	return nil
}

// EncodeEnumerated writes v as an ENUMERATED holding its discriminant.
func EncodeEnumerated[E types.Enumerated[E]](enc *BEREncoder, v E) error {
	return enc.WriteEnumerated(int64(types.DiscriminantOf(v)))
}

// DecodeEnumerated reads an ENUMERATED and returns the variant with that
// discriminant, root or extension.
func DecodeEnumerated[E types.Enumerated[E]](dec *BERDecoder) (E, error) {
	var zero E
	start := dec.pos()
	n, err := dec.ReadEnumerated()
	if err != nil {
		return zero, err
	}
	if int64(int(n)) == n {
		if v, ok := types.FromDiscriminant[E](int(n)); ok {
			return v, nil
		}
	}
	return zero, NewDecodeError(start, fmt.Sprintf("%d is not a discriminant of %T", n, zero), ErrUnknownEnumeration)
}
