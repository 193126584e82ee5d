// Package ber implements ASN.1 BER (Basic Encoding Rules) encoding
// as specified in ITU-T X.690.
package ber

import (
	"encoding/asn1"
	"math/big"
	"time"
	"unicode/utf8"

	"github.com/KilimcininKorOglu/asntypes/internal/types"
)

// BERDecoder decodes ASN.1 values using BER (Basic Encoding Rules).
type BERDecoder struct {
	data   []byte
	offset int
	base   int // offset of data within the outermost input
	depth  int
	opts   Options
}

// NewBERDecoder creates a new BER decoder for the given data.
func NewBERDecoder(data []byte) *BERDecoder {
	return NewBERDecoderWithOptions(data, DefaultOptions())
}

// NewBERDecoderWithOptions creates a new BER decoder with the given options.
func NewBERDecoderWithOptions(data []byte, opts Options) *BERDecoder {
	return &BERDecoder{
		data: data,
		opts: opts.withDefaults(),
	}
}

// Offset returns the current read position in the data.
func (d *BERDecoder) Offset() int {
	return d.offset
}

// Remaining returns the number of bytes remaining to be read.
func (d *BERDecoder) Remaining() int {
	return len(d.data) - d.offset
}

// More reports whether unread elements remain.
func (d *BERDecoder) More() bool {
	return d.offset < len(d.data)
}

// Reset resets the decoder to the beginning of the data.
func (d *BERDecoder) Reset() {
	d.offset = 0
}

// SetData sets new data for the decoder and resets the offset.
func (d *BERDecoder) SetData(data []byte) {
	d.data = data
	d.offset = 0
	d.base = 0
}

// pos returns the current position relative to the outermost input.
func (d *BERDecoder) pos() int {
	return d.base + d.offset
}

// ReadTag reads the identifier octet(s) at the current position.
// Returns the tag and whether the element is constructed.
func (d *BERDecoder) ReadTag() (types.Tag, bool, error) {
	start := d.pos()

	if d.offset >= len(d.data) {
		return types.Tag{}, false, NewDecodeError(start, "cannot read tag", ErrUnexpectedEOF)
	}

	first := d.data[d.offset]
	d.offset++

	class := classFromBits(first)
	constructed := first&TypeConstructed != 0
	number := uint32(first & LongFormTagNumber)

	// Long form: all 5 number bits set, the number follows in base-128
	if number == LongFormTagNumber {
		n, err := d.readBase128()
		if err != nil {
			return types.Tag{}, false, NewDecodeError(start, "cannot read long form tag number", err)
		}
		number = n
	}

	tag := types.NewTag(class, number)
	if !constructed && isConstructedTag(tag) {
		return types.Tag{}, false, NewDecodeError(start, tag.String()+" must be constructed", ErrTagMismatch)
	}
	return tag, constructed, nil
}

// readBase128 reads a base-128 encoded integer (used for long form tags).
func (d *BERDecoder) readBase128() (uint32, error) {
	var result uint32
	for {
		if d.offset >= len(d.data) {
			return 0, ErrUnexpectedEOF
		}

		b := d.data[d.offset]
		d.offset++

		if result > (1<<32-1)>>7 {
			return 0, ErrInvalidTagNumber
		}

		result = (result << 7) | uint32(b&0x7F)

		// If high bit is not set, this is the last byte
		if b&0x80 == 0 {
			return result, nil
		}
	}
}

// PeekTag reads a tag without advancing the offset.
func (d *BERDecoder) PeekTag() (types.Tag, bool, error) {
	saved := d.offset
	tag, constructed, err := d.ReadTag()
	d.offset = saved
	return tag, constructed, err
}

// ReadLength reads a BER length value from the current position.
func (d *BERDecoder) ReadLength() (int, error) {
	start := d.pos()

	if d.offset >= len(d.data) {
		return 0, NewDecodeError(start, "cannot read length", ErrUnexpectedEOF)
	}

	first := d.data[d.offset]
	d.offset++

	// Short form: bit 8 is 0, bits 1-7 contain the length
	if first&LengthLongFormBit == 0 {
		return int(first), nil
	}

	// Long form: bits 1-7 contain the number of subsequent length bytes
	numBytes := int(first & 0x7F)
	if numBytes == 0 {
		return 0, NewDecodeError(start, "indefinite length encoding", ErrIndefiniteLength)
	}
	if d.offset+numBytes > len(d.data) {
		return 0, NewDecodeError(start, "truncated length encoding", ErrUnexpectedEOF)
	}

	length := 0
	for i := 0; i < numBytes; i++ {
		if length > (1 << 24) {
			return 0, NewDecodeError(start, "length value overflow", ErrInvalidLength)
		}
		length = (length << 8) | int(d.data[d.offset])
		d.offset++
	}

	return length, nil
}

// readHeader reads a tag and length, checks the tag against expected and
// that the contents are present. It returns the content length.
func (d *BERDecoder) readHeader(expected types.Tag) (int, bool, error) {
	start := d.pos()

	tag, constructed, err := d.ReadTag()
	if err != nil {
		return 0, false, err
	}
	if tag != expected {
		return 0, false, &TagMismatchError{
			Offset:      start,
			Expected:    expected,
			Actual:      tag,
			Constructed: constructed,
		}
	}

	length, err := d.ReadLength()
	if err != nil {
		return 0, false, err
	}
	if d.offset+length > len(d.data) {
		return 0, false, NewDecodeError(start, "truncated value", ErrUnexpectedEOF)
	}
	return length, constructed, nil
}

// readPrimitive reads a primitive element tagged expected and returns its
// contents. The slice aliases the input.
func (d *BERDecoder) readPrimitive(expected types.Tag) ([]byte, error) {
	start := d.pos()
	length, constructed, err := d.readHeader(expected)
	if err != nil {
		return nil, err
	}
	if constructed {
		return nil, NewDecodeError(start, "constructed encoding of "+expected.String()+" not supported", nil)
	}
	contents := d.data[d.offset : d.offset+length]
	d.offset += length
	return contents, nil
}

// ReadBoolean reads a BER-encoded boolean value.
func (d *BERDecoder) ReadBoolean() (bool, error) {
	return d.ReadBooleanWithTag(types.TagBoolean)
}

// ReadBooleanWithTag reads a boolean under an implicit tag.
func (d *BERDecoder) ReadBooleanWithTag(tag types.Tag) (bool, error) {
	start := d.pos()
	contents, err := d.readPrimitive(tag)
	if err != nil {
		return false, err
	}
	if len(contents) != 1 {
		return false, NewDecodeError(start, "boolean must have length 1", ErrInvalidBoolean)
	}
	// Per X.690, FALSE is 0x00, TRUE is any non-zero value
	return contents[0] != 0x00, nil
}

// ReadInteger reads a BER-encoded integer value.
func (d *BERDecoder) ReadInteger() (int64, error) {
	return d.ReadIntegerWithTag(types.TagInteger)
}

// ReadIntegerWithTag reads an int64 integer under an implicit tag.
func (d *BERDecoder) ReadIntegerWithTag(tag types.Tag) (int64, error) {
	start := d.pos()
	contents, err := d.readPrimitive(tag)
	if err != nil {
		return 0, err
	}
	if len(contents) == 0 {
		return 0, NewDecodeError(start, "integer must have at least 1 byte", ErrInvalidInteger)
	}
	if len(contents) > 8 {
		return 0, NewDecodeError(start, "integer too large for int64", ErrInvalidInteger)
	}
	return decodeInteger(contents), nil
}

// ReadEnumerated reads a BER-encoded enumerated value.
func (d *BERDecoder) ReadEnumerated() (int64, error) {
	return d.ReadIntegerWithTag(types.TagEnumerated)
}

// ReadBigInteger reads an integer of any size.
func (d *BERDecoder) ReadBigInteger() (*big.Int, error) {
	return d.ReadBigIntegerWithTag(types.TagInteger)
}

// ReadBigIntegerWithTag reads an integer of any size under an implicit tag.
func (d *BERDecoder) ReadBigIntegerWithTag(tag types.Tag) (*big.Int, error) {
	start := d.pos()
	contents, err := d.readPrimitive(tag)
	if err != nil {
		return nil, err
	}
	if len(contents) == 0 {
		return nil, NewDecodeError(start, "integer must have at least 1 byte", ErrInvalidInteger)
	}
	return decodeBigInteger(contents), nil
}

// decodeInteger decodes a two's complement integer of at most 8 bytes.
func decodeInteger(contents []byte) int64 {
	var result int64
	// If high bit is set, the number is negative (two's complement)
	if contents[0]&0x80 != 0 {
		result = -1
	}
	for _, b := range contents {
		result = (result << 8) | int64(b)
	}
	return result
}

// decodeBigInteger decodes a two's complement integer of any size.
func decodeBigInteger(contents []byte) *big.Int {
	n := new(big.Int).SetBytes(contents)
	if contents[0]&0x80 != 0 {
		// Subtract 2^(8*len) to restore the sign
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(8*len(contents))))
	}
	return n
}

// ReadOctetString reads a BER-encoded octet string.
func (d *BERDecoder) ReadOctetString() ([]byte, error) {
	return d.ReadOctetStringWithTag(types.TagOctetString)
}

// ReadOctetStringWithTag reads an octet string under an implicit tag.
func (d *BERDecoder) ReadOctetStringWithTag(tag types.Tag) ([]byte, error) {
	contents, err := d.readPrimitive(tag)
	if err != nil {
		return nil, err
	}
	value := make([]byte, len(contents))
	copy(value, contents)
	return value, nil
}

// ReadUTF8String reads a UTF8String.
func (d *BERDecoder) ReadUTF8String() (string, error) {
	return d.ReadUTF8StringWithTag(types.TagUTF8String)
}

// ReadUTF8StringWithTag reads a UTF8String under an implicit tag.
func (d *BERDecoder) ReadUTF8StringWithTag(tag types.Tag) (string, error) {
	start := d.pos()
	contents, err := d.readPrimitive(tag)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(contents) {
		return "", NewDecodeError(start, "malformed UTF8String", ErrInvalidString)
	}
	return string(contents), nil
}

// ReadNull reads a BER-encoded null value.
func (d *BERDecoder) ReadNull() error {
	return d.ReadNullWithTag(types.TagNull)
}

// ReadNullWithTag reads a null value under an implicit tag.
func (d *BERDecoder) ReadNullWithTag(tag types.Tag) error {
	start := d.pos()
	contents, err := d.readPrimitive(tag)
	if err != nil {
		return err
	}
	if len(contents) != 0 {
		return NewDecodeError(start, "null must have length 0", ErrInvalidNull)
	}
	return nil
}

// ReadObjectIdentifier reads an OBJECT IDENTIFIER.
func (d *BERDecoder) ReadObjectIdentifier() (asn1.ObjectIdentifier, error) {
	var oid asn1.ObjectIdentifier
	err := d.readStdlib(types.TagObjectIdentifier, types.TagObjectIdentifier, &oid, "")
	return oid, err
}

// ReadBitString reads a BIT STRING.
func (d *BERDecoder) ReadBitString() (asn1.BitString, error) {
	var bs asn1.BitString
	err := d.readStdlib(types.TagBitString, types.TagBitString, &bs, "")
	return bs, err
}

// ReadUTCTime reads a UTCTime.
func (d *BERDecoder) ReadUTCTime() (time.Time, error) {
	var t time.Time
	err := d.readStdlib(types.TagUTCTime, types.TagUTCTime, &t, "utc")
	return t, err
}

// ReadGeneralizedTime reads a GeneralizedTime.
func (d *BERDecoder) ReadGeneralizedTime() (time.Time, error) {
	var t time.Time
	err := d.readStdlib(types.TagGeneralizedTime, types.TagGeneralizedTime, &t, "generalized")
	return t, err
}

// readStdlib reads a primitive element tagged expected and decodes its
// contents with encoding/asn1 as a value of the universal type universal.
func (d *BERDecoder) readStdlib(expected, universal types.Tag, out any, params string) error {
	start := d.pos()
	contents, err := d.readPrimitive(expected)
	if err != nil {
		return err
	}

	enc := NewBEREncoder(len(contents) + 4)
	if err := enc.WriteTLV(universal, false, contents); err != nil {
		return err
	}
	if _, err := asn1.UnmarshalWithParams(enc.Bytes(), out, params); err != nil {
		return NewDecodeError(start, "malformed "+universal.Name(), err)
	}
	return nil
}

// Skip skips the current TLV (Tag-Length-Value) element.
func (d *BERDecoder) Skip() error {
	_, err := d.ReadRawValue()
	return err
}

// ReadRawValue reads the raw bytes of the current TLV element (including tag and length).
func (d *BERDecoder) ReadRawValue() ([]byte, error) {
	start := d.offset

	if _, _, err := d.ReadTag(); err != nil {
		return nil, err
	}
	length, err := d.ReadLength()
	if err != nil {
		return nil, err
	}
	if d.offset+length > len(d.data) {
		return nil, NewDecodeError(d.base+start, "truncated value", ErrUnexpectedEOF)
	}

	end := d.offset + length
	result := make([]byte, end-start)
	copy(result, d.data[start:end])
	d.offset = end

	return result, nil
}

// ReadConstructed reads a constructed element tagged expected and returns a
// sub-decoder over its contents.
func (d *BERDecoder) ReadConstructed(expected types.Tag) (*BERDecoder, error) {
	start := d.pos()
	if d.depth >= d.opts.MaxDepth {
		return nil, NewDecodeError(start, "nesting too deep", ErrMaxDepth)
	}

	length, constructed, err := d.readHeader(expected)
	if err != nil {
		return nil, err
	}
	if !constructed {
		return nil, NewDecodeError(start, expected.String()+" must be constructed", nil)
	}

	sub := &BERDecoder{
		data:  d.data[d.offset : d.offset+length],
		base:  d.pos(),
		depth: d.depth + 1,
		opts:  d.opts,
	}
	d.offset += length
	return sub, nil
}

// ReadSequenceContents reads the contents of a SEQUENCE into a sub-decoder.
func (d *BERDecoder) ReadSequenceContents() (*BERDecoder, error) {
	return d.ReadConstructed(types.TagSequence)
}

// ReadSetContents reads the contents of a SET into a sub-decoder.
func (d *BERDecoder) ReadSetContents() (*BERDecoder, error) {
	return d.ReadConstructed(types.TagSet)
}

// ReadContextTagContents reads the contents of an explicit context tag into a sub-decoder.
func (d *BERDecoder) ReadContextTagContents(num uint32) (*BERDecoder, error) {
	return d.ReadConstructed(types.ContextTag(num))
}

// IsTag reports whether the next element carries tag, without consuming it.
func (d *BERDecoder) IsTag(tag types.Tag) bool {
	next, _, err := d.PeekTag()
	return err == nil && next == tag
}
